package cart

import "github.com/Quentin693/NestOrProject/internal/pricing"

// PizzaLine references a pizza catalog entry by its string id, with
// an optional per-unit customization.
type PizzaLine struct {
	ID            string                 `json:"id"`
	Quantity      int                    `json:"quantity"`
	Customization *pricing.Customization `json:"customization,omitempty"`
}

// ItemLine references a drink or dessert catalog entry by integer id.
type ItemLine struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// QuoteRequest is the storefront cart: selected items per category,
// in the order the customer added them.
type QuoteRequest struct {
	Pizzas   []PizzaLine `json:"pizzas"`
	Drinks   []ItemLine  `json:"drinks"`
	Desserts []ItemLine  `json:"desserts"`
}

// QuoteResponse is the live price preview: the promotional menus
// detected, what is left outside them, and the money figures.
type QuoteResponse struct {
	Bundles   []pricing.Bundle   `json:"bundles"`
	Remainder []pricing.LineItem `json:"remainder"`
	pricing.Quote
}
