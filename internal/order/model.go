package order

import "time"

// Order is a persisted customer order. Item quantities are expressed
// by id repetition in the per-category lists: pizza ids are strings,
// drink and dessert ids are integers, matching their catalogs.
// TotalPrice is frozen at creation/update time; item-list edits
// re-enter pricing, flipping Processed does not.
type Order struct {
	ID         int       `json:"id"`
	Pizzas     []string  `json:"pizzas"`
	Drinks     []int     `json:"drinks"`
	Desserts   []int     `json:"desserts"`
	TotalPrice float64   `json:"totalPrice"`
	Processed  bool      `json:"processed"`
	CreatedAt  time.Time `json:"createdAt"`
}
