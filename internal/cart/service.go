package cart

import (
	"fmt"
	"strconv"

	"github.com/Quentin693/NestOrProject/internal/apperr"
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/pizza"
	"github.com/Quentin693/NestOrProject/internal/pricing"
)

type Service struct {
	pizzas   *pizza.Service
	drinks   *drink.Service
	desserts *dessert.Service
}

func NewService(pizzas *pizza.Service, drinks *drink.Service, desserts *dessert.Service) *Service {
	return &Service{pizzas: pizzas, drinks: drinks, desserts: desserts}
}

// Quote resolves the cart against the catalogs and returns the price
// preview shown before checkout. Unknown ids fail with NotFound;
// availability is NOT re-checked here — the order creation path is
// the authority and validates it.
func (s *Service) Quote(req QuoteRequest) (*QuoteResponse, error) {
	items, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	result := pricing.DetectBundles(items)
	quote := pricing.QuoteResult(items, result)

	return &QuoteResponse{
		Bundles:   result.Bundles,
		Remainder: result.Remainder,
		Quote:     quote,
	}, nil
}

func (s *Service) resolve(req QuoteRequest) ([]pricing.LineItem, error) {
	var items []pricing.LineItem

	for _, line := range req.Pizzas {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: pizza quantity must be at least 1", apperr.ErrInvalidInput)
		}
		p, err := s.pizzas.Get(line.ID)
		if err != nil {
			return nil, err
		}

		price := p.Price
		if line.Customization != nil {
			price = pricing.Round2(price + line.Customization.ExtraPrice)
		}
		items = append(items, pricing.LineItem{
			Category:      pricing.CategoryPizza,
			ID:            p.ID,
			Name:          p.Name,
			Price:         price,
			Quantity:      line.Quantity,
			Customization: line.Customization,
		})
	}

	for _, line := range req.Drinks {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: drink quantity must be at least 1", apperr.ErrInvalidInput)
		}
		d, err := s.drinks.Get(line.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, pricing.LineItem{
			Category:    pricing.CategoryDrink,
			ID:          strconv.Itoa(d.ID),
			Name:        d.Name,
			Price:       d.Price,
			Quantity:    line.Quantity,
			WithAlcohol: d.WithAlcohol,
		})
	}

	for _, line := range req.Desserts {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: dessert quantity must be at least 1", apperr.ErrInvalidInput)
		}
		d, err := s.desserts.Get(line.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, pricing.LineItem{
			Category: pricing.CategoryDessert,
			ID:       strconv.Itoa(d.ID),
			Name:     d.Name,
			Price:    d.Price,
			Quantity: line.Quantity,
		})
	}

	return items, nil
}
