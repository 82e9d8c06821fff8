package order

import (
	"fmt"
	"time"

	"github.com/Quentin693/NestOrProject/internal/apperr"
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/pizza"
	"github.com/Quentin693/NestOrProject/internal/pricing"
)

type Service struct {
	repo     Repository
	pizzas   *pizza.Service
	drinks   *drink.Service
	desserts *dessert.Service
}

func NewService(repo Repository, pizzas *pizza.Service, drinks *drink.Service, desserts *dessert.Service) *Service {
	return &Service{
		repo:     repo,
		pizzas:   pizzas,
		drinks:   drinks,
		desserts: desserts,
	}
}

// validateAndPrice is the pricing authority for persisted orders.
// Every referenced id must resolve, drinks and desserts must be
// available, and the whole order gets 10% off when it contains at
// least one pizza, one alcohol-free drink and one dessert.
//
// Note this is deliberately coarser than the per-bundle cart preview:
// the discount applies to the entire total once the minimum
// composition is met, however many complete menus would actually fit.
func (s *Service) validateAndPrice(pizzas []string, drinks, desserts []int) (float64, error) {
	if len(pizzas) == 0 && len(drinks) == 0 && len(desserts) == 0 {
		return 0, apperr.ErrEmptyOrder
	}

	total := 0.0

	for _, id := range pizzas {
		p, err := s.pizzas.Get(id)
		if err != nil {
			return 0, err
		}
		// Pizzas have no availability flag: always orderable.
		total += p.Price
	}

	hasSoftDrink := false
	for _, id := range drinks {
		d, err := s.drinks.Get(id)
		if err != nil {
			return 0, err
		}
		if !d.Available {
			return 0, apperr.Unavailable("drink", d.Name)
		}
		total += d.Price
		if !d.WithAlcohol {
			hasSoftDrink = true
		}
	}

	for _, id := range desserts {
		d, err := s.desserts.Get(id)
		if err != nil {
			return 0, err
		}
		if !d.Available {
			return 0, apperr.Unavailable("dessert", d.Name)
		}
		total += d.Price
	}

	if len(pizzas) >= 1 && hasSoftDrink && len(desserts) >= 1 {
		total = total * 0.9
	}

	// Single rounding of the final total, not per line.
	return pricing.Round2(total), nil
}

func (s *Service) Create(pizzas []string, drinks, desserts []int) (*Order, error) {
	if pizzas == nil {
		pizzas = []string{}
	}
	if drinks == nil {
		drinks = []int{}
	}
	if desserts == nil {
		desserts = []int{}
	}

	total, err := s.validateAndPrice(pizzas, drinks, desserts)
	if err != nil {
		return nil, err
	}

	o := &Order{
		Pizzas:     pizzas,
		Drinks:     drinks,
		Desserts:   desserts,
		TotalPrice: total,
		Processed:  false,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Append(o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

// List returns all orders, optionally filtered by processed state.
func (s *Service) List(processed *bool) ([]Order, error) {
	orders, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if processed == nil {
		return orders, nil
	}

	filtered := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Processed == *processed {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *Service) Get(id int) (*Order, error) {
	return s.repo.FindByID(id)
}

// Update edits the item lists of an existing order. Nil slices keep
// the current list. Any list change re-enters pricing; the processed
// flag is left untouched.
func (s *Service) Update(id int, pizzas []string, drinks, desserts []int) (*Order, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	changed := false
	if pizzas != nil {
		current.Pizzas = pizzas
		changed = true
	}
	if drinks != nil {
		current.Drinks = drinks
		changed = true
	}
	if desserts != nil {
		current.Desserts = desserts
		changed = true
	}

	if changed {
		total, err := s.validateAndPrice(current.Pizzas, current.Drinks, current.Desserts)
		if err != nil {
			return nil, err
		}
		current.TotalPrice = total
	}

	if err := s.repo.Replace(id, current); err != nil {
		return nil, err
	}
	return current, nil
}

// MarkProcessed flips an order to its terminal processed state.
// The frozen total is not recomputed.
func (s *Service) MarkProcessed(id int) (*Order, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	current.Processed = true
	if err := s.repo.Replace(id, current); err != nil {
		return nil, err
	}
	return current, nil
}

// SetTotalPrice overrides the frozen total. This and MarkProcessed
// are the only patchable fields; anything else is invalid input.
func (s *Service) SetTotalPrice(id int, price float64) (*Order, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: total price must be non-negative", apperr.ErrInvalidInput)
	}

	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	current.TotalPrice = pricing.Round2(price)
	if err := s.repo.Replace(id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(id int) error {
	return s.repo.Remove(id)
}
