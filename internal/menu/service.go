package menu

import (
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/pizza"
)

// FullMenu aggregates the three catalogs for the storefront.
type FullMenu struct {
	Pizzas   []pizza.Pizza     `json:"pizzas"`
	Drinks   []drink.Drink     `json:"drinks"`
	Desserts []dessert.Dessert `json:"desserts"`
}

type Service struct {
	pizzas   *pizza.Service
	drinks   *drink.Service
	desserts *dessert.Service
}

func NewService(pizzas *pizza.Service, drinks *drink.Service, desserts *dessert.Service) *Service {
	return &Service{pizzas: pizzas, drinks: drinks, desserts: desserts}
}

func (s *Service) GetFullMenu() (*FullMenu, error) {
	pizzas, err := s.pizzas.List()
	if err != nil {
		return nil, err
	}
	drinks, err := s.drinks.List()
	if err != nil {
		return nil, err
	}
	desserts, err := s.desserts.List()
	if err != nil {
		return nil, err
	}

	return &FullMenu{Pizzas: pizzas, Drinks: drinks, Desserts: desserts}, nil
}

// GetByCategory returns one catalog; ok is false for an unknown
// category.
func (s *Service) GetByCategory(category string) (interface{}, bool, error) {
	switch category {
	case "pizzas":
		items, err := s.pizzas.List()
		return items, true, err
	case "drinks":
		items, err := s.drinks.List()
		return items, true, err
	case "desserts":
		items, err := s.desserts.List()
		return items, true, err
	default:
		return nil, false, nil
	}
}
