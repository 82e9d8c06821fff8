package pizza

import (
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Pizza, error) {
	return s.repo.List()
}

// Search filters the catalog by maximum price and/or ingredient
// substring (case-insensitive). Nil/empty criteria are ignored.
func (s *Service) Search(maxPrice *float64, ingredient string) ([]Pizza, error) {
	pizzas, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	results := make([]Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		if ingredient != "" && !hasIngredient(p, ingredient) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

func hasIngredient(p Pizza, ingredient string) bool {
	needle := strings.ToLower(ingredient)
	for _, ing := range p.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}

func (s *Service) Get(id string) (*Pizza, error) {
	return s.repo.FindByID(id)
}

func (s *Service) Create(name string, ingredients []string, price float64) (*Pizza, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price must be non-negative")
	}

	p := &Pizza{
		Name:        name,
		Ingredients: ingredients,
		Price:       price,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update: nil fields keep their current value.
func (s *Service) Update(id string, name *string, ingredients []string, price *float64) (*Pizza, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		current.Name = *name
	}
	if ingredients != nil {
		current.Ingredients = ingredients
	}
	if price != nil {
		if *price < 0 {
			return nil, errors.New("price must be non-negative")
		}
		current.Price = *price
	}

	if err := s.repo.Replace(id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
