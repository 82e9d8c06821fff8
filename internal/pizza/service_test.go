package pizza

import (
	"testing"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

func TestSearchByMaxPrice(t *testing.T) {
	s := NewService(NewSeededRepository())

	maxPrice := 9.0
	results, err := s.Search(&maxPrice, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 pizzas at or under 9, got %d", len(results))
	}
	for _, p := range results {
		if p.Price > maxPrice {
			t.Errorf("pizza %s exceeds max price: %v", p.ID, p.Price)
		}
	}
}

func TestSearchByIngredient(t *testing.T) {
	s := NewService(NewSeededRepository())

	results, err := s.Search(nil, "CHÈVRE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4 Fromages and Savoyarde both carry chèvre; match is
	// case-insensitive.
	if len(results) != 2 {
		t.Fatalf("expected 2 pizzas with chèvre, got %d", len(results))
	}
}

func TestSearchCombinedCriteria(t *testing.T) {
	s := NewService(NewSeededRepository())

	maxPrice := 10.0
	results, err := s.Search(&maxPrice, "tomate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range results {
		if p.Price > maxPrice {
			t.Errorf("pizza %s exceeds max price", p.ID)
		}
	}
	if len(results) != 3 {
		t.Errorf("expected Margherita, Pepperoni and Végétarienne, got %d results", len(results))
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	s := NewService(NewSeededRepository())

	p, err := s.Create("Calzone", []string{"tomate", "mozzarella", "jambon"}, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "6" {
		t.Errorf("expected id 6 after the five seeded pizzas, got %s", p.ID)
	}
}

func TestUpdatePartial(t *testing.T) {
	s := NewService(NewSeededRepository())

	price := 8.5
	p, err := s.Update("1", nil, nil, &price)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 8.5 {
		t.Errorf("expected price 8.5, got %v", p.Price)
	}
	if p.Name != "Margherita" {
		t.Errorf("name must be unchanged, got %s", p.Name)
	}
}

func TestGetUnknownPizza(t *testing.T) {
	s := NewService(NewSeededRepository())

	if _, err := s.Get("99"); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeletePizza(t *testing.T) {
	s := NewService(NewSeededRepository())

	if err := s.Delete("1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get("1"); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
}
