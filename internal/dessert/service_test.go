package dessert

import (
	"testing"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

func TestListAvailableSkipsSeededUnavailable(t *testing.T) {
	s := NewService(NewSeededRepository())

	desserts, err := s.ListAvailable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(desserts) != 4 {
		t.Fatalf("expected 4 available desserts, got %d", len(desserts))
	}
	for _, d := range desserts {
		if d.Name == "Crème brûlée" {
			t.Error("unavailable dessert in available listing")
		}
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	s := NewService(NewSeededRepository())

	d, err := s.Create("Profiteroles", 5.5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != 6 {
		t.Errorf("expected id 6 after the five seeded desserts, got %d", d.ID)
	}
}

func TestGetUnknownDessert(t *testing.T) {
	s := NewService(NewSeededRepository())

	if _, err := s.Get(42); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
