package order

import (
	"errors"
	"testing"

	"github.com/Quentin693/NestOrProject/internal/apperr"
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/pizza"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		NewInMemoryRepository(),
		pizza.NewService(pizza.NewSeededRepository()),
		drink.NewService(drink.NewSeededRepository()),
		dessert.NewService(dessert.NewSeededRepository()),
	)
}

func TestCreate_AppliesMenuDiscountToWholeOrder(t *testing.T) {
	s := newTestService(t)

	// Margherita 8 + Coca-Cola 2.5 + Tiramisu 5 = 15.5, discounted 10%.
	o, err := s.Create([]string{"1"}, []int{1}, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.TotalPrice != 13.95 {
		t.Errorf("expected total 13.95, got %v", o.TotalPrice)
	}
	if o.ID != 1 {
		t.Errorf("expected first order id 1, got %d", o.ID)
	}
	if o.Processed {
		t.Error("new order must not be processed")
	}
}

func TestCreate_NoDiscountWithoutFullComposition(t *testing.T) {
	s := newTestService(t)

	cases := []struct {
		name     string
		pizzas   []string
		drinks   []int
		desserts []int
		want     float64
	}{
		{"pizza only", []string{"1"}, nil, nil, 8},
		{"pizza and alcoholic drink and dessert", []string{"1"}, []int{4}, []int{1}, 17},
		{"pizza and soft drink, no dessert", []string{"1"}, []int{1}, nil, 10.5},
		{"soft drink and dessert, no pizza", nil, []int{1}, []int{1}, 7.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := s.Create(tc.pizzas, tc.drinks, tc.desserts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.TotalPrice != tc.want {
				t.Errorf("expected total %v, got %v", tc.want, o.TotalPrice)
			}
		})
	}
}

// The server discounts the WHOLE order once the minimum composition is
// met. This is coarser than the cart preview, which discounts per
// complete menu; the divergence is intentional and the server wins for
// persisted orders.
func TestCreate_FlatDiscountCoversWholeOrder(t *testing.T) {
	s := newTestService(t)

	// 2 Margherita + 1 Coca-Cola + 1 Tiramisu = 23.5; the whole order
	// is discounted, not just one menu's worth.
	o, err := s.Create([]string{"1", "1"}, []int{1}, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.TotalPrice != 21.15 {
		t.Errorf("expected total 21.15 (23.5 * 0.9), got %v", o.TotalPrice)
	}
}

func TestCreate_UnknownDrinkFails(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create([]string{"1"}, []int{99}, nil)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	orders, _ := s.List(nil)
	if len(orders) != 0 {
		t.Error("failed creation must not persist an order")
	}
}

func TestCreate_UnavailableDessertFails(t *testing.T) {
	s := newTestService(t)

	// Crème brûlée (id 5) is seeded unavailable.
	_, err := s.Create([]string{"1"}, nil, []int{5})
	if !apperr.IsUnavailable(err) {
		t.Fatalf("expected Unavailable, got %v", err)
	}

	orders, _ := s.List(nil)
	if len(orders) != 0 {
		t.Error("failed creation must not persist an order")
	}
}

func TestCreate_EmptyOrderFails(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create(nil, nil, nil)
	if !errors.Is(err, apperr.ErrEmptyOrder) {
		t.Fatalf("expected EmptyOrder, got %v", err)
	}
}

func TestList_FilterByProcessed(t *testing.T) {
	s := newTestService(t)

	first, _ := s.Create([]string{"1"}, nil, nil)
	second, _ := s.Create([]string{"2"}, nil, nil)

	if _, err := s.MarkProcessed(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	processed := true
	got, err := s.List(&processed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != first.ID {
		t.Errorf("expected only order %d, got %+v", first.ID, got)
	}

	unprocessed := false
	got, _ = s.List(&unprocessed)
	if len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("expected only order %d, got %+v", second.ID, got)
	}
}

func TestUpdate_RepricesButKeepsProcessed(t *testing.T) {
	s := newTestService(t)

	o, _ := s.Create([]string{"1"}, nil, nil)
	if _, err := s.MarkProcessed(o.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := s.Update(o.ID, nil, []int{1}, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.TotalPrice != 13.95 {
		t.Errorf("expected repriced total 13.95, got %v", updated.TotalPrice)
	}
	if !updated.Processed {
		t.Error("item edit must not reset the processed flag")
	}
	if len(updated.Pizzas) != 1 || updated.Pizzas[0] != "1" {
		t.Errorf("untouched pizza list must be kept, got %v", updated.Pizzas)
	}
}

func TestUpdate_InvalidItemAbortsWithoutChange(t *testing.T) {
	s := newTestService(t)

	o, _ := s.Create([]string{"1"}, nil, nil)

	if _, err := s.Update(o.ID, []string{"99"}, nil, nil); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	current, _ := s.Get(o.ID)
	if current.TotalPrice != 8 {
		t.Errorf("failed update must not change the order, total is %v", current.TotalPrice)
	}
}

func TestSetTotalPrice(t *testing.T) {
	s := newTestService(t)

	o, _ := s.Create([]string{"1"}, nil, nil)

	updated, err := s.SetTotalPrice(o.ID, 12.345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TotalPrice != 12.35 {
		t.Errorf("expected rounded total 12.35, got %v", updated.TotalPrice)
	}

	if _, err := s.SetTotalPrice(o.ID, -1); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected InvalidInput for negative price, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestService(t)

	o, _ := s.Create([]string{"1"}, nil, nil)
	if err := s.Delete(o.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Get(o.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}

	if err := s.Delete(o.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound on double delete, got %v", err)
	}
}
