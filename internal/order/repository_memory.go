package order

import (
	"strconv"
	"sync"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	orders []Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Append(o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *o)
	return nil
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryRepository) FindByID(id int) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, apperr.NotFound("order", strconv.Itoa(id))
}

func (r *InMemoryRepository) Replace(id int, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o.ID = id
			r.orders[i] = *o
			return nil
		}
	}
	return apperr.NotFound("order", strconv.Itoa(id))
}

func (r *InMemoryRepository) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("order", strconv.Itoa(id))
}
