package drink

import (
	"strconv"
	"sync"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	drinks []Drink
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// NewSeededRepository returns an in-memory catalog preloaded with the
// house drinks.
func NewSeededRepository() *InMemoryRepository {
	return &InMemoryRepository{
		drinks: []Drink{
			{ID: 1, Name: "Coca-Cola", Price: 2.5, Size: "33cl", WithAlcohol: false, Available: true},
			{ID: 2, Name: "Orangina", Price: 2.5, Size: "33cl", WithAlcohol: false, Available: true},
			{ID: 3, Name: "Eau minérale", Price: 2, Size: "50cl", WithAlcohol: false, Available: true},
			{ID: 4, Name: "Bière", Price: 4, Size: "25cl", WithAlcohol: true, Available: true},
			{ID: 5, Name: "Vin rouge", Price: 5, Size: "15cl", WithAlcohol: true, Available: true},
			{ID: 6, Name: "Café", Price: 2, Size: "tasse", WithAlcohol: false, Available: true},
			{ID: 7, Name: "Thé", Price: 2, Size: "tasse", WithAlcohol: false, Available: true},
		},
		nextID: 8,
	}
}

func (r *InMemoryRepository) List() ([]Drink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Drink, len(r.drinks))
	copy(out, r.drinks)
	return out, nil
}

func (r *InMemoryRepository) FindByID(id int) (*Drink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drinks {
		if r.drinks[i].ID == id {
			d := r.drinks[i]
			return &d, nil
		}
	}
	return nil, apperr.NotFound("drink", strconv.Itoa(id))
}

func (r *InMemoryRepository) Create(d *Drink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	r.drinks = append(r.drinks, *d)
	return nil
}

func (r *InMemoryRepository) Replace(id int, d *Drink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drinks {
		if r.drinks[i].ID == id {
			d.ID = id
			r.drinks[i] = *d
			return nil
		}
	}
	return apperr.NotFound("drink", strconv.Itoa(id))
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drinks {
		if r.drinks[i].ID == id {
			r.drinks = append(r.drinks[:i], r.drinks[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("drink", strconv.Itoa(id))
}
