package pizza

import (
	"strconv"
	"sync"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	pizzas []Pizza
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewSeededRepository returns an in-memory catalog preloaded with the
// house pizzas.
func NewSeededRepository() *InMemoryRepository {
	return &InMemoryRepository{pizzas: []Pizza{
		{ID: "1", Name: "Margherita", Ingredients: []string{"tomate", "mozzarella", "basilic"}, Price: 8},
		{ID: "2", Name: "Pepperoni", Ingredients: []string{"tomate", "mozzarella", "pepperoni"}, Price: 10},
		{ID: "3", Name: "4 Fromages", Ingredients: []string{"mozzarella", "gorgonzola", "parmesan", "chèvre"}, Price: 12},
		{ID: "4", Name: "Savoyarde", Ingredients: []string{"reblochon", "lardons", "échalotes", "chèvre"}, Price: 14},
		{ID: "5", Name: "Végétarienne", Ingredients: []string{"tomate", "mozzarella", "poivrons", "oignons", "champignons"}, Price: 9},
	}}
}

func (r *InMemoryRepository) List() ([]Pizza, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Pizza, len(r.pizzas))
	copy(out, r.pizzas)
	return out, nil
}

func (r *InMemoryRepository) FindByID(id string) (*Pizza, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pizzas {
		if r.pizzas[i].ID == id {
			p := r.pizzas[i]
			return &p, nil
		}
	}
	return nil, apperr.NotFound("pizza", id)
}

func (r *InMemoryRepository) Create(p *Pizza) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = strconv.Itoa(r.nextID())
	r.pizzas = append(r.pizzas, *p)
	return nil
}

func (r *InMemoryRepository) Replace(id string, p *Pizza) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pizzas {
		if r.pizzas[i].ID == id {
			p.ID = id
			r.pizzas[i] = *p
			return nil
		}
	}
	return apperr.NotFound("pizza", id)
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pizzas {
		if r.pizzas[i].ID == id {
			r.pizzas = append(r.pizzas[:i], r.pizzas[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("pizza", id)
}

// nextID mirrors the historical id scheme: numeric ids stored as
// strings, next = max + 1.
func (r *InMemoryRepository) nextID() int {
	max := 0
	for i := range r.pizzas {
		if n, err := strconv.Atoi(r.pizzas[i].ID); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
