package dessert

import (
	"strconv"
	"sync"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	desserts []Dessert
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewSeededRepository returns an in-memory catalog preloaded with the
// house desserts.
func NewSeededRepository() *InMemoryRepository {
	return &InMemoryRepository{desserts: []Dessert{
		{ID: 1, Name: "Tiramisu", Price: 5, Available: true},
		{ID: 2, Name: "Panna Cotta", Price: 4.5, Available: true},
		{ID: 3, Name: "Mousse au chocolat", Price: 4, Available: true},
		{ID: 4, Name: "Tarte aux pommes", Price: 4.5, Available: true},
		{ID: 5, Name: "Crème brûlée", Price: 5, Available: false},
	}}
}

func (r *InMemoryRepository) List() ([]Dessert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Dessert, len(r.desserts))
	copy(out, r.desserts)
	return out, nil
}

func (r *InMemoryRepository) FindByID(id int) (*Dessert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.desserts {
		if r.desserts[i].ID == id {
			d := r.desserts[i]
			return &d, nil
		}
	}
	return nil, apperr.NotFound("dessert", strconv.Itoa(id))
}

func (r *InMemoryRepository) Create(d *Dessert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	max := 0
	for i := range r.desserts {
		if r.desserts[i].ID > max {
			max = r.desserts[i].ID
		}
	}
	d.ID = max + 1
	r.desserts = append(r.desserts, *d)
	return nil
}

func (r *InMemoryRepository) Replace(id int, d *Dessert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.desserts {
		if r.desserts[i].ID == id {
			d.ID = id
			r.desserts[i] = *d
			return nil
		}
	}
	return apperr.NotFound("dessert", strconv.Itoa(id))
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.desserts {
		if r.desserts[i].ID == id {
			r.desserts = append(r.desserts[:i], r.desserts[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("dessert", strconv.Itoa(id))
}
