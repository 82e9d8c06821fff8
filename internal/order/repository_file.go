package order

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/Quentin693/NestOrProject/internal/apperr"
)

// FileRepository keeps the full order list in memory and snapshots it
// to a JSON file after every mutation. The mutex serializes writers;
// the snapshot goes through a temp file + rename so a crash mid-write
// never truncates the previous state.
type FileRepository struct {
	mu     sync.Mutex
	path   string
	orders []Order
	nextID int
}

// NewFileRepository loads all orders from dir/orders.json (if it
// exists) and seeds the id counter from the highest stored id.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	r := &FileRepository{
		path:   filepath.Join(dir, "orders.json"),
		nextID: 1,
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	if err := json.Unmarshal(data, &r.orders); err != nil {
		return nil, fmt.Errorf("failed to parse order file: %w", err)
	}

	for i := range r.orders {
		if r.orders[i].ID >= r.nextID {
			r.nextID = r.orders[i].ID + 1
		}
	}
	return r, nil
}

func (r *FileRepository) Append(o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *o)
	return r.snapshot()
}

func (r *FileRepository) List() ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *FileRepository) FindByID(id int) (*Order, error) {
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

func (r *FileRepository) Replace(id int, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o.ID = id
			r.orders[i] = *o
			return r.snapshot()
		}
	}
	return apperr.NotFound("order", strconv.Itoa(id))
}

func (r *FileRepository) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return r.snapshot()
		}
	}
	return apperr.NotFound("order", strconv.Itoa(id))
}

// snapshot writes the whole list; callers must hold the mutex.
func (r *FileRepository) snapshot() error {
	data, err := json.MarshalIndent(r.orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}

	tmp := r.path + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write order snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit order snapshot: %w", err)
	}
	return nil
}
