package drink

import "errors"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Drink, error) {
	return s.repo.List()
}

// ListAvailable returns only the drinks currently orderable.
func (s *Service) ListAvailable() ([]Drink, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	available := make([]Drink, 0, len(all))
	for _, d := range all {
		if d.Available {
			available = append(available, d)
		}
	}
	return available, nil
}

func (s *Service) Get(id int) (*Drink, error) {
	return s.repo.FindByID(id)
}

func (s *Service) Create(name string, price float64, size string, withAlcohol, available bool) (*Drink, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price must be non-negative")
	}

	d := &Drink{
		Name:        name,
		Price:       price,
		Size:        size,
		WithAlcohol: withAlcohol,
		Available:   available,
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies a partial update: nil fields keep their current value.
func (s *Service) Update(id int, name *string, price *float64, size *string, withAlcohol, available *bool) (*Drink, error) {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		current.Name = *name
	}
	if price != nil {
		if *price < 0 {
			return nil, errors.New("price must be non-negative")
		}
		current.Price = *price
	}
	if size != nil {
		current.Size = *size
	}
	if withAlcohol != nil {
		current.WithAlcohol = *withAlcohol
	}
	if available != nil {
		current.Available = *available
	}

	if err := s.repo.Replace(id, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
