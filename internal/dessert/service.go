package dessert

import "errors"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Dessert, error) {
	return s.repo.List()
}

// ListAvailable returns only the desserts currently orderable.
func (s *Service) ListAvailable() ([]Dessert, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	available := make([]Dessert, 0, len(all))
	for _, d := range all {
		if d.Available {
			available = append(available, d)
		}
	}
	return available, nil
}

func (s *Service) Get(id int) (*Dessert, error) {
	return s.repo.FindByID(id)
}

func (s *Service) Create(name string, price float64, available bool) (*Dessert, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price must be non-negative")
	}

	d := &Dessert{Name: name, Price: price, Available: available}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies a partial update: nil fields keep their current value.
func (s *Service) Update(id int, name *string, price *float64, available *bool) (*Dessert, error) {
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
