package pizza

// Repository defines the data-access contract for the pizza catalog.
// Service depends ONLY on this interface.
type Repository interface {
	List() ([]Pizza, error)
	FindByID(id string) (*Pizza, error)
	Create(p *Pizza) error
	Replace(id string, p *Pizza) error
	Delete(id string) error
}
