package dessert

// Repository defines the data-access contract for the dessert catalog.
type Repository interface {
	List() ([]Dessert, error)
	FindByID(id int) (*Dessert, error)
	Create(d *Dessert) error
	Replace(id int, d *Dessert) error
	Delete(id int) error
}
