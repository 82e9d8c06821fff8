package drink

// Repository defines the data-access contract for the drink catalog.
type Repository interface {
	List() ([]Drink, error)
	FindByID(id int) (*Drink, error)
	Create(d *Drink) error
	Replace(id int, d *Drink) error
	Delete(id int) error
}
