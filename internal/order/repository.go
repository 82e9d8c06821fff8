package order

// Repository defines the persistence contract for orders: load-all,
// append with id assignment, whole-record replace, remove. Every
// implementation must keep the full list durable after each mutation.
type Repository interface {
	Append(o *Order) error
	List() ([]Order, error)
	FindByID(id int) (*Order, error)
	Replace(id int, o *Order) error
	Remove(id int) error
}
