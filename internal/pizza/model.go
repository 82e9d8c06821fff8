package pizza

// Pizza is a catalog entry. Ids are strings and only meaningful
// within the pizza catalog. Pizzas carry no availability flag:
// they are always orderable.
type Pizza struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Price       float64  `json:"price"`
}
