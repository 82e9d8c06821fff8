package drink

// Drink is a catalog entry. Ids are integers scoped to the drink
// catalog. WithAlcohol excludes a drink from promotional menus;
// Available gates ordering.
type Drink struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	WithAlcohol bool    `json:"withAlcohol"`
	Available   bool    `json:"available"`
}
