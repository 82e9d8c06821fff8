package dessert

// Dessert is a catalog entry. Ids are integers scoped to the dessert
// catalog.
type Dessert struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
