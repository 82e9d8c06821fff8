package pricing

// Category identifies which catalog a line item was drawn from.
// Item ids are only meaningful within their own category.
type Category string

const (
	CategoryPizza   Category = "pizza"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
)

// Customization holds per-unit ingredient changes on a pizza.
// A customized pizza is a distinct identity from its base pizza
// and is never eligible for a promotional menu.
type Customization struct {
	AddedIngredients   []string `json:"added_ingredients"`
	RemovedIngredients []string `json:"removed_ingredients"`
	ExtraPrice         float64  `json:"extra_price"`
}

// LineItem is one cart or order entry: a catalog item reference with
// its resolved unit price and a quantity. ID is scoped to Category and
// must never be compared across categories. Price is the effective
// unit price; for customized pizzas the resolver folds the
// customization extra into it.
type LineItem struct {
	Category      Category       `json:"category"`
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	WithAlcohol   bool           `json:"with_alcohol,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
}

// Bundle is one promotional menu: one pizza, one alcohol-free drink
// and one dessert sold together at a 10% discount.
type Bundle struct {
	Pizza           LineItem `json:"pizza"`
	Drink           LineItem `json:"drink"`
	Dessert         LineItem `json:"dessert"`
	OriginalPrice   float64  `json:"original_price"`
	Discount        float64  `json:"discount"`
	DiscountedPrice float64  `json:"discounted_price"`
}

// BundleResult partitions a cart into promotional menus and the
// line items left over once all menus are formed.
type BundleResult struct {
	Bundles   []Bundle   `json:"bundles"`
	Remainder []LineItem `json:"remainder"`
}

// Quote is the client-facing price preview for a cart.
type Quote struct {
	Subtotal      float64 `json:"subtotal"`
	BundleCount   int     `json:"bundle_count"`
	TotalDiscount float64 `json:"total_discount"`
	Total         float64 `json:"total"`
}
