package pricing

// DetectBundles partitions line items into the maximum number of
// promotional menus (one pizza + one alcohol-free drink + one dessert)
// plus the remainder.
//
// Quantities are expanded into individual units, units are consumed in
// their original encounter order (no price-optimizing pairing), and
// leftovers are grouped back into line items with summed quantities.
// The function is pure: identical input always yields identical output.
func DetectBundles(items []LineItem) BundleResult {
	var (
		pizzaUnits   []LineItem
		customPizzas []LineItem
		softDrinks   []LineItem
		alcoholUnits []LineItem
		dessertUnits []LineItem
	)

	for _, item := range items {
		switch item.Category {
		case CategoryPizza:
			if item.Customization != nil {
				// Customized pizzas keep their own identity and are
				// never eligible for a menu.
				customPizzas = append(customPizzas, item)
				continue
			}
			pizzaUnits = append(pizzaUnits, expand(item)...)
		case CategoryDrink:
			if item.WithAlcohol {
				alcoholUnits = append(alcoholUnits, expand(item)...)
			} else {
				softDrinks = append(softDrinks, expand(item)...)
			}
		case CategoryDessert:
			dessertUnits = append(dessertUnits, expand(item)...)
		}
	}

	count := min3(len(pizzaUnits), len(softDrinks), len(dessertUnits))

	bundles := make([]Bundle, 0, count)
	for i := 0; i < count; i++ {
		bundles = append(bundles, newBundle(pizzaUnits[i], softDrinks[i], dessertUnits[i]))
	}

	remainder := make([]LineItem, 0)
	remainder = append(remainder, regroup(pizzaUnits[count:])...)
	remainder = append(remainder, regroup(softDrinks[count:])...)
	remainder = append(remainder, regroup(dessertUnits[count:])...)
	remainder = append(remainder, regroup(alcoholUnits)...)
	remainder = append(remainder, customPizzas...)

	return BundleResult{Bundles: bundles, Remainder: remainder}
}

func newBundle(pizza, drink, dessert LineItem) Bundle {
	original := Round2(pizza.Price + drink.Price + dessert.Price)
	discount := Round2(original * 0.10)
	return Bundle{
		Pizza:           pizza,
		Drink:           drink,
		Dessert:         dessert,
		OriginalPrice:   original,
		Discount:        discount,
		DiscountedPrice: Round2(original - discount),
	}
}

// expand turns a line item of quantity n into n single-unit copies.
func expand(item LineItem) []LineItem {
	units := make([]LineItem, 0, item.Quantity)
	for i := 0; i < item.Quantity; i++ {
		unit := item
		unit.Quantity = 1
		units = append(units, unit)
	}
	return units
}

// regroup merges single units back into line items keyed by
// (category, id), summing quantities. Encounter order is preserved.
func regroup(units []LineItem) []LineItem {
	type key struct {
		category Category
		id       string
	}

	index := make(map[key]int)
	var grouped []LineItem

	for _, unit := range units {
		k := key{unit.Category, unit.ID}
		if pos, ok := index[k]; ok {
			grouped[pos].Quantity += unit.Quantity
			continue
		}
		index[k] = len(grouped)
		grouped = append(grouped, unit)
	}

	return grouped
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
