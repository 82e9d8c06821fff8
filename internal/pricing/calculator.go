package pricing

import "math"

// Round2 rounds a money value to 2 decimal places, half away from
// zero. Applied at every computation point so float drift cannot
// accumulate across bundles.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuoteCart computes the price preview the storefront shows before
// checkout: subtotal before any discount, the number of promotional
// menus detected, the summed menu discounts and the resulting total.
//
// It trusts the catalog data already resolved onto the line items and
// does not re-check availability; that is the order creator's job.
func QuoteCart(items []LineItem) Quote {
	result := DetectBundles(items)
	return QuoteResult(items, result)
}

// QuoteResult derives the money figures from an already-computed
// bundling result over the same items.
func QuoteResult(items []LineItem, result BundleResult) Quote {
	subtotal := 0.0
	for _, item := range items {
		subtotal = Round2(subtotal + Round2(item.Price*float64(item.Quantity)))
	}

	discount := 0.0
	for _, bundle := range result.Bundles {
		discount = Round2(discount + bundle.Discount)
	}

	return Quote{
		Subtotal:      subtotal,
		BundleCount:   len(result.Bundles),
		TotalDiscount: discount,
		Total:         Round2(subtotal - discount),
	}
}
