// internal/domain/cart/total.go
package cart

import "github.com/shopspring/decimal"

// Total sums price(productId) * quantity over items.
// An item whose productId is absent from prices contributes zero; referential
// gaps are masked here and reported by the caller if it cares.
func Total(items []Item, prices map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		p, ok := prices[it.ProductID]
		if !ok {
			continue
		}
		sum = sum.Add(p.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
