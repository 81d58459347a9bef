// internal/domain/cart/entity.go
package cart

import (
	"context"
	"strings"
	"time"
)

// Item represents one line item in a cart.
// Quantity is >= 1 for any item actually stored; SelectedSize/SelectedColor
// are optional variant picks and may be empty.
type Item struct {
	ProductID     string `json:"productId" firestore:"productId"`
	Quantity      int    `json:"quantity" firestore:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty" firestore:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty" firestore:"selectedColor,omitempty"`
}

// Cart represents a cart document.
//   - docId = uid (Firestore)
//   - Items: ordered list, at most one entry per productId
//
// A missing document reads as an empty cart; placing an order empties Items
// but keeps the document.
type Cart struct {
	// UID is the Firestore docId (= Firebase uid of the owner).
	UID string `json:"uid" firestore:"-"`

	Items []Item `json:"items" firestore:"items"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Apply computes the next item list for a requested change.
//
// Rules (one entry per productId, relative order preserved):
//   - matching entry exists, qty == 0  -> remove that entry
//   - matching entry exists, qty >  0  -> replace quantity/size/color in place
//   - matching entry exists, qty <  0  -> no-op
//   - no matching entry,     qty >  0  -> append a new entry
//   - no matching entry,     qty <= 0  -> no-op
//
// The previous size/color of a replaced entry are discarded, not merged.
// The input slice is never mutated.
func Apply(existing []Item, productID string, qty int, size, color string) []Item {
	pid := strings.TrimSpace(productID)
	next := cloneItems(existing)

	idx := -1
	for i := range next {
		if next[i].ProductID == pid {
			idx = i
			break
		}
	}

	switch {
	case idx >= 0 && qty == 0:
		next = append(next[:idx], next[idx+1:]...)
	case idx >= 0 && qty > 0:
		next[idx] = Item{
			ProductID:     pid,
			Quantity:      qty,
			SelectedSize:  strings.TrimSpace(size),
			SelectedColor: strings.TrimSpace(color),
		}
	case idx < 0 && qty > 0:
		next = append(next, Item{
			ProductID:     pid,
			Quantity:      qty,
			SelectedSize:  strings.TrimSpace(size),
			SelectedColor: strings.TrimSpace(color),
		})
	}

	return next
}

func cloneItems(src []Item) []Item {
	out := make([]Item, 0, len(src))
	out = append(out, src...)
	return out
}

// Repository is a persistence port for Cart.
//
// Storage (Firestore):
// - collection: carts
// - docId: uid
// - fields: items(array), createdAt, updatedAt
type Repository interface {
	// Get returns the cart for uid. A missing document is returned as an
	// empty cart, not an error.
	Get(ctx context.Context, uid string) (*Cart, error)

	// Update runs mutate against the current items and persists the result
	// atomically (read + mutate + write in one transaction), returning the
	// cart as written.
	Update(ctx context.Context, uid string, mutate func(items []Item) []Item) (*Cart, error)
}
