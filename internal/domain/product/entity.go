// internal/domain/product/entity.go
package product

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("product: not found")
	ErrInvalidProduct = errors.New("product: invalid")
)

// CategoryAll is the listing sentinel meaning "no category filter".
const CategoryAll = "All"

// Variants holds the optional variant axes of a product.
type Variants struct {
	Sizes  []string `json:"sizes,omitempty" firestore:"sizes"`
	Colors []string `json:"colors,omitempty" firestore:"colors"`
}

// Product is a catalog entry. Products are created by the seeding process and
// mutated only out-of-band; the application never updates or deletes them.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Images      []string        `json:"images"`
	Variants    Variants        `json:"variants"`
	Stock       int             `json:"stock"`
	VendorID    string          `json:"vendorId"`
	Category    string          `json:"category,omitempty"`
}

// Validate checks the invariants a seeded product must satisfy.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidProduct
	}
	if p.Price.IsNegative() {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.Currency) == "" {
		return ErrInvalidProduct
	}
	if p.Stock < 0 {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.VendorID) == "" {
		return ErrInvalidProduct
	}
	return nil
}

// Repository is a read-only persistence port for Product.
type Repository interface {
	// GetByID returns the product or ErrNotFound.
	GetByID(ctx context.Context, id string) (Product, error)

	// List returns products filtered by exact, case-sensitive category
	// equality. An empty category or CategoryAll returns every product.
	// No pagination, sort, or stock filtering.
	List(ctx context.Context, category string) ([]Product, error)
}
