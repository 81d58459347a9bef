// internal/domain/order/entity.go
package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
)

var (
	ErrNotFound = errors.New("order: not found")

	ErrInvalidID     = errors.New("order: invalid id")
	ErrInvalidUserID = errors.New("order: invalid userId")
	ErrInvalidItems  = errors.New("order: invalid items")
	ErrInvalidTotal  = errors.New("order: invalid total")
)

// StatusPending is the only status any code path writes. Orders are immutable
// after creation and no fulfillment workflow transitions them.
const StatusPending = "pending"

var minItemsRequired = 1

// Order is an immutable snapshot of a cart at placement time plus the
// server-computed total.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []cartdom.Item  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// New builds a validated pending order. items are snapshotted as given; the
// caller is responsible for having computed total from authoritative prices.
func New(id, userID string, items []cartdom.Item, total decimal.Decimal, currency string, createdAt time.Time) (Order, error) {
	o := Order{
		ID:        strings.TrimSpace(id),
		UserID:    strings.TrimSpace(userID),
		Items:     normalizeItems(items),
		Total:     total,
		Currency:  strings.TrimSpace(currency),
		Status:    StatusPending,
		CreatedAt: createdAt.UTC(),
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (o Order) validate() error {
	if o.ID == "" {
		return ErrInvalidID
	}
	if o.UserID == "" {
		return ErrInvalidUserID
	}
	if len(o.Items) < minItemsRequired {
		return ErrInvalidItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 {
			return ErrInvalidItems
		}
	}
	if o.Total.IsNegative() {
		return ErrInvalidTotal
	}
	return nil
}

func normalizeItems(items []cartdom.Item) []cartdom.Item {
	out := make([]cartdom.Item, 0, len(items))
	for _, it := range items {
		out = append(out, cartdom.Item{
			ProductID:     strings.TrimSpace(it.ProductID),
			Quantity:      it.Quantity,
			SelectedSize:  strings.TrimSpace(it.SelectedSize),
			SelectedColor: strings.TrimSpace(it.SelectedColor),
		})
	}
	return out
}

// Repository is a persistence port for Order.
type Repository interface {
	// GetByID returns the order or ErrNotFound.
	GetByID(ctx context.Context, id string) (Order, error)

	// ListByUser returns every order owned by uid.
	ListByUser(ctx context.Context, uid string) ([]Order, error)

	// CreateAndClearCart writes the order document and empties the user's
	// cart in a single transaction so a crash cannot leave one write
	// without the other.
	CreateAndClearCart(ctx context.Context, o Order, cartUID string) error
}
