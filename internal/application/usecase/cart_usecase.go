// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
)

// CartUsecase coordinates cart operations. Timestamps are owned by the
// repository, which sets them inside its write transaction.
type CartUsecase struct {
	repo cartdom.Repository
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo}
}

// Get returns the cart for uid. A cart that does not exist yet reads as empty.
func (uc *CartUsecase) Get(ctx context.Context, uid string) (*cartdom.Cart, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrCartInvalidArgument
	}
	return uc.repo.Get(ctx, id)
}

// ApplyChange reconciles one requested line-item change into the stored cart
// and returns the cart as written.
//
// qty semantics follow cart.Apply: 0 removes a matching entry, a positive
// value replaces-or-appends, anything else is a no-op. Callers at the HTTP
// boundary reject negative quantities before reaching here.
func (uc *CartUsecase) ApplyChange(ctx context.Context, uid, productID string, qty int, size, color string) (*cartdom.Cart, error) {
	id := strings.TrimSpace(uid)
	pid := strings.TrimSpace(productID)
	if id == "" || pid == "" {
		return nil, ErrCartInvalidArgument
	}

	return uc.repo.Update(ctx, id, func(items []cartdom.Item) []cartdom.Item {
		return cartdom.Apply(items, pid, qty, size, color)
	})
}
