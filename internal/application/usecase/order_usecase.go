// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
	ErrOrderNotFound        = errors.New("order_usecase: not found")
)

const defaultCurrency = "USD"

// OrderUsecase coordinates order placement and reads.
//
// Placement recomputes the total from authoritative product prices; a
// client-sent total is only compared and logged, never persisted. The order
// write and the cart clear happen in one repository transaction.
type OrderUsecase struct {
	orders   orderdom.Repository
	products productdom.Repository
	clock    Clock

	// best-effort collaborators (nil = disabled)
	archive OrderArchive
	mail    EmailSender
	from    string
}

func NewOrderUsecase(orders orderdom.Repository, products productdom.Repository) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		clock:    systemClock{},
	}
}

// WithClock overrides the clock (tests).
func (uc *OrderUsecase) WithClock(clock Clock) *OrderUsecase {
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// WithArchive enables the Postgres reporting copy.
func (uc *OrderUsecase) WithArchive(a OrderArchive) *OrderUsecase {
	uc.archive = a
	return uc
}

// WithMail enables order confirmation mail sent from the given address.
func (uc *OrderUsecase) WithMail(m EmailSender, from string) *OrderUsecase {
	uc.mail = m
	uc.from = strings.TrimSpace(from)
	return uc
}

// Place creates a pending order from items and empties the user's cart.
// email may be empty (no confirmation is sent). clientTotal may be nil.
// Returns the generated order id.
func (uc *OrderUsecase) Place(ctx context.Context, uid, email string, items []cartdom.Item, clientTotal *decimal.Decimal) (string, error) {
	id := strings.TrimSpace(uid)
	if id == "" || len(items) == 0 {
		return "", ErrOrderInvalidArgument
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 {
			return "", ErrOrderInvalidArgument
		}
	}

	prices, currency, err := uc.resolvePrices(ctx, items)
	if err != nil {
		return "", err
	}

	total := cartdom.Total(items, prices)
	if clientTotal != nil && !clientTotal.Equal(total) {
		log.Printf("[order_usecase] WARN: client total mismatch uid=%s client=%s server=%s", id, clientTotal.String(), total.String())
	}

	now := uc.clock.Now()
	o, err := orderdom.New(uuid.NewString(), id, items, total, currency, now)
	if err != nil {
		return "", err
	}

	if err := uc.orders.CreateAndClearCart(ctx, o, id); err != nil {
		return "", err
	}

	// best-effort from here on; the order is already placed
	if uc.archive != nil {
		if err := uc.archive.Archive(ctx, o); err != nil {
			log.Printf("[order_usecase] WARN: order archive failed orderId=%s err=%v", o.ID, err)
		}
	}
	uc.sendConfirmation(ctx, o, email)

	return o.ID, nil
}

// Get returns the order if it exists and is owned by uid; a foreign-owned
// order reads as not found, never as forbidden.
func (uc *OrderUsecase) Get(ctx context.Context, uid, orderID string) (orderdom.Order, error) {
	id := strings.TrimSpace(uid)
	oid := strings.TrimSpace(orderID)
	if id == "" || oid == "" {
		return orderdom.Order{}, ErrOrderInvalidArgument
	}

	o, err := uc.orders.GetByID(ctx, oid)
	if err != nil {
		return orderdom.Order{}, err
	}
	if o.UserID != id {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

// ListByUser returns every order owned by uid.
func (uc *OrderUsecase) ListByUser(ctx context.Context, uid string) ([]orderdom.Order, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrOrderInvalidArgument
	}
	return uc.orders.ListByUser(ctx, id)
}

// resolvePrices looks up every distinct product referenced by items.
// Unknown product ids are masked (contribute zero) to match cart totalling;
// each masked id is logged. Currency is taken from the first resolved product.
func (uc *OrderUsecase) resolvePrices(ctx context.Context, items []cartdom.Item) (map[string]decimal.Decimal, string, error) {
	prices := make(map[string]decimal.Decimal, len(items))
	currency := ""

	for _, it := range items {
		pid := strings.TrimSpace(it.ProductID)
		if _, ok := prices[pid]; ok {
			continue
		}
		p, err := uc.products.GetByID(ctx, pid)
		if err != nil {
			if errors.Is(err, productdom.ErrNotFound) {
				log.Printf("[order_usecase] WARN: unknown productId=%s masked in total", pid)
				continue
			}
			return nil, "", err
		}
		prices[pid] = p.Price
		if currency == "" {
			currency = p.Currency
		}
	}

	if currency == "" {
		currency = defaultCurrency
	}
	return prices, currency, nil
}

func (uc *OrderUsecase) sendConfirmation(ctx context.Context, o orderdom.Order, email string) {
	to := strings.TrimSpace(email)
	if uc.mail == nil || to == "" || uc.from == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thanks for your order!\n\nOrder %s\n\n", o.ID)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%d", it.ProductID, it.Quantity)
		if it.SelectedSize != "" {
			fmt.Fprintf(&b, " size=%s", it.SelectedSize)
		}
		if it.SelectedColor != "" {
			fmt.Fprintf(&b, " color=%s", it.SelectedColor)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal: %s %s\nStatus: %s\n", o.Total.String(), o.Currency, o.Status)

	subject := "Order confirmation " + o.ID
	if err := uc.mail.Send(ctx, uc.from, to, subject, b.String()); err != nil {
		log.Printf("[order_usecase] WARN: confirmation mail failed orderId=%s err=%v", o.ID, err)
	}
}
