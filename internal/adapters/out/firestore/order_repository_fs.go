// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
)

const ordersCollection = "orders"

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: generated order id
// - fields: userId, items(array), total(string), currency, status, createdAt
//
// Totals are stored as decimal strings so money never round-trips through
// binary floating point.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(ordersCollection)
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return orderdom.Order{}, errors.New("order_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(id)
	if oid == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	snap, err := r.col().Doc(oid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}

	return docToOrder(snap)
}

func (r *OrderRepositoryFS) ListByUser(ctx context.Context, uid string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("order_repository_fs: uid is empty")
	}

	it := r.col().Where("userId", "==", id).Documents(ctx)
	defer it.Stop()

	out := []orderdom.Order{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := docToOrder(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// CreateAndClearCart writes the order and empties the owner's cart in one
// transaction. The cart document is kept (items set to []), matching the
// "emptied, not deleted" cart lifecycle.
func (r *OrderRepositoryFS) CreateAndClearCart(ctx context.Context, o orderdom.Order, cartUID string) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(o.ID)
	cid := strings.TrimSpace(cartUID)
	if oid == "" || cid == "" {
		return errors.New("order_repository_fs: order id and cart uid are required")
	}

	orderRef := r.col().Doc(oid)
	cartRef := r.Client.Collection(cartsCollection).Doc(cid)

	return r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()

		// all reads before writes (Firestore transaction rule)
		emptied := cartDoc{Items: []cartItemDoc{}, CreatedAt: now, UpdatedAt: now}
		snap, err := tx.Get(cartRef)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
		} else {
			var cur cartDoc
			if err := snap.DataTo(&cur); err == nil && !cur.CreatedAt.IsZero() {
				emptied.CreatedAt = cur.CreatedAt
			}
		}

		if err := tx.Create(orderRef, orderToDoc(o)); err != nil {
			return err
		}
		return tx.Set(cartRef, emptied)
	})
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	UserID    string        `firestore:"userId"`
	Items     []cartItemDoc `firestore:"items"`
	Total     string        `firestore:"total"`
	Currency  string        `firestore:"currency"`
	Status    string        `firestore:"status"`
	CreatedAt time.Time     `firestore:"createdAt"`
}

func orderToDoc(o orderdom.Order) orderDoc {
	return orderDoc{
		UserID:    o.UserID,
		Items:     itemsFromDomain(o.Items),
		Total:     o.Total.String(),
		Currency:  o.Currency,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func docToOrder(snap *firestore.DocumentSnapshot) (orderdom.Order, error) {
	var d orderDoc
	if err := snap.DataTo(&d); err != nil {
		return orderdom.Order{}, err
	}

	total, err := decimal.NewFromString(strings.TrimSpace(d.Total))
	if err != nil {
		return orderdom.Order{}, errors.New("order_repository_fs: bad total in doc " + snap.Ref.ID)
	}

	items := itemsToDomain(d.Items)
	if len(items) == 0 {
		items = []cartdom.Item{}
	}

	return orderdom.Order{
		ID:        snap.Ref.ID,
		UserID:    d.UserID,
		Items:     items,
		Total:     total,
		Currency:  d.Currency,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}, nil
}
