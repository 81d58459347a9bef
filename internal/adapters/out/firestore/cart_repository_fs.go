// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
)

const cartsCollection = "carts"

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: uid (docId is the source of truth for ownership)
// - fields: items(array), createdAt, updatedAt
//
// The whole item list is replaced on every write; Update wraps the
// read-modify-write in a transaction so concurrent mutations retry instead of
// clobbering each other.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartsCollection)
}

// Get returns the cart for uid. A missing document reads as an empty cart.
func (r *CartRepositoryFS) Get(ctx context.Context, uid string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("cart_repository_fs: uid is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &cartdom.Cart{UID: id, Items: []cartdom.Item{}}, nil
		}
		return nil, err
	}

	var d cartDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return d.toDomain(id), nil
}

// Update applies mutate to the current items inside a transaction and writes
// the full document back. A missing document is treated as an empty cart and
// created on write.
func (r *CartRepositoryFS) Update(ctx context.Context, uid string, mutate func(items []cartdom.Item) []cartdom.Item) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	if mutate == nil {
		return nil, errors.New("cart_repository_fs: mutate is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("cart_repository_fs: uid is empty")
	}

	ref := r.col().Doc(id)
	var written cartDoc

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()

		cur := cartDoc{Items: []cartItemDoc{}, CreatedAt: now}
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
		} else if err := snap.DataTo(&cur); err != nil {
			return err
		}
		if cur.CreatedAt.IsZero() {
			cur.CreatedAt = now
		}

		next := mutate(itemsToDomain(cur.Items))

		written = cartDoc{
			Items:     itemsFromDomain(next),
			CreatedAt: cur.CreatedAt,
			UpdatedAt: now,
		}
		return tx.Set(ref, written)
	})
	if err != nil {
		return nil, err
	}

	return written.toDomain(id), nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Items     []cartItemDoc `firestore:"items"`
	CreatedAt time.Time     `firestore:"createdAt"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
}

type cartItemDoc struct {
	ProductID     string `firestore:"productId"`
	Quantity      int    `firestore:"quantity"`
	SelectedSize  string `firestore:"selectedSize"`
	SelectedColor string `firestore:"selectedColor"`
}

func (d cartDoc) toDomain(uid string) *cartdom.Cart {
	return &cartdom.Cart{
		UID:       uid,
		Items:     itemsToDomain(d.Items),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func itemsToDomain(src []cartItemDoc) []cartdom.Item {
	out := make([]cartdom.Item, 0, len(src))
	for _, it := range src {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Quantity <= 0 {
			// drop entries a buggy writer left behind
			continue
		}
		out = append(out, cartdom.Item{
			ProductID:     pid,
			Quantity:      it.Quantity,
			SelectedSize:  strings.TrimSpace(it.SelectedSize),
			SelectedColor: strings.TrimSpace(it.SelectedColor),
		})
	}
	return out
}

func itemsFromDomain(src []cartdom.Item) []cartItemDoc {
	out := make([]cartItemDoc, 0, len(src))
	for _, it := range src {
		out = append(out, cartItemDoc{
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
		})
	}
	return out
}
