// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

const productsCollection = "products"

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: products
// - docId: store-assigned
// - fields: title, description, price(number), currency, images(array),
//   variants{sizes,colors}, stock, vendorId, category
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(productsCollection)
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	pid := strings.TrimSpace(id)
	if pid == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}

	return docToProduct(snap)
}

// List scans the collection, optionally narrowed by an exact category match.
// "" and product.CategoryAll both mean no filter.
func (r *ProductRepositoryFS) List(ctx context.Context, category string) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	q := r.col().Query
	cat := strings.TrimSpace(category)
	if cat != "" && cat != productdom.CategoryAll {
		q = q.Where("category", "==", cat)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []productdom.Product{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := docToProduct(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	Title       string              `firestore:"title"`
	Description string              `firestore:"description"`
	Price       float64             `firestore:"price"`
	Currency    string              `firestore:"currency"`
	Images      []string            `firestore:"images"`
	Variants    productdom.Variants `firestore:"variants"`
	Stock       int                 `firestore:"stock"`
	VendorID    string              `firestore:"vendorId"`
	Category    string              `firestore:"category"`
}

func docToProduct(snap *firestore.DocumentSnapshot) (productdom.Product, error) {
	var d productDoc
	if err := snap.DataTo(&d); err != nil {
		return productdom.Product{}, err
	}
	return productdom.Product{
		ID:          snap.Ref.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Currency:    d.Currency,
		Images:      d.Images,
		Variants:    d.Variants,
		Stock:       d.Stock,
		VendorID:    d.VendorID,
		Category:    d.Category,
	}, nil
}

func productToDoc(p productdom.Product) productDoc {
	price, _ := p.Price.Float64()
	return productDoc{
		Title:       p.Title,
		Description: p.Description,
		Price:       price,
		Currency:    p.Currency,
		Images:      p.Images,
		Variants:    p.Variants,
		Stock:       p.Stock,
		VendorID:    p.VendorID,
		Category:    p.Category,
	}
}

// Seed writes products in one batch (used by cmd/seed; not part of the
// serving surface). Existing docs with the same id are overwritten.
func (r *ProductRepositoryFS) Seed(ctx context.Context, products []productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}

	bw := r.Client.BulkWriter(ctx)
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		ref := r.col().Doc(strings.TrimSpace(p.ID))
		if _, err := bw.Set(ref, productToDoc(p)); err != nil {
			return err
		}
	}
	bw.End()
	return nil
}
