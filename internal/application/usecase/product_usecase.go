// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

var (
	ErrProductInvalidArgument = errors.New("product_usecase: invalid argument")
)

// ProductUsecase serves catalog reads.
type ProductUsecase struct {
	repo productdom.Repository

	// optional: resolves gs:// image refs to signed https URLs
	images ImageURLResolver
}

func NewProductUsecase(repo productdom.Repository, images ImageURLResolver) *ProductUsecase {
	return &ProductUsecase{repo: repo, images: images}
}

// List returns the catalog, optionally filtered by exact category match.
// category "" and "All" both mean no filter.
func (uc *ProductUsecase) List(ctx context.Context, category string) ([]productdom.Product, error) {
	out, err := uc.repo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	for i := range out {
		uc.resolveImages(ctx, &out[i])
	}
	return out, nil
}

// GetByID returns one product or product.ErrNotFound.
func (uc *ProductUsecase) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return productdom.Product{}, ErrProductInvalidArgument
	}
	p, err := uc.repo.GetByID(ctx, pid)
	if err != nil {
		return productdom.Product{}, err
	}
	uc.resolveImages(ctx, &p)
	return p, nil
}

// resolveImages rewrites image refs in place, best-effort. An unresolvable
// ref is kept as stored rather than dropped.
func (uc *ProductUsecase) resolveImages(ctx context.Context, p *productdom.Product) {
	if uc.images == nil {
		return
	}
	for i, ref := range p.Images {
		u, err := uc.images.Resolve(ctx, ref)
		if err != nil {
			log.Printf("[product_usecase] WARN: image resolve failed productId=%s ref=%q err=%v", p.ID, ref, err)
			continue
		}
		p.Images[i] = u
	}
}
