// internal/adapters/in/http/handler/product_handler.go
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

// ProductService abstracts the catalog usecase for this handler.
type ProductService interface {
	List(ctx context.Context, category string) ([]productdom.Product, error)
	GetByID(ctx context.Context, id string) (productdom.Product, error)
}

// ProductHandler serves the public catalog routes.
type ProductHandler struct {
	Svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	products, err := h.Svc.List(r.Context(), category)
	if err != nil {
		writeUsecaseErr(w, "product_handler", err)
		return
	}
	if products == nil {
		products = []productdom.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeErr(w, http.StatusBadRequest, "product id is required")
		return
	}

	p, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, "product_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
