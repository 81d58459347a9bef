// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
)

// CartService abstracts the cart usecase for this handler.
type CartService interface {
	Get(ctx context.Context, uid string) (*cartdom.Cart, error)
	ApplyChange(ctx context.Context, uid, productID string, qty int, size, color string) (*cartdom.Cart, error)
}

// CartHandler serves GET /cart and POST /cart. The owner uid always comes
// from the verified token context, never from the payload.
type CartHandler struct {
	Svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

// GetCart responds with the bare item list; an absent cart is an empty list.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := mw.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := h.Svc.Get(r.Context(), uid)
	if err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}
	items := c.Items
	if items == nil {
		items = []cartdom.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type cartUpdateReq struct {
	// UID is accepted for compatibility with the original client payload
	// and ignored; identity comes from the bearer token.
	UID           string `json:"uid"`
	ProductID     string `json:"productId"`
	Quantity      *int   `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

type cartUpdateResp struct {
	Message string         `json:"message"`
	Items   []cartdom.Item `json:"items"`
}

// UpdateCart applies one line-item change. quantity 0 removes the matching
// entry; negative quantities are rejected here rather than silently dropped.
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := mw.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cartUpdateReq
	if err := readJSON(w, r, &req); err != nil {
		log.Printf("[cart_handler] POST invalid json uid=%s err=%v", uid, err)
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	pid := strings.TrimSpace(req.ProductID)
	if pid == "" || req.Quantity == nil {
		writeErr(w, http.StatusBadRequest, "productId and quantity are required")
		return
	}
	if *req.Quantity < 0 {
		writeErr(w, http.StatusBadRequest, "quantity must be >= 0")
		return
	}

	c, err := h.Svc.ApplyChange(r.Context(), uid, pid, *req.Quantity, req.SelectedSize, req.SelectedColor)
	if err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}

	writeJSON(w, http.StatusOK, cartUpdateResp{Message: "cart updated", Items: c.Items})
}
