// internal/adapters/in/http/handler/order_handler.go
package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
)

// OrderService abstracts the order usecase for this handler.
type OrderService interface {
	Place(ctx context.Context, uid, email string, items []cartdom.Item, clientTotal *decimal.Decimal) (string, error)
	Get(ctx context.Context, uid, orderID string) (orderdom.Order, error)
	ListByUser(ctx context.Context, uid string) ([]orderdom.Order, error)
}

// OrderHandler serves GET /orders, POST /orders and GET /orders/{id}.
type OrderHandler struct {
	Svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	uid, ok := mw.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.Svc.ListByUser(r.Context(), uid)
	if err != nil {
		writeUsecaseErr(w, "order_handler", err)
		return
	}
	if orders == nil {
		orders = []orderdom.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := mw.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	oid := strings.TrimSpace(chi.URLParam(r, "id"))
	if oid == "" {
		writeErr(w, http.StatusBadRequest, "order id is required")
		return
	}

	o, err := h.Svc.Get(r.Context(), uid, oid)
	if err != nil {
		writeUsecaseErr(w, "order_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type placeOrderReq struct {
	// UID is accepted for compatibility and ignored; see cartUpdateReq.
	UID   string         `json:"uid"`
	Items []orderItemReq `json:"items"`
	// Total is optional; the server recomputes from catalog prices and only
	// logs a mismatch.
	Total *decimal.Decimal `json:"total"`
}

type orderItemReq struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

type placeOrderResp struct {
	ID string `json:"id"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	uid, email, ok := mw.CurrentUIDAndEmail(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req placeOrderReq
	if err := readJSON(w, r, &req); err != nil {
		log.Printf("[order_handler] POST invalid json uid=%s err=%v", uid, err)
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(req.Items) == 0 {
		writeErr(w, http.StatusBadRequest, "items must not be empty")
		return
	}
	items := make([]cartdom.Item, 0, len(req.Items))
	for _, it := range req.Items {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Quantity < 1 {
			writeErr(w, http.StatusBadRequest, "each item needs productId and quantity >= 1")
			return
		}
		items = append(items, cartdom.Item{
			ProductID:     pid,
			Quantity:      it.Quantity,
			SelectedSize:  strings.TrimSpace(it.SelectedSize),
			SelectedColor: strings.TrimSpace(it.SelectedColor),
		})
	}

	id, err := h.Svc.Place(r.Context(), uid, email, items, req.Total)
	if err != nil {
		writeUsecaseErr(w, "order_handler", err)
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResp{ID: id})
}
