// internal/adapters/in/http/router.go
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/handler"
	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
)

// Deps is the full handler set for the storefront API.
type Deps struct {
	Auth *mw.Auth

	Cart    *handler.CartHandler
	Orders  *handler.OrderHandler
	Product *handler.ProductHandler
	Me      *handler.MeHandler

	AllowedOrigin string
}

// NewRouter wires all routes. Catalog routes are public; cart/order routes
// require a verified Firebase ID token.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	origin := deps.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// public catalog
	r.Get("/products", deps.Product.ListProducts)
	r.Get("/products/{id}", deps.Product.GetProduct)

	// authenticated storefront
	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.Handler)

		r.Get("/me", deps.Me.GetMe)

		r.Get("/cart", deps.Cart.GetCart)
		r.Post("/cart", deps.Cart.UpdateCart)

		r.Get("/orders", deps.Orders.ListOrders)
		r.Post("/orders", deps.Orders.PlaceOrder)
		r.Get("/orders/{id}", deps.Orders.GetOrder)
	})

	return r
}
