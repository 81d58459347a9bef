// internal/adapters/in/http/router_test.go
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/handler"
	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
	cartdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/cart"
	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

// ----- stubs -----

type stubVerifier struct{}

func (stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	return &firebaseauth.Token{
		UID:    "user-1",
		Claims: map[string]interface{}{"email": "buyer@example.com"},
	}, nil
}

type stubCartSvc struct {
	items    []cartdom.Item
	applyErr error

	gotProductID string
	gotQty       int
}

func (s *stubCartSvc) Get(ctx context.Context, uid string) (*cartdom.Cart, error) {
	return &cartdom.Cart{UID: uid, Items: s.items}, nil
}

func (s *stubCartSvc) ApplyChange(ctx context.Context, uid, productID string, qty int, size, color string) (*cartdom.Cart, error) {
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	s.gotProductID = productID
	s.gotQty = qty
	next := cartdom.Apply(s.items, productID, qty, size, color)
	s.items = next
	return &cartdom.Cart{UID: uid, Items: next}, nil
}

type stubOrderSvc struct {
	orders   map[string]orderdom.Order
	placeID  string
	placeErr error

	gotItems []cartdom.Item
	gotEmail string
}

func (s *stubOrderSvc) Place(ctx context.Context, uid, email string, items []cartdom.Item, clientTotal *decimal.Decimal) (string, error) {
	if s.placeErr != nil {
		return "", s.placeErr
	}
	s.gotItems = items
	s.gotEmail = email
	return s.placeID, nil
}

func (s *stubOrderSvc) Get(ctx context.Context, uid, orderID string) (orderdom.Order, error) {
	o, ok := s.orders[orderID]
	if !ok || o.UserID != uid {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func (s *stubOrderSvc) ListByUser(ctx context.Context, uid string) ([]orderdom.Order, error) {
	out := []orderdom.Order{}
	for _, o := range s.orders {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubProductSvc struct {
	products map[string]productdom.Product
	listErr  error

	gotCategory string
}

func (s *stubProductSvc) List(ctx context.Context, category string) ([]productdom.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.gotCategory = category
	out := []productdom.Product{}
	for _, p := range s.products {
		if category == "" || category == productdom.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductSvc) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

type testEnv struct {
	router   http.Handler
	cart     *stubCartSvc
	orders   *stubOrderSvc
	products *stubProductSvc
}

func newTestEnv() *testEnv {
	cart := &stubCartSvc{}
	orders := &stubOrderSvc{orders: map[string]orderdom.Order{}}
	products := &stubProductSvc{products: map[string]productdom.Product{}}

	r := NewRouter(Deps{
		Auth:          &mw.Auth{Verifier: stubVerifier{}},
		Cart:          handler.NewCartHandler(cart),
		Orders:        handler.NewOrderHandler(orders),
		Product:       handler.NewProductHandler(products),
		Me:            &handler.MeHandler{},
		AllowedOrigin: "*",
	})
	return &testEnv{router: r, cart: cart, orders: orders, products: products}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func timeFixture() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// ----- tests -----

func TestHealthz(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestProducts_PublicList(t *testing.T) {
	env := newTestEnv()
	env.products.products["shirt"] = productdom.Product{ID: "shirt", Title: "Cotton T-Shirt", Category: "Men"}
	env.products.products["jacket"] = productdom.Product{ID: "jacket", Title: "Winter Jacket", Category: "Women"}

	t.Run("no auth required", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []productdom.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("category query is forwarded", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products?category=Women", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Women", env.products.gotCategory)

		var got []productdom.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "jacket", got[0].ID)
	})

	t.Run("empty catalog is an empty array, not null", func(t *testing.T) {
		empty := newTestEnv()
		rec := empty.do(t, http.MethodGet, "/products", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("upstream failure is a generic 500", func(t *testing.T) {
		env.products.listErr = assert.AnError
		defer func() { env.products.listErr = nil }()

		rec := env.do(t, http.MethodGet, "/products", nil, false)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestProducts_GetByID(t *testing.T) {
	env := newTestEnv()
	env.products.products["mug"] = productdom.Product{ID: "mug", Title: "Coffee Mug"}

	t.Run("found", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products/mug", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)

		var got productdom.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Coffee Mug", got.Title)
	})

	t.Run("missing is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products/nope", nil, false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCart_RequiresAuth(t *testing.T) {
	env := newTestEnv()

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/cart", nil, false).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/cart", map[string]any{"productId": "p1", "quantity": 1}, false).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/orders", nil, false).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodPost, "/orders", nil, false).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/me", nil, false).Code)
}

func TestCart_Get(t *testing.T) {
	env := newTestEnv()
	env.cart.items = []cartdom.Item{{ProductID: "p1", Quantity: 2, SelectedSize: "M"}}

	rec := env.do(t, http.MethodGet, "/cart", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []cartdom.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
}

func TestCart_Update(t *testing.T) {
	t.Run("adds an item", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{
			"productId": "p1", "quantity": 2, "selectedSize": "M", "selectedColor": "Red",
		}, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string         `json:"message"`
			Items   []cartdom.Item `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "cart updated", resp.Message)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Red", resp.Items[0].SelectedColor)
	})

	t.Run("quantity zero removes", func(t *testing.T) {
		env := newTestEnv()
		env.cart.items = []cartdom.Item{{ProductID: "p1", Quantity: 2}}

		rec := env.do(t, http.MethodPost, "/cart", map[string]any{"productId": "p1", "quantity": 0}, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, env.cart.gotQty)
		assert.Empty(t, env.cart.items)
	})

	t.Run("payload uid is ignored", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{
			"uid": "attacker", "productId": "p1", "quantity": 1,
		}, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing productId", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{"quantity": 1}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing quantity", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{"productId": "p1"}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{"productId": "p1", "quantity": -1}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/cart", map[string]any{"productId": "p1", "quantity": 1, "bogus": true}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrders_Place(t *testing.T) {
	t.Run("valid placement", func(t *testing.T) {
		env := newTestEnv()
		env.orders.placeID = "ord-123"

		rec := env.do(t, http.MethodPost, "/orders", map[string]any{
			"items": []map[string]any{
				{"productId": "p1", "quantity": 2, "selectedSize": "M", "selectedColor": ""},
			},
			"total": "39.98",
		}, true)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ord-123", resp.ID)
		assert.Equal(t, "buyer@example.com", env.orders.gotEmail)
		require.Len(t, env.orders.gotItems, 1)
		assert.Equal(t, 2, env.orders.gotItems[0].Quantity)
	})

	t.Run("empty items", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/orders", map[string]any{"items": []map[string]any{}}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("item with zero quantity", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/orders", map[string]any{
			"items": []map[string]any{{"productId": "p1", "quantity": 0}},
		}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("item without productId", func(t *testing.T) {
		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/orders", map[string]any{
			"items": []map[string]any{{"productId": "", "quantity": 1}},
		}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString("{not json"))
		req.Header.Set("Authorization", "Bearer test-token")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrders_GetAndList(t *testing.T) {
	env := newTestEnv()
	mine, err := orderdom.New("ord-1", "user-1", []cartdom.Item{{ProductID: "p1", Quantity: 1}}, decimal.RequireFromString("9.99"), "USD", timeFixture())
	require.NoError(t, err)
	theirs, err := orderdom.New("ord-2", "user-2", []cartdom.Item{{ProductID: "p2", Quantity: 1}}, decimal.Zero, "USD", timeFixture())
	require.NoError(t, err)
	env.orders.orders["ord-1"] = mine
	env.orders.orders["ord-2"] = theirs

	t.Run("list returns only own orders", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []orderdom.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "ord-1", got[0].ID)
	})

	t.Run("get own order", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders/ord-1", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var got orderdom.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, orderdom.StatusPending, got.Status)
	})

	t.Run("foreign order is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders/ord-2", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing order is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/orders/nope", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/me", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got["uid"])
	assert.Equal(t, "buyer@example.com", got["email"])
}
