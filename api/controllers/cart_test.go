package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vergerducoin/verger-clients/internal/cart"
	"github.com/vergerducoin/verger-clients/internal/gateway"
	"github.com/vergerducoin/verger-clients/internal/state"
	pkgerrors "github.com/vergerducoin/verger-clients/pkg/errors"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

type stubCatalogGateway struct {
	products map[int64]types.Product
}

func (s *stubCatalogGateway) ListProducts(ctx context.Context, filter gateway.ProductFilter) ([]types.Product, error) {
	out := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalogGateway) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return &p, nil
}

func (s *stubCatalogGateway) ListInSeasonProducts(ctx context.Context) ([]types.Product, error) {
	return nil, nil
}

func (s *stubCatalogGateway) ListCategories(ctx context.Context) ([]types.Category, error) {
	return nil, nil
}

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.New(context.Background(), state.NewMemoryStore(), nil)
	require.NoError(t, err)
	return c
}

func testProduct(id int64, price string) types.Product {
	return types.Product{
		ID:        id,
		Name:      "Produit",
		BasePrice: decimal.RequireFromString(price),
		VATRate:   decimal.RequireFromString("5.50"),
	}
}

func cartRouter(c *cart.Cart, gw CatalogGateway) http.Handler {
	r := chi.NewRouter()
	r.Get("/cart", ViewCart(c))
	r.Post("/cart/items", AddCartItem(c, gw, nil))
	r.Patch("/cart/items/{productID}", UpdateCartItem(c, nil))
	r.Delete("/cart/items/{productID}", RemoveCartItem(c, nil))
	r.Delete("/cart", ClearCart(c))
	return r
}

func TestAddCartItemResolvesProduct(t *testing.T) {
	c := newTestCart(t)
	gw := &stubCatalogGateway{products: map[int64]types.Product{7: testProduct(7, "2.00")}}
	router := cartRouter(c, gw)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":7,"quantity":3}`))
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, c.ItemCount())
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	c := newTestCart(t)
	gw := &stubCatalogGateway{products: map[int64]types.Product{}}
	router := cartRouter(c, gw)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":99,"quantity":1}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsEmpty())
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 2)
	router := cartRouter(c, &stubCatalogGateway{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/cart/items/7", strings.NewReader(`{"quantity":0}`))
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, c.IsEmpty())
}

func TestRemoveCartItemBadID(t *testing.T) {
	c := newTestCart(t)
	router := cartRouter(c, &stubCatalogGateway{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/cart/items/abc", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCart(t *testing.T) {
	c := newTestCart(t)
	c.AddItem(context.Background(), testProduct(7, "2.00"), 2)
	router := cartRouter(c, &stubCatalogGateway{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, c.IsEmpty())
}
