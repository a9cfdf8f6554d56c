package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/api/responses"
	"github.com/vergerducoin/verger-clients/api/validators"
	"github.com/vergerducoin/verger-clients/internal/cart"
	"github.com/vergerducoin/verger-clients/pkg/logger"
)

type cartView struct {
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
}

func newCartView(c *cart.Cart) cartView {
	return cartView{
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		Total:     c.TotalWithVAT(),
	}
}

func ViewCart(c *cart.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartView(c))
	}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// AddCartItem resolves the product remotely and merges it into the cart.
func AddCartItem(c *cart.Cart, gw CatalogGateway, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := gw.GetProduct(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.AddItem(r.Context(), *product, payload.Quantity)
		responses.WriteSuccess(w, newCartView(c))
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the absolute quantity; zero or less removes the line.
func UpdateCartItem(c *cart.Cart, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.UpdateQuantity(r.Context(), id, payload.Quantity)
		responses.WriteSuccess(w, newCartView(c))
	}
}

func RemoveCartItem(c *cart.Cart, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c.RemoveItem(r.Context(), id)
		responses.WriteSuccess(w, newCartView(c))
	}
}

func ClearCart(c *cart.Cart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(c))
	}
}
