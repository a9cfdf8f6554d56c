package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/internal/state"
	"github.com/vergerducoin/verger-clients/pkg/logger"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

// Line is one (product, quantity) pairing in the cart. The product is a
// catalog snapshot; the backend recomputes pricing at checkout.
type Line struct {
	Product  types.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

type document struct {
	Items []Line `json:"items"`
}

// Cart is the client-side cart aggregate. Local mutation is authoritative
// for display; every mutation writes through to the state store so the
// cart survives a process restart. Persistence failures are logged, never
// surfaced, because durability is best-effort on the client.
type Cart struct {
	mu    sync.Mutex
	store state.Store
	logg  *logger.Logger
	lines []Line
}

// New restores the cart from the state store. A missing or unreadable
// document yields an empty cart.
func New(ctx context.Context, store state.Store, logg *logger.Logger) (*Cart, error) {
	if store == nil {
		return nil, fmt.Errorf("state store is required")
	}

	c := &Cart{store: store, logg: logg}

	data, err := store.Load(ctx, state.CartDocument)
	switch {
	case errors.Is(err, state.ErrNotFound):
		return c, nil
	case err != nil:
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "document", state.CartDocument), "failed to restore cart, starting empty")
		}
		return c, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "document", state.CartDocument), "corrupt cart document, starting empty")
		}
		return c, nil
	}

	for _, line := range doc.Items {
		if line.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, line)
	}
	return c, nil
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line. Non-positive quantities are ignored.
func (c *Cart) AddItem(ctx context.Context, product types.Product, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			c.persist(ctx)
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	c.persist(ctx)
}

// UpdateQuantity sets a line's quantity exactly. Zero or negative removes
// the line; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(ctx, productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			c.persist(ctx)
			return
		}
	}
}

// RemoveItem deletes the matching line if present.
func (c *Cart) RemoveItem(ctx context.Context, productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(ctx, productID)
}

func (c *Cart) removeLocked(ctx context.Context, productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persist(ctx)
}

// Lines returns a copy of the current line set in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// ItemCount returns the summed quantity across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums unit price times quantity over all lines, VAT excluded.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(lineSubtotal(line))
	}
	return total
}

// TotalWithVAT applies each line's own VAT rate to that line's subtotal
// and sums the rounded gross amounts. VAT is per line, never blended, so
// the client total matches the backend receipt.
func (c *Cart) TotalWithVAT() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, line := range c.lines {
		gross := lineSubtotal(line).Mul(vatMultiplier(line.Product.VATRate)).Round(2)
		total = total.Add(gross)
	}
	return total
}

// SaleLines snapshots the cart for a checkout submission, carrying the
// unit price and VAT rate the customer saw.
func (c *Cart) SaleLines() []types.SaleLineInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.SaleLineInput, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, types.SaleLineInput{
			Product:   line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.BasePrice,
			VATRate:   line.Product.VATRate,
		})
	}
	return out
}

func lineSubtotal(line Line) decimal.Decimal {
	return line.Product.BasePrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func vatMultiplier(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate.Div(decimal.NewFromInt(100)))
}

// persist writes the cart through to the state store. Callers hold the
// lock. Errors are logged and swallowed.
func (c *Cart) persist(ctx context.Context) {
	data, err := json.Marshal(document{Items: c.lines})
	if err != nil {
		if c.logg != nil {
			c.logg.Error(ctx, "failed to encode cart document", err)
		}
		return
	}
	if err := c.store.Save(ctx, state.CartDocument, data); err != nil {
		if c.logg != nil {
			c.logg.Error(ctx, "failed to persist cart document", err)
		}
	}
}
