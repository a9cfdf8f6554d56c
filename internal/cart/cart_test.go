package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vergerducoin/verger-clients/internal/state"
	"github.com/vergerducoin/verger-clients/pkg/types"
)

func newTestCart(t *testing.T) (*Cart, state.Store) {
	t.Helper()

	store := state.NewMemoryStore()
	c, err := New(context.Background(), store, nil)
	if err != nil {
		t.Fatalf("failed to create cart: %v", err)
	}
	return c, store
}

func product(id int64, price, vat string) types.Product {
	return types.Product{
		ID:        id,
		Name:      "product",
		BasePrice: decimal.RequireFromString(price),
		VATRate:   decimal.RequireFromString(vat),
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	apples := product(1, "2.50", "5.5")

	c.AddItem(ctx, apples, 2)
	c.AddItem(ctx, apples, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)

	c.AddItem(ctx, product(1, "2.00", "5.5"), 0)
	c.AddItem(ctx, product(2, "2.00", "5.5"), -3)

	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines()))
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 2)

	c.UpdateQuantity(ctx, 1, 7)

	if got := c.Lines()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity set to 7, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 2)
	c.AddItem(ctx, product(2, "1.00", "20"), 1)

	c.UpdateQuantity(ctx, 1, 0)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line after removal, got %d", len(lines))
	}
	if lines[0].Product.ID != 2 {
		t.Fatalf("wrong line removed: %+v", lines)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 2)

	c.UpdateQuantity(ctx, 99, 4)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unknown product must not change the cart: %+v", lines)
	}
}

func TestRemoveItemUnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 2)

	c.RemoveItem(ctx, 99)

	if len(c.Lines()) != 1 {
		t.Fatal("remove of unknown product must be a no-op")
	}
}

func TestTotalsUseExactDecimalArithmetic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 3)
	c.AddItem(ctx, product(2, "10.00", "20"), 1)

	if got := c.Subtotal(); !got.Equal(decimal.RequireFromString("16.00")) {
		t.Fatalf("expected subtotal 16.00, got %s", got)
	}
	// 3 x 2.00 x 1.055 = 6.33, 10.00 x 1.20 = 12.00
	if got := c.TotalWithVAT(); !got.Equal(decimal.RequireFromString("18.33")) {
		t.Fatalf("expected tax-inclusive total 18.33, got %s", got)
	}
	if got := c.ItemCount(); got != 4 {
		t.Fatalf("expected 4 items, got %d", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(1, "2.00", "5.5"), 3)
	c.AddItem(ctx, product(2, "10.00", "20"), 1)

	c.Clear(ctx)

	if c.ItemCount() != 0 {
		t.Fatalf("expected item count 0, got %d", c.ItemCount())
	}
	if !c.IsEmpty() {
		t.Fatal("expected empty line set")
	}
	if !c.Subtotal().Equal(decimal.Zero) {
		t.Fatalf("expected zero subtotal, got %s", c.Subtotal())
	}
}

func TestCartSurvivesRestart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()

	first, err := New(ctx, store, nil)
	if err != nil {
		t.Fatalf("failed to create cart: %v", err)
	}
	first.AddItem(ctx, product(1, "2.50", "5.5"), 2)
	first.AddItem(ctx, product(2, "4.00", "20"), 1)

	second, err := New(ctx, store, nil)
	if err != nil {
		t.Fatalf("failed to restore cart: %v", err)
	}
	if got := second.ItemCount(); got != 3 {
		t.Fatalf("expected restored count 3, got %d", got)
	}
	if !second.Subtotal().Equal(decimal.RequireFromString("9.00")) {
		t.Fatalf("unexpected restored subtotal %s", second.Subtotal())
	}
}

func TestCorruptDocumentStartsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	if err := store.Save(ctx, state.CartDocument, []byte("not-json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	c, err := New(ctx, store, nil)
	if err != nil {
		t.Fatalf("corrupt document must not fail construction: %v", err)
	}
	if !c.IsEmpty() {
		t.Fatal("expected empty cart after corrupt restore")
	}
}

func TestSaleLinesSnapshotPricing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestCart(t)
	c.AddItem(ctx, product(7, "3.20", "5.5"), 2)

	lines := c.SaleLines()
	if len(lines) != 1 {
		t.Fatalf("expected one sale line, got %d", len(lines))
	}
	if lines[0].Product != 7 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot: %+v", lines[0])
	}
	if !lines[0].UnitPrice.Equal(decimal.RequireFromString("3.20")) {
		t.Fatalf("unit price must be carried, got %s", lines[0].UnitPrice)
	}
	if !lines[0].VATRate.Equal(decimal.RequireFromString("5.5")) {
		t.Fatalf("vat rate must be carried, got %s", lines[0].VATRate)
	}
}
