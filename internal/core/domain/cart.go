package domain

import (
	"github.com/shopspring/decimal"
)

// Resolver maps product ids to catalog entries. Absence is a normal
// result, not a failure.
type Resolver interface {
	Lookup(id string) (CatalogEntry, bool)
}

// CartLine is the raw state of one cart entry: a weak reference to a
// catalog entry plus a positive quantity.
type CartLine struct {
	ProductID string
	Quantity  int
}

// LineItem is the derived, display-ready view of a resolvable cart line.
// It is computed on every read, never stored.
type LineItem struct {
	CatalogEntry
	Quantity int
	Subtotal decimal.Decimal
}

// Cart is the per-session aggregate: an ordered collection of cart lines
// keyed by product id. It has exactly one writer, the session that owns
// it, and carries no locks of its own.
type Cart struct {
	lines []CartLine
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add accumulates quantity onto an existing line or appends a new one at
// the end of insertion order. Quantities below 1 are clamped to 1. The
// id is not validated against any catalog: an unknown id is accepted and
// simply stays invisible in derived views until the catalog resolves it.
func (c *Cart) Add(productID string, quantity int) {
	quantity = clampQuantity(quantity)

	if i, ok := c.index[productID]; ok {
		c.lines[i].Quantity += quantity
		return
	}

	c.index[productID] = len(c.lines)
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: quantity})
}

// SetQuantity overwrites the stored quantity of an existing line,
// clamping to a minimum of 1. Setting zero never deletes the line; only
// Remove does. Unknown ids are ignored, since a late UI event racing a
// prior Remove is expected and must not resurrect the line.
func (c *Cart) SetQuantity(productID string, quantity int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines[i].Quantity = clampQuantity(quantity)
}

// Remove deletes the line if present. No-op otherwise.
func (c *Cart) Remove(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Items returns a copy of the raw state in insertion order, including
// lines that do not resolve in any catalog.
func (c *Cart) Items() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Lines projects the raw state against the catalog, in insertion order.
// Lines whose id does not resolve are skipped. The projection is
// recomputed from scratch on every call.
func (c *Cart) Lines(catalog Resolver) []LineItem {
	items := make([]LineItem, 0, len(c.lines))
	for _, line := range c.lines {
		entry, ok := catalog.Lookup(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, LineItem{
			CatalogEntry: entry,
			Quantity:     line.Quantity,
			Subtotal:     entry.Price.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return items
}

// Total is the sum of line subtotals over Lines. Zero when the cart is
// empty or every line is dangling.
func (c *Cart) Total(catalog Resolver) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Lines(catalog) {
		total = total.Add(item.Subtotal)
	}
	return total
}

// Empty reports whether the derived view has no items. A cart holding
// only dangling lines counts as empty.
func (c *Cart) Empty(catalog Resolver) bool {
	return len(c.Lines(catalog)) == 0
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
