package domain

import (
	"fmt"

	"golang.org/x/text/currency"
)

// MembershipLinePrefix is the id prefix of the synthetic cart line a
// membership join produces: joining plan "pro" adds "membership-pro".
// Plan entries are registered in the catalog under these ids so that
// the line resolves like any ordinary product.
const MembershipLinePrefix = "membership-"

type CatalogEntry struct {
	ID          string
	Title       string
	Price       Money
	Description string
	Badge       string
}

type Video struct {
	ID          string
	Title       string
	EmbedURL    string
	Description string
}

type Plan struct {
	ID          string
	Name        string
	Price       Money
	Description string
}

// Catalog is immutable reference data: products, video embeds and
// membership plans, supplied once at startup and never mutated.
type Catalog struct {
	entries  map[string]CatalogEntry
	products []CatalogEntry
	videos   []Video
	plans    []Plan
	unit     currency.Unit
}

// NewCatalog builds a catalog from its static configuration. Product ids
// must be unique, and no product may collide with the membership line id
// of a plan.
func NewCatalog(products []CatalogEntry, videos []Video, plans []Plan, unit currency.Unit) (*Catalog, error) {
	c := &Catalog{
		entries:  make(map[string]CatalogEntry, len(products)+len(plans)),
		products: products,
		videos:   videos,
		plans:    plans,
		unit:     unit,
	}

	for _, p := range products {
		if _, exists := c.entries[p.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog id %q", p.ID)
		}
		c.entries[p.ID] = p
	}

	for _, p := range plans {
		id := MembershipLinePrefix + p.ID
		if _, exists := c.entries[id]; exists {
			return nil, fmt.Errorf("duplicate catalog id %q", id)
		}
		c.entries[id] = CatalogEntry{
			ID:          id,
			Title:       p.Name + " membership",
			Price:       p.Price,
			Description: p.Description,
		}
	}

	return c, nil
}

// Lookup resolves a product id. Absence is a valid result, not an error.
func (c *Catalog) Lookup(id string) (CatalogEntry, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

func (c *Catalog) Products() []CatalogEntry {
	out := make([]CatalogEntry, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Videos() []Video {
	out := make([]Video, len(c.videos))
	copy(out, c.videos)
	return out
}

func (c *Catalog) Plans() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) Currency() currency.Unit {
	return c.unit
}
