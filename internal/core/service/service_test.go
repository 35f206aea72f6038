package service

import (
	"golang.org/x/text/currency"

	"github.com/rcastano/creator-store/internal/core/domain"
)

// stubCatalog is a map-backed port.CatalogRepository for tests.
type stubCatalog struct {
	entries map[string]domain.CatalogEntry
}

func newStubCatalog(entries ...domain.CatalogEntry) *stubCatalog {
	c := &stubCatalog{entries: make(map[string]domain.CatalogEntry, len(entries))}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	return c
}

func (c *stubCatalog) Lookup(id string) (domain.CatalogEntry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

func (c *stubCatalog) Products() []domain.CatalogEntry { return nil }
func (c *stubCatalog) Videos() []domain.Video          { return nil }
func (c *stubCatalog) Plans() []domain.Plan            { return nil }
func (c *stubCatalog) Currency() currency.Unit         { return currency.USD }

// stubSessions is a map-backed port.SessionRepository for tests.
type stubSessions struct {
	carts map[string]*domain.Cart
}

func newStubSessions() *stubSessions {
	return &stubSessions{carts: make(map[string]*domain.Cart)}
}

func (s *stubSessions) Cart(sessionID string) *domain.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		s.carts[sessionID] = cart
	}
	return cart
}

func (s *stubSessions) Drop(sessionID string) { delete(s.carts, sessionID) }
func (s *stubSessions) Len() int              { return len(s.carts) }
