package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/rcastano/creator-store/internal/core/domain"
)

func priced(id, title, price string) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:    id,
		Title: title,
		Price: domain.Money{
			Amount:   decimal.RequireFromString(price),
			Currency: currency.USD,
		},
	}
}

func TestCartService_ViewPerSession(t *testing.T) {
	catalog := newStubCatalog(priced("ebook-versioning", "Versioning in Practice", "19.00"))
	sessions := newStubSessions()
	svc := NewCartService(catalog, sessions)

	svc.Add("session-a", "ebook-versioning", 2)
	svc.Add("session-b", "ebook-versioning", 1)

	viewA := svc.View("session-a")
	require.Len(t, viewA.Items, 1)
	require.Equal(t, 2, viewA.Items[0].Quantity)
	require.Equal(t, "38.00 USD", viewA.Total.Display())

	// sessions own independent aggregates
	viewB := svc.View("session-b")
	require.Equal(t, "19.00 USD", viewB.Total.Display())
}

func TestCartService_MutatorsAreTotal(t *testing.T) {
	catalog := newStubCatalog(priced("ebook-versioning", "Versioning in Practice", "19.00"))
	sessions := newStubSessions()
	svc := NewCartService(catalog, sessions)

	// none of these may panic or reject
	svc.SetQuantity("s", "never-added", 5)
	svc.Remove("s", "never-added")
	svc.Clear("s")
	svc.Add("s", "not-in-catalog", -2)

	view := svc.View("s")
	require.Empty(t, view.Items, "dangling line must stay out of the derived view")
	require.True(t, view.Total.Amount.IsZero())
	require.Len(t, sessions.Cart("s").Items(), 1, "dangling line stays in raw state")
}

func TestCartService_EmptyCartView(t *testing.T) {
	svc := NewCartService(newStubCatalog(), newStubSessions())

	view := svc.View("fresh")
	require.Empty(t, view.Items)
	require.True(t, view.Total.Amount.IsZero())
	require.Equal(t, "0.00 USD", view.Total.Display())
}
