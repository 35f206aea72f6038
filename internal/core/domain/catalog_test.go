package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/rcastano/creator-store/internal/core/domain"
)

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := domain.NewCatalog([]domain.CatalogEntry{
		entry("ebook-a", "A", "10.00"),
		entry("ebook-a", "A again", "12.00"),
	}, nil, nil, currency.USD)
	require.ErrorContains(t, err, `duplicate catalog id "ebook-a"`)
}

func TestNewCatalog_RejectsProductCollidingWithPlanLine(t *testing.T) {
	plan := domain.Plan{
		ID:   "pro",
		Name: "Pro",
		Price: domain.Money{
			Amount:   decimal.RequireFromString("29.00"),
			Currency: currency.USD,
		},
	}
	_, err := domain.NewCatalog(
		[]domain.CatalogEntry{entry("membership-pro", "Imposter", "1.00")},
		nil, []domain.Plan{plan}, currency.USD)
	require.ErrorContains(t, err, `duplicate catalog id "membership-pro"`)
}

func TestCatalogLookup(t *testing.T) {
	catalog := testCatalog(t, entry("ebook-a", "A", "10.00"))

	got, ok := catalog.Lookup("ebook-a")
	require.True(t, ok)
	require.Equal(t, "A", got.Title)

	_, ok = catalog.Lookup("missing")
	require.False(t, ok)
}

func TestCatalog_RegistersMembershipLines(t *testing.T) {
	plan := domain.Plan{
		ID:          "starter",
		Name:        "Starter",
		Description: "Monthly access",
		Price: domain.Money{
			Amount:   decimal.RequireFromString("9.00"),
			Currency: currency.USD,
		},
	}
	catalog, err := domain.NewCatalog(nil, nil, []domain.Plan{plan}, currency.USD)
	require.NoError(t, err)

	got, ok := catalog.Lookup("membership-starter")
	require.True(t, ok)
	require.Equal(t, "Starter membership", got.Title)
	require.Equal(t, "9.00 USD", got.Price.Display())

	// plan entries resolve for the cart but are not listed as products
	require.Empty(t, catalog.Products())
	require.Len(t, catalog.Plans(), 1)
}
