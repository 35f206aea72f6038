package port

import (
	"golang.org/x/text/currency"

	"github.com/rcastano/creator-store/internal/core/domain"
)

type CatalogRepository interface {
	// Lookup resolves a product id; absence is a valid result, not an error
	Lookup(id string) (domain.CatalogEntry, bool)

	// Products lists storefront products in catalog order
	Products() []domain.CatalogEntry

	// Videos lists the storefront's video embeds
	Videos() []domain.Video

	// Plans lists the membership plans
	Plans() []domain.Plan

	// Currency is the single display currency of the catalog
	Currency() currency.Unit
}
