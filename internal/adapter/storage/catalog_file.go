package storage

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/rcastano/creator-store/internal/core/domain"
)

type catalogFile struct {
	Currency string         `yaml:"currency"`
	Products []productEntry `yaml:"products"`
	Videos   []videoEntry   `yaml:"videos"`
	Plans    []planEntry    `yaml:"plans"`
}

type productEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Badge       string `yaml:"badge"`
}

type videoEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	EmbedURL    string `yaml:"embed_url"`
	Description string `yaml:"description"`
}

type planEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
}

// LoadCatalog reads and parses the storefront catalog file. The catalog
// is startup configuration: loaded once, immutable for the process
// lifetime.
func LoadCatalog(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a domain.Catalog from YAML. Ids must be non-empty,
// prices must parse as non-negative decimals, and the currency must be a
// known ISO code (USD when omitted).
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	unit := currency.USD
	if file.Currency != "" {
		var err error
		unit, err = currency.ParseISO(file.Currency)
		if err != nil {
			return nil, fmt.Errorf("parse currency %q: %w", file.Currency, err)
		}
	}

	products := make([]domain.CatalogEntry, 0, len(file.Products))
	for _, p := range file.Products {
		price, err := parsePrice(p.ID, p.Price, unit)
		if err != nil {
			return nil, err
		}
		products = append(products, domain.CatalogEntry{
			ID:          p.ID,
			Title:       p.Title,
			Price:       price,
			Description: p.Description,
			Badge:       p.Badge,
		})
	}

	videos := make([]domain.Video, 0, len(file.Videos))
	for _, v := range file.Videos {
		if v.ID == "" {
			return nil, fmt.Errorf("video %q: missing id", v.Title)
		}
		videos = append(videos, domain.Video{
			ID:          v.ID,
			Title:       v.Title,
			EmbedURL:    v.EmbedURL,
			Description: v.Description,
		})
	}

	plans := make([]domain.Plan, 0, len(file.Plans))
	for _, p := range file.Plans {
		price, err := parsePrice(p.ID, p.Price, unit)
		if err != nil {
			return nil, err
		}
		plans = append(plans, domain.Plan{
			ID:          p.ID,
			Name:        p.Name,
			Price:       price,
			Description: p.Description,
		})
	}

	catalog, err := domain.NewCatalog(products, videos, plans, unit)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}

func parsePrice(id, raw string, unit currency.Unit) (domain.Money, error) {
	if id == "" {
		return domain.Money{}, fmt.Errorf("catalog entry with price %q: missing id", raw)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Money{}, fmt.Errorf("entry %q: parse price %q: %w", id, raw, err)
	}
	if amount.IsNegative() {
		return domain.Money{}, fmt.Errorf("entry %q: negative price %s", id, amount)
	}

	return domain.Money{Amount: amount, Currency: unit}, nil
}
