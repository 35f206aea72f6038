package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Display renders the amount at minor-unit precision, e.g. "19.00 USD".
func (m Money) Display() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}
