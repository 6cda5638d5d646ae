package models

import "github.com/shopspring/decimal"

// Money is an exact monetary value: an integer amount in the smallest
// currency unit plus a three-letter currency code. Amounts are never
// represented as floating point; division by 100 happens at render time only.
type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// String renders the amount for display, e.g. "USD 17.00".
func (m Money) String() string {
	return FormatCents(m.AmountCents, m.Currency)
}

// FormatCents renders an integer cents amount with its currency code.
func FormatCents(cents int64, currency string) string {
	return currency + " " + decimal.New(cents, -2).StringFixed(2)
}
