package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single dated amount owed to a payee.
// Payments are values: schedule adjustments build a new Payment instead of mutating one.
type Payment struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Payee  string          `json:"payee"`
	Memo   string          `json:"memo,omitempty"`
}

// WithAmount returns a copy of the payment carrying a different amount
func (p Payment) WithAmount(amount decimal.Decimal) Payment {
	p.Amount = amount
	return p
}

// HasMemo reports whether a memo line should be printed
func (p Payment) HasMemo() bool {
	return p.Memo != ""
}

// FormattedAmount returns the amount as printed in the numeric amount box
func (p Payment) FormattedAmount() string {
	return FormatAmount(p.Amount)
}

// FormattedDate returns the date as printed on the date line
func (p Payment) FormattedDate() string {
	return FormatDate(p.Date)
}

// WrittenAmount returns the amount spelled out for the "Dollars" line
func (p Payment) WrittenAmount() (string, error) {
	return SpellAmount(p.Amount)
}
