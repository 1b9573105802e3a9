package fixtures

import (
	"fmt"
	"time"

	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentBuilder provides fluent API for building test payments.
type PaymentBuilder struct {
	payment domain.Payment
}

// NewPayment creates a new payment builder with sensible defaults.
func NewPayment() *PaymentBuilder {
	return &PaymentBuilder{
		payment: domain.Payment{
			Payee:  "Jane Roe",
			Amount: decimal.RequireFromString("125.00"),
			Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithPayee sets the payee.
func (b *PaymentBuilder) WithPayee(payee string) *PaymentBuilder {
	b.payment.Payee = payee
	return b
}

// WithAmount sets the amount from a decimal string.
func (b *PaymentBuilder) WithAmount(amount string) *PaymentBuilder {
	b.payment.Amount = decimal.RequireFromString(amount)
	return b
}

// WithDate sets the payment date.
func (b *PaymentBuilder) WithDate(year int, month time.Month, day int) *PaymentBuilder {
	b.payment.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// WithMemo sets the memo line.
func (b *PaymentBuilder) WithMemo(memo string) *PaymentBuilder {
	b.payment.Memo = memo
	return b
}

// Build returns the constructed payment.
func (b *PaymentBuilder) Build() domain.Payment {
	return b.payment
}

// Payments builds n distinct payments one week apart, payees "Payee 1".."Payee n".
func Payments(n int) []domain.Payment {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	payments := make([]domain.Payment, 0, n)
	for i := 0; i < n; i++ {
		payments = append(payments, domain.Payment{
			Payee:  fmt.Sprintf("Payee %d", i+1),
			Amount: decimal.NewFromInt(int64(100 * (i + 1))),
			Date:   start.AddDate(0, 0, 7*i),
		})
	}
	return payments
}
