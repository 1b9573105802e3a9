package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportEntry records what was printed on one check face.
// Payment is nil for blank trailing checks.
type ReportEntry struct {
	Payment     *Payment `json:"payment,omitempty"`
	CheckNumber int      `json:"check_number"`
}

// IsBlank returns true when no payment was filled in on the check
func (e ReportEntry) IsBlank() bool {
	return e.Payment == nil
}

// Date returns the printed date, or "" for a blank check
func (e ReportEntry) Date() string {
	if e.Payment == nil {
		return ""
	}
	return e.Payment.FormattedDate()
}

// Payee returns the printed payee, or "" for a blank check
func (e ReportEntry) Payee() string {
	if e.Payment == nil {
		return ""
	}
	return e.Payment.Payee
}

// Amount returns the printed numeric amount, or "" for a blank check
func (e ReportEntry) Amount() string {
	if e.Payment == nil {
		return ""
	}
	return e.Payment.FormattedAmount()
}

// Memo returns the printed memo, or "" when none was printed
func (e ReportEntry) Memo() string {
	if e.Payment == nil {
		return ""
	}
	return e.Payment.Memo
}

// Report is the ordered audit trail of one printed batch
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Issuer      string        `json:"issuer"`
	Entries     []ReportEntry `json:"entries"`
	RunID       uuid.UUID     `json:"run_id"`
}

// NewReport starts an empty report for the given issuer
func NewReport(issuer string, generatedAt time.Time) *Report {
	return &Report{
		RunID:       uuid.New(),
		GeneratedAt: generatedAt,
		Issuer:      issuer,
		Entries:     []ReportEntry{},
	}
}

// Total sums the amounts of every filled check
func (r *Report) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.Entries {
		if e.Payment != nil {
			total = total.Add(e.Payment.Amount)
		}
	}
	return total
}

// Filled counts the checks carrying a payment
func (r *Report) Filled() int {
	n := 0
	for _, e := range r.Entries {
		if !e.IsBlank() {
			n++
		}
	}
	return n
}

// Blank counts the blank trailing checks
func (r *Report) Blank() int {
	return len(r.Entries) - r.Filled()
}
