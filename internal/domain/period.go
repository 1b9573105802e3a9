package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/kevin07696/checkgen/pkg/timeutil"
)

// Period is the recurrence policy between two payments of a schedule
type Period string

const (
	PeriodWeekly   Period = "weekly"
	PeriodBiweekly Period = "biweekly"
	PeriodMonthly  Period = "monthly"
)

// ParsePeriod converts a case-insensitive name into a Period.
// An empty name selects the monthly default.
func ParsePeriod(name string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(name)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	if p == "" {
		return PeriodMonthly, nil
	}
	return p, nil
}

// Validate rejects period values other than weekly, biweekly and monthly.
// The empty value is accepted and means monthly.
func (p Period) Validate() error {
	switch p {
	case "", PeriodWeekly, PeriodBiweekly, PeriodMonthly:
		return nil
	}
	return NewDomainError(ErrorCodeValidationFailed, fmt.Sprintf("unknown period %q", string(p))).
		WithDetail("field", "period")
}

// Increment returns the date one period after date.
// Monthly keeps the day of month and clamps to the end of shorter months.
func (p Period) Increment(date time.Time) time.Time {
	return p.Advance(date, 1)
}

// Advance returns the n-th occurrence of the period anchored on start.
// Anchoring keeps a Jan 31 monthly schedule on the 31st whenever the month allows it,
// where repeated Increment calls would drift to the 29th after February.
// A period that fails Validate does not advance: every occurrence is start.
func (p Period) Advance(start time.Time, n int) time.Time {
	switch p {
	case PeriodWeekly:
		return timeutil.StartOfDay(start).AddDate(0, 0, 7*n)
	case PeriodBiweekly:
		return timeutil.StartOfDay(start).AddDate(0, 0, 14*n)
	case "", PeriodMonthly:
		return timeutil.AddMonthsClamped(start, n)
	}
	return timeutil.StartOfDay(start)
}
