package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/services/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJob_Example(t *testing.T) {
	job, err := ParseJob([]byte(ExampleJobYAML))
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings LLC", job.Issuer.Name)
	assert.Equal(t, "011000015", job.Issuer.Bank.RoutingNumber)
	assert.Equal(t, "000123456789", job.Issuer.AccountNumber)
	assert.Equal(t, 1001, job.CheckNumber(5000))
	assert.Equal(t, domain.EmptyChecksPrint, job.EmptyChecksPolicy())
	assert.Equal(t, domain.PrintAll, job.PrintType())

	require.Len(t, job.Payments, 2)
	rent := job.Payments[0]
	assert.False(t, rent.IsDistribution())
	assert.True(t, rent.Amount.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, 12, *rent.Count)
	assert.True(t, rent.StartDate.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))

	contract := job.Payments[1]
	assert.True(t, contract.IsDistribution())
	assert.True(t, contract.Total.Equal(decimal.RequireFromString("2500")))
	assert.True(t, contract.FoldLast)
}

func TestParseJob_Defaults(t *testing.T) {
	job, err := ParseJob([]byte(`
issuer:
  name: Acme
  account_number: "1"
  bank: {name: Bank, routing_number: "2"}
payments:
  - payee: Someone
    amount: "0.10"
    start_date: 2024-05-01
`))
	require.NoError(t, err)

	assert.Equal(t, 7, job.CheckNumber(7))
	assert.Equal(t, domain.EmptyChecksPrint, job.EmptyChecksPolicy())
	assert.Equal(t, domain.PrintAll, job.PrintType())
	require.NotNil(t, job.Payments[0].Count)
	assert.Equal(t, 1, *job.Payments[0].Count)
	assert.Equal(t, "0.1", job.Payments[0].Amount.String())
}

func TestParseJob_Errors(t *testing.T) {
	issuer := `
issuer:
  name: Acme
  account_number: "1"
  bank: {name: Bank, routing_number: "2"}
`
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "issuer: [unclosed"},
		{"missing issuer", "payments: []"},
		{"bad empty checks", issuer + "empty_checks: sometimes\n"},
		{"bad print layer", issuer + "print: [hologram]\n"},
		{"bad period", issuer + "payments:\n  - {payee: A, amount: 1, start_date: 2024-01-01, period: daily}\n"},
		{"bad date", issuer + "payments:\n  - {payee: A, amount: 1, start_date: 01/02/2024}\n"},
		{"missing date", issuer + "payments:\n  - {payee: A, amount: 1}\n"},
		{"negative amount", issuer + "payments:\n  - {payee: A, amount: -1, start_date: 2024-01-01}\n"},
		{"negative starting number", issuer + "starting_check_number: -4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := ParseJob([]byte(tt.yaml))
			assert.Error(t, err)
			assert.Nil(t, job)
		})
	}
}

func TestJob_ApplyFeedsSchedule(t *testing.T) {
	job, err := ParseJob([]byte(ExampleJobYAML))
	require.NoError(t, err)

	s := schedule.New(nil)
	require.NoError(t, job.Apply(s))

	payments := s.Payments()
	require.Len(t, payments, 14)
	assert.Equal(t, "Landlord", payments[0].Payee)
	assert.True(t, payments[1].Date.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Contractor", payments[13].Payee)
	assert.True(t, payments[13].Amount.Equal(decimal.RequireFromString("1500")))
	assert.True(t, payments[13].Date.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestJob_ApplyReportsFailingEntry(t *testing.T) {
	job, err := ParseJob([]byte(`
issuer:
  name: Acme
  account_number: "1"
  bank: {name: Bank, routing_number: "2"}
payments:
  - {payee: A, amount: 10, start_date: 2024-01-01}
  - {payee: B, total: 100, amount: 0, start_date: 2024-01-01}
`))
	require.NoError(t, err)

	s := schedule.New(nil)
	err = job.Apply(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payments[1]")
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeValidationAmountInvalid))
	assert.Equal(t, 1, s.Len())
}

func TestJob_ApplyRejectsOversizedDistribution(t *testing.T) {
	job, err := ParseJob([]byte(`
issuer:
  name: Acme
  account_number: "1"
  bank: {name: Bank, routing_number: "2"}
payments:
  - {payee: A, total: 100000000000000000000, amount: 1, start_date: 2024-01-01}
`))
	require.NoError(t, err)

	s := schedule.New(nil)
	err = job.Apply(s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payments[0]")
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeValidationFailed))
	assert.Equal(t, 0, s.Len())
}

func TestParseJob_NegativeStartingNumberDetail(t *testing.T) {
	_, err := ParseJob([]byte(`
issuer:
  name: Acme
  account_number: "1"
  bank: {name: Bank, routing_number: "2"}
starting_check_number: -4
`))

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeConfigInvalid, domainErr.Code)
	assert.Equal(t, "starting_check_number must not be negative", domainErr.Message)
	assert.Equal(t, "starting_check_number", domainErr.Details["field"])
}

func TestLoadJob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ExampleJobYAML), 0o644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Len(t, job.Payments, 2)

	_, err = LoadJob(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
