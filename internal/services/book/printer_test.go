package book

import (
	"errors"
	"testing"
	"time"

	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/services/schedule"
	"github.com/kevin07696/checkgen/internal/testutil/fixtures"
	"github.com/kevin07696/checkgen/internal/testutil/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newPrinterWithPayments(t *testing.T, count int, opts ...Option) (*Printer, *mocks.RecordingSurface) {
	t.Helper()
	surface := mocks.NewRecordingSurface()
	p := NewPrinter(fixtures.NewIssuer().Build(), surface.Factory(), append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, p.AddPayments(schedule.FixedRequest{
		Payee:     "Landlord",
		Amount:    decimal.RequireFromString("1500"),
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Memo:      "Rent",
		Count:     count,
		Period:    domain.PeriodMonthly,
	}))
	return p, surface
}

func TestPrinter_PrintRoundsUpToFullSheets(t *testing.T) {
	p, surface := newPrinterWithPayments(t, 7)

	b, report, err := p.Print(domain.EmptyChecksPrint, domain.PrintAll)

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Len(t, b.Checks(), 9)
	require.Len(t, report.Entries, 9)
	assert.True(t, report.Entries[7].IsBlank())
	assert.True(t, report.Entries[8].IsBlank())
	assert.Equal(t, 3, surface.Pages)
}

func TestPrinter_PrintBlankKeepsExactCount(t *testing.T) {
	p, surface := newPrinterWithPayments(t, 7)

	b, report, err := p.Print(domain.EmptyChecksBlank, domain.PrintAll)

	require.NoError(t, err)
	assert.Len(t, b.Checks(), 7)
	assert.Len(t, report.Entries, 7)
	assert.Equal(t, 0, report.Blank())
	assert.Equal(t, 3, surface.Pages)
}

func TestPrinter_StartingCheckNumber(t *testing.T) {
	p, _ := newPrinterWithPayments(t, 9, WithStartingCheckNumber(5000))

	_, report, err := p.Print(domain.EmptyChecksPrint, domain.PrintNone)

	require.NoError(t, err)
	require.Len(t, report.Entries, 9)
	for i, e := range report.Entries {
		assert.Equal(t, 5000+i, e.CheckNumber)
	}
}

func TestPrinter_DefaultStartingCheckNumber(t *testing.T) {
	p, _ := newPrinterWithPayments(t, 1)

	_, report, err := p.Print(domain.EmptyChecksBlank, domain.PrintNone)

	require.NoError(t, err)
	assert.Equal(t, DefaultStartingCheckNumber, report.Entries[0].CheckNumber)
}

func TestPrinter_DistributePaymentFeedsReport(t *testing.T) {
	surface := mocks.NewRecordingSurface()
	p := NewPrinter(fixtures.NewIssuer().Build(), surface.Factory())
	require.NoError(t, p.DistributePayment(schedule.DistributionRequest{
		Payee:     "Contractor",
		Total:     decimal.RequireFromString("2500"),
		Amount:    decimal.RequireFromString("1000"),
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Period:    domain.PeriodBiweekly,
		FoldLast:  true,
	}))

	_, report, err := p.Print(domain.EmptyChecksBlank, domain.PrintAll)

	require.NoError(t, err)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "1,000.00", report.Entries[0].Amount())
	assert.Equal(t, "1,500.00", report.Entries[1].Amount())
	assert.Equal(t, "6/15/2024", report.Entries[1].Date())
	assert.True(t, report.Total().Equal(decimal.RequireFromString("2500")))
	assert.Equal(t, 2, p.Schedule().Len())
}

func TestPrinter_SurfaceFactoryError(t *testing.T) {
	factoryErr := errors.New("font file not found")
	p := NewPrinter(fixtures.NewIssuer().Build(), func() (ports.Surface, error) { return nil, factoryErr })

	b, report, err := p.Print(domain.EmptyChecksPrint, domain.PrintAll)

	assert.Same(t, factoryErr, err)
	assert.Nil(t, b)
	assert.Nil(t, report)
}

func TestPrinter_NoPayments(t *testing.T) {
	surface := mocks.NewRecordingSurface()
	p := NewPrinter(fixtures.NewIssuer().Build(), surface.Factory())

	b, report, err := p.Print(domain.EmptyChecksPrint, domain.PrintAll)

	require.NoError(t, err)
	assert.Empty(t, b.Checks())
	assert.Empty(t, report.Entries)
	assert.Equal(t, 0, surface.Pages)
}
