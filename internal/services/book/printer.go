package book

import (
	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/services/schedule"
	"go.uber.org/zap"
)

// DefaultStartingCheckNumber is the first check number when none is configured
const DefaultStartingCheckNumber = 1001

// Printer collects scheduled payments for one issuer and prints them as a book
type Printer struct {
	issuer              *domain.Issuer
	schedule            *schedule.Schedule
	newSurface          ports.SurfaceFactory
	logger              *zap.Logger
	startingCheckNumber int
}

// Option configures a Printer
type Option func(*Printer)

// WithStartingCheckNumber sets the number of the first printed check
func WithStartingCheckNumber(n int) Option {
	return func(p *Printer) {
		p.startingCheckNumber = n
	}
}

// WithLogger sets the logger shared by the printer, its schedule and its books
func WithLogger(logger *zap.Logger) Option {
	return func(p *Printer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPrinter creates a printer drawing onto surfaces made by newSurface
func NewPrinter(issuer *domain.Issuer, newSurface ports.SurfaceFactory, opts ...Option) *Printer {
	p := &Printer{
		issuer:              issuer,
		newSurface:          newSurface,
		logger:              zap.NewNop(),
		startingCheckNumber: DefaultStartingCheckNumber,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.schedule = schedule.New(p.logger)
	return p
}

// Schedule exposes the printer's payment schedule
func (p *Printer) Schedule() *schedule.Schedule {
	return p.schedule
}

// AddPayments schedules a fixed number of recurring payments
func (p *Printer) AddPayments(req schedule.FixedRequest) error {
	return p.schedule.AddPayments(req)
}

// DistributePayment schedules a total amount split across several checks
func (p *Printer) DistributePayment(req schedule.DistributionRequest) error {
	return p.schedule.DistributePayment(req)
}

// Print lays out every scheduled payment on its own check. With EmptyChecksPrint the
// book is rounded up to whole sheets with blank checks.
func (p *Printer) Print(emptyChecks domain.EmptyChecks, printType domain.PrintType) (*Book, *domain.Report, error) {
	payments := p.schedule.Payments()
	numChecks := emptyChecks.CheckCount(len(payments))

	surface, err := p.newSurface()
	if err != nil {
		return nil, nil, err
	}

	book, err := NewBook(p.issuer, numChecks, p.startingCheckNumber, surface, p.logger)
	if err != nil {
		return nil, nil, err
	}

	report, err := book.Print(payments, printType)
	if err != nil {
		return nil, nil, err
	}
	return book, report, nil
}
