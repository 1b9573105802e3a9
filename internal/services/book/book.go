package book

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/services/layout"
	"github.com/kevin07696/checkgen/pkg/observability"
	"github.com/kevin07696/checkgen/pkg/timeutil"
	"go.uber.org/zap"
)

// Book is a run of contiguously numbered checks drawn onto one surface
type Book struct {
	surface ports.Surface
	logger  *zap.Logger
	issuer  *domain.Issuer
	checks  []domain.Check
}

// NewBook allocates numChecks checks numbered from startingNumber
func NewBook(issuer *domain.Issuer, numChecks, startingNumber int, surface ports.Surface, logger *zap.Logger) (*Book, error) {
	if issuer == nil {
		return nil, domain.NewMissingFieldError("issuer")
	}
	if err := issuer.Validate(); err != nil {
		return nil, err
	}
	if numChecks < 0 {
		return nil, domain.NewDomainError(domain.ErrorCodeConfigInvalid, "number of checks must not be negative").
			WithDetail("num_checks", numChecks)
	}
	if startingNumber < 1 {
		return nil, domain.NewDomainError(domain.ErrorCodeConfigInvalid, "starting check number must be positive").
			WithDetail("starting_check_number", startingNumber)
	}
	if surface == nil {
		return nil, domain.NewMissingFieldError("surface")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Book{
		surface: surface,
		logger:  logger,
		issuer:  issuer,
		checks:  domain.NewChecks(issuer, numChecks, startingNumber),
	}, nil
}

// Checks returns the allocated checks in print order
func (b *Book) Checks() []domain.Check {
	out := make([]domain.Check, len(b.checks))
	copy(out, b.checks)
	return out
}

// Print draws every check of the book, filling payments[i] into the i-th check.
// Checks past the last payment stay blank. Payments past the last check are a
// configuration error and nothing is drawn.
func (b *Book) Print(payments []domain.Payment, printType domain.PrintType) (*domain.Report, error) {
	if len(payments) > len(b.checks) {
		return nil, domain.NewDomainError(domain.ErrorCodeConfigChecksExhausted,
			fmt.Sprintf("%d payments do not fit in %d checks", len(payments), len(b.checks))).
			WithDetail("payments", len(payments)).
			WithDetail("checks", len(b.checks))
	}

	start := timeutil.Now()
	report := domain.NewReport(b.issuer.Name, start)
	pages := 0

	for i, check := range b.checks {
		page, slot := layout.Slot(i)
		if slot == 0 {
			b.surface.AddPage()
			pages++
			b.logger.Debug("Started page", zap.Int("page", page), zap.Int("first_check", check.Number))
		}
		b.surface.SetOffset(layout.SlotOffset(slot))

		if printType.Has(domain.PrintMICR) {
			layout.PrintMICR(check, b.surface)
		}
		if printType.Has(domain.PrintLabels) {
			layout.PrintCheckLabels(b.surface)
		}
		if printType.Has(domain.PrintInformation) {
			layout.PrintCheckInformation(check, b.surface)
		}

		entry := domain.ReportEntry{CheckNumber: check.Number}
		if i < len(payments) {
			payment := payments[i]
			if err := layout.FillCheck(check, b.surface, payment); err != nil {
				return nil, err
			}
			entry.Payment = &payment
		}

		if err := b.surface.Err(); err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, entry)
	}

	observability.RecordBook(report.Filled(), report.Blank(), pages, report.Total(), timeutil.Now().Sub(start))

	fields := []zap.Field{
		zap.String("run_id", report.RunID.String()),
		zap.Int("checks", len(b.checks)),
		zap.Int("payments", len(payments)),
		zap.Int("blank", report.Blank()),
		zap.Int("pages", pages),
		zap.String("print_type", printType.String()),
		zap.String("total", report.Total().StringFixed(2)),
	}
	if len(b.checks) > 0 {
		fields = append(fields,
			zap.Int("first_check", b.checks[0].Number),
			zap.Int("last_check", b.checks[len(b.checks)-1].Number),
		)
	}
	b.logger.Info("Printed book", fields...)

	return report, nil
}

// WriteTo serializes the complete document into w
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := b.surface.Output(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Save writes the document to path. The document is serialized before the file is
// created, the file is closed on every path, and a failed write removes the partial file.
func (b *Book) Save(path string) (err error) {
	var buf bytes.Buffer
	if err := b.surface.Output(&buf); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeOutputFailed, "create output file", err).WithDetail("path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = domain.WrapError(domain.ErrorCodeOutputFailed, "close output file", cerr).WithDetail("path", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = buf.WriteTo(f); err != nil {
		return domain.WrapError(domain.ErrorCodeOutputFailed, "write output file", err).WithDetail("path", path)
	}

	b.logger.Info("Saved book", zap.String("path", path), zap.Int("checks", len(b.checks)))
	return nil
}
