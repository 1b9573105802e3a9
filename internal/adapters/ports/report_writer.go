package ports

import (
	"io"

	"github.com/kevin07696/checkgen/internal/domain"
)

// ReportWriter serializes a printed batch report
type ReportWriter interface {
	// Format returns the short name used to select the writer (xlsx, xml, table)
	Format() string
	Write(w io.Writer, report *domain.Report) error
}
