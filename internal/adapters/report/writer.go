// Package report exports the printed-check report for reconciliation.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
)

var columns = []string{"Check", "Date", "Payee", "Amount", "Memo"}

// ForPath picks a writer from the file extension of path
func ForPath(path string) (ports.ReportWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return NewXLSXWriter(), nil
	case ".xml":
		return NewXMLWriter(), nil
	case ".txt", "":
		return NewTableWriter(), nil
	}
	return nil, domain.NewDomainError(domain.ErrorCodeConfigInvalid,
		fmt.Sprintf("unsupported report format %q", filepath.Ext(path))).WithDetail("path", path)
}

// Save writes report to path with w, closing the file on every path.
// A failed write removes the partial file.
func Save(path string, w ports.ReportWriter, report *domain.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return domain.WrapError(domain.ErrorCodeOutputFailed, "create report file", err).WithDetail("path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = domain.WrapError(domain.ErrorCodeOutputFailed, "close report file", cerr).WithDetail("path", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err = w.Write(f, report); err != nil {
		return domain.WrapError(domain.ErrorCodeOutputFailed, "write "+w.Format()+" report", err).WithDetail("path", path)
	}
	return nil
}
