package report

import (
	"io"
	"strconv"

	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Checks"
	// built-in number format 4: #,##0.00
	amountNumFmt = 4
)

// XLSXWriter writes the report as a single-sheet workbook
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (x *XLSXWriter) Format() string {
	return "xlsx"
}

func (x *XLSXWriter) Write(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, e := range report.Entries {
		row := []interface{}{e.CheckNumber, e.Date(), e.Payee(), nil, e.Memo()}
		if !e.IsBlank() {
			row[3] = e.Payment.Amount.Round(2).InexactFloat64()
		}
		if err := f.SetSheetRow(sheetName, "A"+strconv.Itoa(i+2), &row); err != nil {
			return err
		}
	}

	totalRow := strconv.Itoa(len(report.Entries) + 2)
	if err := f.SetCellValue(sheetName, "C"+totalRow, "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "D"+totalRow, report.Total().Round(2).InexactFloat64()); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "D2", "D"+totalRow, style); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "C", 32); err != nil {
		return err
	}

	return f.Write(w)
}
