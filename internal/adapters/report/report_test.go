package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/kevin07696/checkgen/internal/testutil/fixtures"
	"github.com/kevin07696/checkgen/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.Report {
	r := domain.NewReport("Acme Holdings LLC", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	first := fixtures.NewPayment().WithPayee("Jane Roe").WithAmount("1234.5").WithDate(2024, 3, 4).WithMemo("Invoice 7").Build()
	second := fixtures.NewPayment().WithPayee("John Doe").WithAmount("20").WithDate(2024, 4, 4).Build()
	r.Entries = []domain.ReportEntry{
		{CheckNumber: 1001, Payment: &first},
		{CheckNumber: 1002, Payment: &second},
		{CheckNumber: 1003},
	}
	return r
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{"report.xlsx", "xlsx"},
		{"REPORT.XLSX", "xlsx"},
		{"out/report.xml", "xml"},
		{"report.txt", "table"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, err := ForPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.format, w.Format())
		})
	}

	_, err := ForPath("report.pdf")
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeConfigInvalid))
}

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXWriter().Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"1001", "3/4/2024", "Jane Roe"}, rows[1][:3])
	assert.Equal(t, "Invoice 7", rows[1][4])
	assert.Equal(t, "John Doe", rows[2][2])
	assert.Equal(t, "1003", rows[3][0])
	assert.Equal(t, "Total", rows[4][2])

	total, err := f.GetCellValue(sheetName, "D5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1254.5", total)
}

func TestXMLWriter(t *testing.T) {
	r := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, NewXMLWriter().Write(&buf, r))

	doc := etree.NewDocument()
	_, err := doc.ReadFrom(&buf)
	require.NoError(t, err)

	root := doc.SelectElement("checkReport")
	require.NotNil(t, root)
	assert.Equal(t, r.RunID.String(), root.SelectAttrValue("runId", ""))
	assert.Equal(t, "Acme Holdings LLC", root.SelectAttrValue("issuer", ""))

	checks := root.SelectElements("check")
	require.Len(t, checks, 3)
	assert.Equal(t, "1001", checks[0].SelectAttrValue("number", ""))
	assert.Equal(t, "2024-03-04", checks[0].SelectElement("date").Text())
	assert.Equal(t, "Jane Roe", checks[0].SelectElement("payee").Text())
	assert.Equal(t, "1234.50", checks[0].SelectElement("amount").Text())
	assert.Equal(t, "Invoice 7", checks[0].SelectElement("memo").Text())
	assert.Nil(t, checks[1].SelectElement("memo"))
	assert.Equal(t, "true", checks[2].SelectAttrValue("blank", ""))
	assert.Nil(t, checks[2].SelectElement("payee"))

	summary := root.SelectElement("summary")
	require.NotNil(t, summary)
	assert.Equal(t, "2", summary.SelectAttrValue("filled", ""))
	assert.Equal(t, "1", summary.SelectAttrValue("blank", ""))
	assert.Equal(t, "1254.50", summary.SelectAttrValue("total", ""))
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableWriter().Write(&buf, sampleReport()))

	out := buf.String()
	for _, want := range []string{"Check", "Payee", "1001", "Jane Roe", "1,234.50", "3/4/2024", "John Doe", "1003"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "3 checks, 2 filled, 1 blank, total $1,254.50")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xml")

	require.NoError(t, Save(path, NewXMLWriter(), sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
}

func TestSave_WriterFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	report := sampleReport()

	w := new(mocks.MockReportWriter)
	w.On("Format").Return("xlsx")
	w.On("Write", mock.Anything, report).Return(errors.New("disk full"))

	err := Save(path, w, report)

	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeOutputFailed))
	assert.Contains(t, err.Error(), "disk full")
	assert.NoFileExists(t, path)
	w.AssertExpectations(t)
}

func TestSave_CreateFailure(t *testing.T) {
	w := new(mocks.MockReportWriter)

	err := Save(filepath.Join(t.TempDir(), "missing", "report.xml"), w, sampleReport())

	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeOutputFailed))
	w.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}
