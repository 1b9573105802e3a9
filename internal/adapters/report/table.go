package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kevin07696/checkgen/internal/domain"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	footerStyle = lipgloss.NewStyle().Bold(true)
)

// TableWriter renders the report as a bordered terminal table
type TableWriter struct{}

func NewTableWriter() *TableWriter {
	return &TableWriter{}
}

func (t *TableWriter) Format() string {
	return "table"
}

func (t *TableWriter) Write(w io.Writer, report *domain.Report) error {
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{strconv.Itoa(e.CheckNumber), e.Date(), e.Payee(), e.Amount(), e.Memo()})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 3 {
				return amountStyle
			}
			return cellStyle
		})

	footer := fmt.Sprintf("%d checks, %d filled, %d blank, total $%s",
		len(report.Entries), report.Filled(), report.Blank(), domain.FormatAmount(report.Total()))

	_, err := fmt.Fprintf(w, "%s\n%s\n", tbl.Render(), footerStyle.Render(footer))
	return err
}
