package report

import (
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/kevin07696/checkgen/internal/domain"
)

// XMLWriter writes the report as an XML document
type XMLWriter struct{}

func NewXMLWriter() *XMLWriter {
	return &XMLWriter{}
}

func (x *XMLWriter) Format() string {
	return "xml"
}

func (x *XMLWriter) Write(w io.Writer, report *domain.Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkReport")
	root.CreateAttr("runId", report.RunID.String())
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("issuer", report.Issuer)

	for _, e := range report.Entries {
		check := root.CreateElement("check")
		check.CreateAttr("number", strconv.Itoa(e.CheckNumber))
		if e.IsBlank() {
			check.CreateAttr("blank", "true")
			continue
		}
		check.CreateElement("date").SetText(e.Payment.Date.Format("2006-01-02"))
		check.CreateElement("payee").SetText(e.Payee())
		check.CreateElement("amount").SetText(e.Payment.Amount.StringFixed(2))
		if memo := e.Memo(); memo != "" {
			check.CreateElement("memo").SetText(memo)
		}
	}

	summary := root.CreateElement("summary")
	summary.CreateAttr("filled", strconv.Itoa(report.Filled()))
	summary.CreateAttr("blank", strconv.Itoa(report.Blank()))
	summary.CreateAttr("total", report.Total().StringFixed(2))

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
