// Package pdf implements the check drawing surface on top of fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"golang.org/x/text/encoding/charmap"
)

// FontSet holds optional TrueType files for each font role.
// Roles left empty fall back to a PDF core font. Core fonts only cover the cp1252
// (Windows Latin-1) character set: printing any other character with one is an error,
// so payees or memos in other scripts need a TTF for the role.
type FontSet struct {
	Regular     string
	Handwriting string
	MICR        string
	Metadata    string
}

func (f FontSet) files() map[ports.Font]string {
	return map[ports.Font]string{
		ports.FontRegular:     f.Regular,
		ports.FontHandwriting: f.Handwriting,
		ports.FontMICR:        f.MICR,
		ports.FontMetadata:    f.Metadata,
	}
}

type face struct {
	family string
	style  string
	utf8   bool
}

// Core fonts need no files and cover the Latin-1 range.
var coreFaces = map[ports.Font]face{
	ports.FontRegular:     {family: "Helvetica"},
	ports.FontHandwriting: {family: "Times", style: "I"},
	ports.FontMICR:        {family: "Courier"},
	ports.FontMetadata:    {family: "Helvetica"},
}

const (
	lineWidth = 0.001
	dashPad   = "-"
)

// Document is a Letter-size, inch-unit, zero-margin PDF implementing ports.Surface
type Document struct {
	pdf       *fpdf.Fpdf
	faces     map[ports.Font]face
	translate func(string) string
	output    []byte
	current   face
	offset    float64
}

var _ ports.Surface = (*Document)(nil)

// New creates an empty document and registers the configured fonts
func New(fonts FontSet) (*Document, error) {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(lineWidth)
	pdf.SetDrawColor(48, 48, 48)
	pdf.SetCreator("checkgen", true)

	d := &Document{
		pdf:       pdf,
		faces:     make(map[ports.Font]face, len(coreFaces)),
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	for role, f := range coreFaces {
		d.faces[role] = f
	}

	for role, path := range fonts.files() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("load %s font %q: %w", role, path, err)
		}
		pdf.AddUTF8Font(string(role), "", path)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load %s font %q: %w", role, path, err)
		}
		d.faces[role] = face{family: string(role), utf8: true}
	}

	return d, nil
}

// NewFactory returns a factory creating one Document per book
func NewFactory(fonts FontSet) ports.SurfaceFactory {
	return func() (ports.Surface, error) {
		return New(fonts)
	}
}

func (d *Document) AddPage() {
	d.pdf.AddPage()
}

func (d *Document) SetOffset(offset float64) {
	d.offset = offset
}

func (d *Document) SetPosition(left, top float64) {
	d.pdf.SetXY(left, top+d.offset)
}

func (d *Document) UseFont(font ports.Font, size float64) {
	f, ok := d.faces[font]
	if !ok {
		d.pdf.SetError(fmt.Errorf("unknown font role %q", font))
		return
	}
	d.current = f
	d.pdf.SetFont(f.family, f.style, size)
}

// PrintCell writes value in a cell of opts.Width. Text wider than the cell is
// scaled horizontally to fit; with opts.Pad the remaining width is filled with dashes.
func (d *Document) PrintCell(value string, opts ports.CellOptions) {
	if !d.current.utf8 {
		if r, ok := unencodable(value); !ok {
			d.pdf.SetError(fmt.Errorf("character %q in %q is not available in core font %s; configure a TrueType font",
				r, value, d.current.family))
			return
		}
		value = d.translate(value)
	}
	text, cellWidth, scale := d.fit(value, opts)

	align := string(opts.Align)
	if align == "" {
		align = string(ports.AlignLeft)
	}

	if scale < 1 {
		x, y := d.pdf.GetXY()
		d.pdf.TransformBegin()
		d.pdf.TransformScaleX(100*scale, x, y)
		d.pdf.CellFormat(cellWidth, opts.Height, text, "", 0, align, false, 0, "")
		d.pdf.TransformEnd()
		// The scaled cell ends at x+opts.Width, not where fpdf believes it does.
		d.pdf.SetXY(x+opts.Width, y)
		return
	}
	d.pdf.CellFormat(cellWidth, opts.Height, text, "", 0, align, false, 0, "")
}

// unencodable returns the first rune of value outside cp1252, or ok when there is none
func unencodable(value string) (rune, bool) {
	for _, r := range value {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return r, false
		}
	}
	return 0, true
}

// fit returns the text to draw, the unscaled cell width and the horizontal scale (≤ 1)
func (d *Document) fit(value string, opts ports.CellOptions) (string, float64, float64) {
	width := d.pdf.GetStringWidth(value)

	if width > opts.Width && width > 0 {
		return value, width, opts.Width / width
	}

	if opts.Pad {
		dash := d.pdf.GetStringWidth(dashPad)
		space := d.pdf.GetStringWidth(" ")
		if dash > 0 {
			if n := int((opts.Width - width - space) / dash); n > 0 {
				value = value + " " + strings.Repeat(dashPad, n)
			}
		}
	}
	return value, opts.Width, 1
}

func (d *Document) HorizontalLine(left, top, width float64) {
	y := top + d.offset
	d.pdf.Line(left, y, left+width, y)
}

func (d *Document) VerticalLine(left, top, height float64) {
	y := top + d.offset
	d.pdf.Line(left, y, left, y+height)
}

func (d *Document) Box(left, top, width, height float64) {
	d.pdf.Rect(left, top+d.offset, width, height, "D")
}

// Output writes the serialized document to w. The document is closed on the
// first call; later calls write the same bytes again.
func (d *Document) Output(w io.Writer) error {
	if d.output == nil {
		var buf bytes.Buffer
		if err := d.pdf.Output(&buf); err != nil {
			return err
		}
		d.output = buf.Bytes()
	}
	_, err := w.Write(d.output)
	return err
}

func (d *Document) Err() error {
	return d.pdf.Error()
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}
