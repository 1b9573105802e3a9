package ports

import "io"

// Font names a typeface role on the check face; adapters map roles to real fonts
type Font string

const (
	FontRegular     Font = "regular"     // filled-in payment fields and check number
	FontHandwriting Font = "handwriting" // pre-printed labels
	FontMICR        Font = "micr"        // E-13B MICR line
	FontMetadata    Font = "metadata"    // issuer and bank header
)

// Align is the horizontal alignment of text inside a cell
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// CellOptions describes the box a text value is written into
type CellOptions struct {
	Align  Align
	Width  float64
	Height float64
	// Pad fills the space left after the value with dashes
	Pad bool
}

// Surface is the drawing backend the check layout is rendered onto.
// Units are inches on a Letter page with zero margins. Every vertical coordinate
// is relative to the current offset so the same layout serves each slot of a page.
//
// Drawing calls do not return errors: the first failure is latched and reported by Err,
// the way fpdf accumulates errors.
type Surface interface {
	AddPage()
	// SetOffset moves the origin of subsequent drawing calls down by offset inches
	SetOffset(offset float64)
	SetPosition(left, top float64)
	UseFont(font Font, size float64)
	// PrintCell writes value at the current position, compressing it horizontally
	// when it is wider than opts.Width
	PrintCell(value string, opts CellOptions)
	HorizontalLine(left, top, width float64)
	VerticalLine(left, top, height float64)
	Box(left, top, width, height float64)

	Output(w io.Writer) error
	Err() error
}

// SurfaceFactory creates a fresh, empty surface for one book
type SurfaceFactory func() (Surface, error)
