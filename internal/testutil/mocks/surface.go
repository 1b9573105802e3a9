// Package mocks provides shared fakes and mock implementations for testing.
package mocks

import (
	"io"

	"github.com/kevin07696/checkgen/internal/adapters/ports"
	"github.com/kevin07696/checkgen/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Op is one recorded call on a RecordingSurface.
type Op struct {
	Name    string
	Text    string
	Font    ports.Font
	Options ports.CellOptions
	Args    []float64
	Size    float64
}

// RecordingSurface is an in-memory ports.Surface that records every drawing call.
// Offsets are applied to recorded vertical coordinates the way a real surface would.
type RecordingSurface struct {
	Ops     []Op
	Pages   int
	offset  float64
	FailErr error // returned by Err once set
}

// NewRecordingSurface returns an empty recording surface.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

// Factory returns a SurfaceFactory that always hands out s.
func (s *RecordingSurface) Factory() ports.SurfaceFactory {
	return func() (ports.Surface, error) { return s, nil }
}

func (s *RecordingSurface) AddPage() {
	s.Pages++
	s.Ops = append(s.Ops, Op{Name: "AddPage"})
}

func (s *RecordingSurface) SetOffset(offset float64) {
	s.offset = offset
	s.Ops = append(s.Ops, Op{Name: "SetOffset", Args: []float64{offset}})
}

func (s *RecordingSurface) SetPosition(left, top float64) {
	s.Ops = append(s.Ops, Op{Name: "SetPosition", Args: []float64{left, top + s.offset}})
}

func (s *RecordingSurface) UseFont(font ports.Font, size float64) {
	s.Ops = append(s.Ops, Op{Name: "UseFont", Font: font, Size: size})
}

func (s *RecordingSurface) PrintCell(value string, opts ports.CellOptions) {
	s.Ops = append(s.Ops, Op{Name: "PrintCell", Text: value, Options: opts})
}

func (s *RecordingSurface) HorizontalLine(left, top, width float64) {
	s.Ops = append(s.Ops, Op{Name: "HorizontalLine", Args: []float64{left, top + s.offset, width}})
}

func (s *RecordingSurface) VerticalLine(left, top, height float64) {
	s.Ops = append(s.Ops, Op{Name: "VerticalLine", Args: []float64{left, top + s.offset, height}})
}

func (s *RecordingSurface) Box(left, top, width, height float64) {
	s.Ops = append(s.Ops, Op{Name: "Box", Args: []float64{left, top + s.offset, width, height}})
}

func (s *RecordingSurface) Output(w io.Writer) error {
	if s.FailErr != nil {
		return s.FailErr
	}
	_, err := io.WriteString(w, "%PDF-recorded\n")
	return err
}

func (s *RecordingSurface) Err() error {
	return s.FailErr
}

// Texts returns the values of every PrintCell call in order.
func (s *RecordingSurface) Texts() []string {
	var texts []string
	for _, op := range s.Ops {
		if op.Name == "PrintCell" {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// Count returns how many calls of the named operation were recorded.
func (s *RecordingSurface) Count(name string) int {
	n := 0
	for _, op := range s.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Offsets returns the arguments of every SetOffset call in order.
func (s *RecordingSurface) Offsets() []float64 {
	var offsets []float64
	for _, op := range s.Ops {
		if op.Name == "SetOffset" {
			offsets = append(offsets, op.Args[0])
		}
	}
	return offsets
}

// MockReportWriter is a testify mock of ports.ReportWriter.
type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Format() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockReportWriter) Write(w io.Writer, report *domain.Report) error {
	args := m.Called(w, report)
	return args.Error(0)
}
