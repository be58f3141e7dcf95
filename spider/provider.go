package spider

import (
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// DataSource supplies the content of a chart.
// It is queried again on every render, and must return
// consistent counts during one render pass.
type DataSource interface {
	// RowCount returns the number of axes.
	RowCount() int
	// SectionCount returns the number of data polygons.
	SectionCount() int
	// StepCount returns the number of background bands.
	StepCount() int
	// RowTitle returns the label of the axis `row`.
	RowTitle(row int) string
	// SectionValue returns the value of `section` on the axis `row`.
	SectionValue(row, section int) float64
}

// DefaultDataSource is used by charts without data source:
// one section of value 1 on six rows, with one band.
type DefaultDataSource struct{}

var _ DataSource = DefaultDataSource{} // assert interface conformance

func (DefaultDataSource) RowCount() int                 { return 6 }
func (DefaultDataSource) SectionCount() int             { return 1 }
func (DefaultDataSource) StepCount() int                { return 1 }
func (DefaultDataSource) RowTitle(row int) string       { return strconv.Itoa(row) }
func (DefaultDataSource) SectionValue(_, _ int) float64 { return 1 }

// Font describes the text style of the row titles.
// Backends resolve it to an actual font face.
type Font struct {
	Size float64 // in points, which are pixels at 72 dpi
	Bold bool
}

// Style supplies the colors and font of a chart.
type Style interface {
	LineColor() color.Color
	StepFillColor() color.Color
	SectionFillColor() color.Color
	SectionBorderColor() color.Color
	TitleFont() Font
	TitleColor() color.Color
}

// StepStyle may be implemented by a Style to use
// a different color for each band. `step` ranges from 1 (innermost)
// to the step count (outermost).
type StepStyle interface {
	StepFillColorAt(step int) color.Color
}

// SectionStyle may be implemented by a Style to use
// different colors for each data section.
type SectionStyle interface {
	SectionFillColorAt(section int) color.Color
	SectionBorderColorAt(section int) color.Color
}

// PointStyle may be implemented by a Style to customize
// the data point markers, which are black otherwise.
type PointStyle interface {
	PointColor() color.Color
}

// Brown is the default section border color.
var Brown = color.RGBA{R: 0x99, G: 0x66, B: 0x33, A: 0xff}

// DefaultStyle is used by charts without style.
type DefaultStyle struct{}

var _ Style = DefaultStyle{} // assert interface conformance

func (DefaultStyle) LineColor() color.Color          { return colornames.Yellow }
func (DefaultStyle) StepFillColor() color.Color      { return colornames.Blue }
func (DefaultStyle) SectionFillColor() color.Color   { return colornames.Lime }
func (DefaultStyle) SectionBorderColor() color.Color { return Brown }
func (DefaultStyle) TitleFont() Font                 { return Font{Size: 12, Bold: true} }
func (DefaultStyle) TitleColor() color.Color         { return colornames.Black }

func stepFillColor(st Style, step int) color.Color {
	if s, ok := st.(StepStyle); ok {
		return s.StepFillColorAt(step)
	}
	return st.StepFillColor()
}

func sectionColors(st Style, section int) (fill, border color.Color) {
	if s, ok := st.(SectionStyle); ok {
		return s.SectionFillColorAt(section), s.SectionBorderColorAt(section)
	}
	return st.SectionFillColor(), st.SectionBorderColor()
}

func pointColor(st Style) color.Color {
	if s, ok := st.(PointStyle); ok {
		return s.PointColor()
	}
	return colornames.Black
}
