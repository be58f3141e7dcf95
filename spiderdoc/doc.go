// Provides static chart documents: the rows, values and colors
// of a chart are read from an XML description, such as
//
//	<chart steps="4">
//		<style line="yellow" step="blue" section="lime" border="#996633"
//			title="black" font-size="12" font-bold="true">
//			<section fill="#ff000080" border="red"/>
//			<step fill="lightblue"/>
//		</style>
//		<row title="Speed"><value>3</value><value>1.5</value></row>
//		<row title="Power"><value>2</value><value>4</value></row>
//		<row title="Range"><value>5</value><value>0</value></row>
//	</chart>
//
// The resulting Chart implements both spider.DataSource and spider.Style.
package spiderdoc

import (
	"image/color"

	"github.com/benoitkugler/okspider/spider"
)

// assert interface conformance
var (
	_ spider.DataSource   = (*Chart)(nil)
	_ spider.Style        = (*Style)(nil)
	_ spider.StepStyle    = (*Style)(nil)
	_ spider.SectionStyle = (*Style)(nil)
)

// Row is one axis of the chart, with one value per section.
type Row struct {
	Title  string
	Values []float64
}

// SectionColors overrides the colors of one section.
// Nil fields fall back to the style colors.
type SectionColors struct {
	Fill, Border color.Color
}

// Style holds the colors and font of a document.
type Style struct {
	Line, StepFill, SectionFill, SectionBorder, Title color.Color
	Font                                              spider.Font

	Steps    []color.Color   // fill of the step 1, 2, ..., falling back to StepFill
	Sections []SectionColors // by section index
}

// DefaultStyle returns the style used by documents
// without style element, which matches spider.DefaultStyle.
func DefaultStyle() Style {
	var d spider.DefaultStyle
	return Style{
		Line:          d.LineColor(),
		StepFill:      d.StepFillColor(),
		SectionFill:   d.SectionFillColor(),
		SectionBorder: d.SectionBorderColor(),
		Title:         d.TitleColor(),
		Font:          d.TitleFont(),
	}
}

func (st *Style) LineColor() color.Color          { return st.Line }
func (st *Style) StepFillColor() color.Color      { return st.StepFill }
func (st *Style) SectionFillColor() color.Color   { return st.SectionFill }
func (st *Style) SectionBorderColor() color.Color { return st.SectionBorder }
func (st *Style) TitleFont() spider.Font          { return st.Font }
func (st *Style) TitleColor() color.Color         { return st.Title }

func (st *Style) StepFillColorAt(step int) color.Color {
	if i := step - 1; i >= 0 && i < len(st.Steps) && st.Steps[i] != nil {
		return st.Steps[i]
	}
	return st.StepFill
}

func (st *Style) SectionFillColorAt(section int) color.Color {
	if section < len(st.Sections) && st.Sections[section].Fill != nil {
		return st.Sections[section].Fill
	}
	return st.SectionFill
}

func (st *Style) SectionBorderColorAt(section int) color.Color {
	if section < len(st.Sections) && st.Sections[section].Border != nil {
		return st.Sections[section].Border
	}
	return st.SectionBorder
}

// Chart holds data from a parsed document.
// Every row has the same number of values.
type Chart struct {
	Steps int
	Rows  []Row
	Style Style
}

func (ch *Chart) RowCount() int { return len(ch.Rows) }

func (ch *Chart) SectionCount() int {
	if len(ch.Rows) == 0 {
		return 0
	}
	return len(ch.Rows[0].Values)
}

func (ch *Chart) StepCount() int { return ch.Steps }

func (ch *Chart) RowTitle(row int) string { return ch.Rows[row].Title }

func (ch *Chart) SectionValue(row, section int) float64 { return ch.Rows[row].Values[section] }

// Options returns the chart options using the document
// as data source and style.
func (ch *Chart) Options() []spider.Option {
	return []spider.Option{spider.WithDataSource(ch), spider.WithStyle(&ch.Style)}
}
