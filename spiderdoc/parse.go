package spiderdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/okspider/spider"
	"golang.org/x/image/colornames"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning through spider.Logger
	WarnErrorMode
	// StrictErrorMode return an error on unparsed elements
	StrictErrorMode
)

// state of the parser
type docCursor struct {
	errorMode ErrorMode
	chart     *Chart

	seenChart bool
	depth     int // of unknown elements being skipped
	inRow     bool
	inValue   bool // collecting the text of a value
	value     strings.Builder
}

// ReadChartStream reads a chart document from the given io.Reader.
// errMode determines if the reader ignores, errors out, or logs a warning
// if it does not handle an element found in the document.
// Malformed numbers and colors are always errors.
func ReadChartStream(stream io.Reader, errMode ErrorMode) (*Chart, error) {
	chart := &Chart{Steps: 1, Style: DefaultStyle()}
	cursor := &docCursor{errorMode: errMode, chart: chart}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if err = cursor.readEndElement(se); err != nil {
				return nil, err
			}
		case xml.CharData:
			if cursor.inValue && cursor.depth == 0 {
				cursor.value.Write(se)
			}
		}
	}
	if !cursor.seenChart {
		return nil, errors.New("invalid chart document: missing chart element")
	}
	if err := chart.check(); err != nil {
		return nil, err
	}
	return chart, nil
}

// ReadChart reads a chart document from the named file.
func ReadChart(filename string, errMode ErrorMode) (*Chart, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadChartStream(fin, errMode)
}

func (ch *Chart) check() error {
	if len(ch.Rows) == 0 {
		return errors.New("invalid chart document: no row")
	}
	sections := len(ch.Rows[0].Values)
	for i, row := range ch.Rows {
		if len(row.Values) != sections {
			return fmt.Errorf("invalid chart document: row %d has %d values instead of %d", i, len(row.Values), sections)
		}
	}
	return nil
}

// unknown handles an element not supported, according to the error mode
func (c *docCursor) unknown(se xml.StartElement) error {
	errStr := "cannot process chart element " + se.Name.Local
	if c.errorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.errorMode == WarnErrorMode {
		spider.Logger().Warn("spiderdoc: "+errStr, slog.String("element", se.Name.Local))
	}
	c.depth++
	return nil
}

// elementCheck reports whether an element is allowed at the current position
type elementCheck func(c *docCursor) bool

var readFuncs = map[string]struct {
	valid elementCheck
	read  func(c *docCursor, attrs []xml.Attr) error
}{
	"chart":   {func(c *docCursor) bool { return !c.seenChart }, (*docCursor).readChart},
	"style":   {func(c *docCursor) bool { return c.seenChart }, (*docCursor).readStyle},
	"step":    {func(c *docCursor) bool { return c.seenChart }, (*docCursor).readStep},
	"section": {func(c *docCursor) bool { return c.seenChart }, (*docCursor).readSection},
	"row":     {func(c *docCursor) bool { return c.seenChart }, (*docCursor).readRow},
	"value":   {func(c *docCursor) bool { return c.inRow }, (*docCursor).readValue},
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	if c.depth > 0 { // inside an unknown element
		c.depth++
		return nil
	}
	rf, ok := readFuncs[se.Name.Local]
	if !ok || !rf.valid(c) {
		return c.unknown(se)
	}
	return rf.read(c, se.Attr)
}

func (c *docCursor) readEndElement(se xml.EndElement) error {
	if c.depth > 0 {
		c.depth--
		return nil
	}
	if se.Name.Local == "row" {
		c.inRow = false
	}
	if se.Name.Local != "value" || !c.inValue {
		return nil
	}
	c.inValue = false
	v, err := parseFloat(c.value.String())
	if err != nil {
		return fmt.Errorf("invalid value in row %d: %w", len(c.chart.Rows)-1, err)
	}
	row := &c.chart.Rows[len(c.chart.Rows)-1]
	row.Values = append(row.Values, v)
	return nil
}

func (c *docCursor) readChart(attrs []xml.Attr) (err error) {
	c.seenChart = true
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "steps":
			c.chart.Steps, err = strconv.Atoi(strings.TrimSpace(attr.Value))
			if err != nil || c.chart.Steps < 0 {
				return fmt.Errorf("invalid steps attribute %q", attr.Value)
			}
		}
	}
	return nil
}

func (c *docCursor) readStyle(attrs []xml.Attr) (err error) {
	st := &c.chart.Style
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "line":
			st.Line, err = ParseColor(attr.Value)
		case "step":
			st.StepFill, err = ParseColor(attr.Value)
		case "section":
			st.SectionFill, err = ParseColor(attr.Value)
		case "border":
			st.SectionBorder, err = ParseColor(attr.Value)
		case "title":
			st.Title, err = ParseColor(attr.Value)
		case "font-size":
			st.Font.Size, err = parseFloat(attr.Value)
			if err == nil && !(st.Font.Size > 0) {
				err = fmt.Errorf("invalid font size %q", attr.Value)
			}
		case "font-bold":
			st.Font.Bold, err = strconv.ParseBool(strings.TrimSpace(attr.Value))
		}
		if err != nil {
			return fmt.Errorf("invalid style attribute %s: %w", attr.Name.Local, err)
		}
	}
	return nil
}

func (c *docCursor) readStep(attrs []xml.Attr) error {
	var fill color.Color
	for _, attr := range attrs {
		if attr.Name.Local == "fill" {
			var err error
			if fill, err = ParseColor(attr.Value); err != nil {
				return fmt.Errorf("invalid step fill: %w", err)
			}
		}
	}
	c.chart.Style.Steps = append(c.chart.Style.Steps, fill)
	return nil
}

func (c *docCursor) readSection(attrs []xml.Attr) (err error) {
	var sc SectionColors
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "fill":
			sc.Fill, err = ParseColor(attr.Value)
		case "border":
			sc.Border, err = ParseColor(attr.Value)
		}
		if err != nil {
			return fmt.Errorf("invalid section attribute %s: %w", attr.Name.Local, err)
		}
	}
	c.chart.Style.Sections = append(c.chart.Style.Sections, sc)
	return nil
}

func (c *docCursor) readRow(attrs []xml.Attr) error {
	var row Row
	for _, attr := range attrs {
		if attr.Name.Local == "title" {
			row.Title = attr.Value
		}
	}
	c.chart.Rows = append(c.chart.Rows, row)
	c.inRow = true
	return nil
}

func (c *docCursor) readValue([]xml.Attr) error {
	c.inValue = true
	c.value.Reset()
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseColor accepts color names, "none" and
// hexadecimal #rgb, #rrggbb and #rrggbbaa notations.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "transparent" {
		return color.Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("unknown color name %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid hexadecimal color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
