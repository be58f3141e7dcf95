package spider

import (
	"fmt"
	"image/color"
	"log/slog"
)

// pointRadius is the radius of the data point markers.
const pointRadius = 3

// Render draws a chart filling `bounds` on the surface `s`.
// The center point and the effective radius are derived from the bounds
// and the configuration; nil providers are replaced by the defaults.
// Render is deterministic: the same inputs issue the same calls on `s`.
func Render(bounds Rect, config Configuration, data DataSource, style Style, s Surface) error {
	center, radius := layout(bounds, config, nil)
	return render(center, radius, config, data, style, s)
}

// layout computes the center point and the radius clamped to the bounds.
// `fixedCenter` is used when auto-centering is disabled.
func layout(bounds Rect, config Configuration, fixedCenter *Point) (center Point, radius float64) {
	radius = config.Radius
	if side := min(bounds.W, bounds.H); side < 2*radius {
		radius = side / 2
	}
	switch {
	case config.AutoCenterPoint:
		center = bounds.Center()
	case fixedCenter != nil:
		center = *fixedCenter
	default:
		center = Point{bounds.X + radius + config.CenterOffset, bounds.Y + radius + config.CenterOffset}
	}
	return center, radius
}

// renderPass holds the state of one render, which is
// discarded afterward.
type renderPass struct {
	config Configuration
	data   DataSource
	style  Style
	s      Surface

	center   Point
	radius   float64
	rows     int
	steps    int
	sections int
	values   [][]float64 // indexed by section then row
}

func render(center Point, radius float64, config Configuration, data DataSource, style Style, s Surface) error {
	if data == nil {
		data = DefaultDataSource{}
	}
	if style == nil {
		style = DefaultStyle{}
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if !(radius > 0) {
		return &ConfigurationError{Field: "Radius", Reason: "must be positive once clamped to the bounds"}
	}
	p := renderPass{config: config, data: data, style: style, s: s, center: center, radius: radius}
	p.rows = data.RowCount()
	if p.rows <= 0 {
		return &ConfigurationError{Field: "RowCount", Reason: "must be positive"}
	}
	p.steps = data.StepCount()
	if p.steps < 0 {
		return &ConfigurationError{Field: "StepCount", Reason: "must not be negative"}
	}
	p.sections = data.SectionCount()
	if p.sections < 0 {
		return &ConfigurationError{Field: "SectionCount", Reason: "must not be negative"}
	}
	if err := p.readValues(); err != nil {
		return err
	}

	Logger().Debug("spider: render pass", slog.Int("rows", p.rows),
		slog.Int("steps", p.steps), slog.Int("sections", p.sections),
		slog.Float64("centerX", center.X), slog.Float64("centerY", center.Y), slog.Float64("radius", radius))

	for _, layer := range [...]func() error{
		p.drawBackground,
		p.drawTitles,
		p.drawBackgroundLines,
		p.drawSections,
	} {
		if err := p.checkRows(); err != nil {
			return err
		}
		if err := layer(); err != nil {
			return err
		}
	}

	if es, ok := s.(errSurface); ok {
		return es.Err()
	}
	return nil
}

// checkRows verifies the data source still reports the row
// count read at the start of the pass.
func (p *renderPass) checkRows() error {
	if got := p.data.RowCount(); got != p.rows {
		return &ProviderInconsistencyError{Want: p.rows, Got: got}
	}
	return nil
}

func (p *renderPass) axisPoint(radius float64, row int) Point {
	return PointOnAxis(p.center, radius, row, p.rows, p.config.Clockwise)
}

// readValues queries every section value once, before anything is drawn.
// Non finite values are rejected; finite values outside of the chart
// range are kept unclamped, and the first one is logged.
func (p *renderPass) readValues() error {
	sc := p.config.scale(p.radius)
	warned := false
	p.values = make([][]float64, p.sections)
	for section := range p.values {
		row := make([]float64, p.rows)
		for i := range row {
			value := p.data.SectionValue(i, section)
			if !isFinite(value) {
				return &ConfigurationError{
					Field:  "SectionValue",
					Reason: fmt.Sprintf("at row %d, section %d must be finite (got %v)", i, section, value),
				}
			}
			if !warned && !sc.contains(value) {
				Logger().Warn("spider: value outside of the chart range is drawn unclamped",
					slog.Int("row", i), slog.Int("section", section), slog.Float64("value", value))
				warned = true
			}
			row[i] = value
		}
		p.values[section] = row
	}
	return nil
}

// polygon sets the current path to the closed polygon
// going through `vertices`.
func (p *renderPass) polygon(vertices []Point) {
	p.s.Clear()
	for i, v := range vertices {
		if i == 0 {
			p.s.MoveTo(v)
		} else {
			p.s.LineTo(v)
		}
	}
	p.s.ClosePath()
}

// regular returns the vertices of the band polygon of the given radius.
func (p *renderPass) regular(radius float64) []Point {
	vertices := make([]Point, p.rows)
	for i := range vertices {
		vertices[i] = p.axisPoint(radius, i)
	}
	return vertices
}

// drawBackground paints the step bands, outermost first,
// so that inner bands are painted over outer ones.
func (p *renderPass) drawBackground() error {
	steps := p.steps
	strokeBands := p.config.ShowBorder && p.config.ShowBackgroundBorder
	lineColor := p.style.LineColor()
	for step := steps; step >= 1; step-- {
		bandRadius := p.radius * float64(step) / float64(steps)
		p.polygon(p.regular(bandRadius))
		p.s.Fill(stepFillColor(p.style, step))
		if strokeBands {
			p.s.Stroke(lineColor, p.config.BorderWidth)
		}
	}
	return nil
}

// drawBackgroundLines paints one line per row, from the center
// to the outer edge.
func (p *renderPass) drawBackgroundLines() error {
	if !p.config.ShowBackgroundLine {
		return nil
	}
	lineColor := p.style.LineColor()
	for i := 0; i < p.rows; i++ {
		p.s.Clear()
		p.s.MoveTo(p.center)
		p.s.LineTo(p.axisPoint(p.radius, i))
		p.s.Stroke(lineColor, p.config.LineWidth)
	}
	return nil
}

// drawSections paints the data polygons, and their point markers if enabled.
func (p *renderPass) drawSections() error {
	sc := p.config.scale(p.radius)
	var markerColor color.Color
	if p.config.ShowPoint {
		markerColor = pointColor(p.style)
	}
	vertices := make([]Point, p.rows)
	for section, values := range p.values {
		for i, value := range values {
			vertices[i] = p.axisPoint(sc.radiusOf(value), i)
		}

		fillColor, borderColor := sectionColors(p.style, section)
		p.polygon(vertices)
		if p.config.FillArea {
			p.s.Fill(fillColor)
		}
		if p.config.ShowBorder {
			p.s.Stroke(borderColor, p.config.BorderWidth)
		}

		if p.config.ShowPoint {
			for _, v := range vertices {
				p.s.FillEllipse(v, pointRadius, pointRadius, markerColor)
			}
		}
	}
	return nil
}
