// Implements an SVG backend to render spider charts,
// by wrapping svgo.
package spidersvg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/ajstarks/svgo"
	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderfont"
	"github.com/benoitkugler/okspider/spiderpath"
	"golang.org/x/image/math/fixed"
)

var _ spider.Surface = (*Surface)(nil) // assert interface conformance

// FontFamily is the font family written in the text elements.
// The measures are done with the Go fonts, so that
// other families may result in slightly misplaced titles.
const FontFamily = "Go, sans-serif"

// Surface writes SVG elements: one path per painting
// and one text element per title.
type Surface struct {
	canvas  *svg.SVG
	path    spiderpath.Path
	faces   spiderfont.Faces
	painted fixed.Rectangle26_6 // union of the painted areas
	err     error
}

// NewSurface returns a surface writing to `canvas`, whose
// document must be started (and ended) by the caller.
func NewSurface(canvas *svg.SVG) *Surface {
	return &Surface{canvas: canvas}
}

// RenderChart writes `c` as a standalone SVG document.
// Its view box contains the chart bounds, and is extended
// to the titles placed outside of them.
func RenderChart(c *spider.Chart, out io.Writer) error {
	var body bytes.Buffer
	s := NewSurface(svg.New(&body))
	defer s.Close()
	if err := c.Draw(s); err != nil {
		return err
	}

	b, ext := c.Bounds(), s.Extent()
	minX, minY := math.Floor(math.Min(0, ext.X)), math.Floor(math.Min(0, ext.Y))
	maxX := math.Ceil(math.Max(b.X+b.W, ext.X+ext.W))
	maxY := math.Ceil(math.Max(b.Y+b.H, ext.Y+ext.H))
	w, h := int(maxX-minX), int(maxY-minY)

	canvas := svg.New(out)
	canvas.Startview(w, h, int(minX), int(minY), w, h)
	if _, err := body.WriteTo(out); err != nil {
		return err
	}
	canvas.End()
	return nil
}

// Extent returns the smallest rectangle containing
// everything painted so far, stroke widths included.
func (s *Surface) Extent() spider.Rect {
	minX, minY := spiderpath.FromFixed(s.painted.Min)
	maxX, maxY := spiderpath.FromFixed(s.painted.Max)
	return spider.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// include adds `r`, grown by `margin` on each side, to the painted area
func (s *Surface) include(r fixed.Rectangle26_6, margin float64) {
	m := fixed.Int26_6(math.Ceil(margin * 64))
	r.Min = r.Min.Sub(fixed.Point26_6{X: m, Y: m})
	r.Max = r.Max.Add(fixed.Point26_6{X: m, Y: m})
	if s.painted.Empty() {
		s.painted = r
		return
	}
	s.painted = s.painted.Union(r)
}

// Err returns the first error met while measuring text.
func (s *Surface) Err() error { return s.err }

// Close releases the font faces.
func (s *Surface) Close() error { return s.faces.Close() }

// paint returns the color and opacity style properties
func paint(property string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := fmt.Sprintf("%s:#%02x%02x%02x", property, n.R, n.G, n.B)
	if n.A != 0xff {
		out += fmt.Sprintf(";%s-opacity:%.3f", property, float64(n.A)/255)
	}
	return out
}

func (s *Surface) Clear() { s.path.Clear() }

func (s *Surface) MoveTo(p spider.Point) { s.path.Start(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) LineTo(p spider.Point) { s.path.Line(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) ClosePath() { s.path.Stop(true) }

func (s *Surface) Fill(c color.Color) {
	if len(s.path) == 0 {
		return
	}
	s.include(s.path.Extent(), 0)
	s.canvas.Path(s.path.ToSVGPath(), paint("fill", c)+";stroke:none")
}

func (s *Surface) Stroke(c color.Color, width float64) {
	if len(s.path) == 0 {
		return
	}
	style := fmt.Sprintf("fill:none;%s;stroke-width:%.3f;stroke-linecap:round;stroke-linejoin:round",
		paint("stroke", c), width)
	s.include(s.path.Extent(), width/2)
	s.canvas.Path(s.path.ToSVGPath(), style)
}

func (s *Surface) FillEllipse(center spider.Point, rx, ry float64, c color.Color) {
	s.path.Clear()
	var ellipse spiderpath.Path
	ellipse.AddEllipse(center.X, center.Y, rx, ry)
	s.include(ellipse.Extent(), 0)
	s.canvas.Path(ellipse.ToSVGPath(), paint("fill", c)+";stroke:none")
}

func (s *Surface) MeasureText(text string, f spider.Font) (width, height float64) {
	width, height, err := s.faces.Measure(text, f)
	if err != nil && s.err == nil {
		s.err = err
	}
	return width, height
}

func (s *Surface) DrawText(text string, f spider.Font, c color.Color, topLeft spider.Point) {
	ascent, err := s.faces.Ascent(f)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	width, height := s.MeasureText(text, f)
	s.include(fixed.Rectangle26_6{
		Min: spiderpath.ToFixed(topLeft.X, topLeft.Y),
		Max: spiderpath.ToFixed(topLeft.X+width, topLeft.Y+height),
	}, 0)

	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	style := fmt.Sprintf("font-family:%s;font-size:%.3fpx;font-weight:%s;%s",
		FontFamily, f.Size, weight, paint("fill", c))
	// svgo only accepts integer positions
	transform := fmt.Sprintf(`transform="translate(%.3f,%.3f)"`, topLeft.X, topLeft.Y+ascent)
	s.canvas.Text(0, 0, text, transform, style)
}
