// Implements a PDF backend to render spider charts,
// writing content stream operations.
package spiderpdf

import (
	"image/color"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderfont"
	"github.com/benoitkugler/okspider/spiderpath"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

var (
	_ spider.Surface   = (*Surface)(nil) // assert interface conformance
	_ spiderpath.Adder = (*pather)(nil)
)

// Surface writes to a PDF content stream.
// Coordinates are expressed with the origin at the top left
// corner, and the y axis pointing down, as for the other backends:
// use Begin and End to set up the page transform.
type Surface struct {
	pdf          *contentstream.Appearance
	fillStates   map[uint8]*model.GraphicState
	strokeStates map[uint8]*model.GraphicState

	path  spiderpath.Path
	faces spiderfont.Faces
	err   error
}

// implements the path commands, keeping track
// of the current point to convert quadratic curves
type pather struct {
	pdf     *contentstream.Appearance
	current fixed.Point26_6
}

// NewSurface returns a surface writing to `cs`.
func NewSurface(cs *contentstream.Appearance) *Surface {
	return &Surface{
		pdf:          cs,
		fillStates:   make(map[uint8]*model.GraphicState),
		strokeStates: make(map[uint8]*model.GraphicState),
	}
}

// RenderChart draws `c` on a single page document,
// sized to contain the chart bounds.
func RenderChart(c *spider.Chart) (model.Document, error) {
	b := c.Bounds()
	width, height := b.X+b.W, b.Y+b.H
	cs := contentstream.NewAppearance(width, height)
	s := NewSurface(&cs)
	defer s.Close()

	s.Begin(height)
	if err := c.Draw(s); err != nil {
		return model.Document{}, err
	}
	s.End()

	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, cs.ToPageObject(true))
	return doc, nil
}

// WriteChart renders `c` into the file `pdfName`.
func WriteChart(c *spider.Chart, pdfName string) error {
	doc, err := RenderChart(c)
	if err != nil {
		return err
	}
	return doc.WriteFile(pdfName, nil)
}

// Begin flips the y axis of a page of height `pageHeight`.
func (s *Surface) Begin(pageHeight float64) {
	s.pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, pageHeight}},
	)
}

// End restores the graphic state saved by Begin.
func (s *Surface) End() { s.pdf.Ops(contentstream.OpRestore{}) }

// Err returns the first error met while drawing text.
func (s *Surface) Err() error { return s.err }

// Close releases the font faces.
func (s *Surface) Close() error { return s.faces.Close() }

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
	p.current = a
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
	p.current = b
}

// QuadBezier is written as the equivalent cubic curve.
func (p *pather) QuadBezier(b, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.current)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.Ops(contentstream.OpCubicTo{
		X1: x0 + 2*(bx-x0)/3, Y1: y0 + 2*(by-y0)/3,
		X2: x + 2*(bx-x)/3, Y2: y + 2*(by-y)/3,
		X3: x, Y3: y,
	})
	p.current = c
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
	p.current = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

func (s *Surface) writePath(path spiderpath.Path) {
	path.AddTo(&pather{pdf: s.pdf})
}

// opaque returns the RGB part of `c` and its alpha
func opaque(c color.Color) (color.Color, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := n.A
	n.A = 0xff
	return n, a
}

// opacityState returns the cached graphic state for `alpha`
func (s *Surface) opacityState(cache map[uint8]*model.GraphicState, alpha uint8, stroke bool) model.Name {
	gs, ok := cache[alpha]
	if !ok {
		opacity := model.ObjFloat(float64(alpha) / 255)
		gs = &model.GraphicState{BM: []model.Name{"Normal"}}
		if stroke {
			gs.CA = opacity
		} else {
			gs.Ca = opacity
		}
		cache[alpha] = gs
	}
	return s.pdf.AddExtGState(gs)
}

func (s *Surface) setFill(c color.Color) {
	rgb, alpha := opaque(c)
	s.pdf.SetColorFill(rgb)
	name := s.opacityState(s.fillStates, alpha, false)
	s.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (s *Surface) fill(path spiderpath.Path, c color.Color) {
	s.pdf.Ops(contentstream.OpSave{})
	s.setFill(c)
	s.writePath(path)
	s.pdf.Ops(contentstream.OpFill{}, contentstream.OpRestore{})
}

func (s *Surface) Clear() { s.path.Clear() }

func (s *Surface) MoveTo(p spider.Point) { s.path.Start(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) LineTo(p spider.Point) { s.path.Line(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) ClosePath() { s.path.Stop(true) }

func (s *Surface) Fill(c color.Color) { s.fill(s.path, c) }

func (s *Surface) Stroke(c color.Color, width float64) {
	rgb, alpha := opaque(c)
	s.pdf.Ops(contentstream.OpSave{})
	s.pdf.SetColorStroke(rgb)
	name := s.opacityState(s.strokeStates, alpha, true)
	s.pdf.Ops(
		contentstream.OpSetExtGState{Dict: name},
		contentstream.OpSetLineWidth{W: width},
		contentstream.OpSetLineCap{Style: 1},
		contentstream.OpSetLineJoin{Style: 1},
	)
	s.writePath(s.path)
	s.pdf.Ops(contentstream.OpStroke{}, contentstream.OpRestore{})
}

func (s *Surface) FillEllipse(center spider.Point, rx, ry float64, c color.Color) {
	s.path.Clear()
	var ellipse spiderpath.Path
	ellipse.AddEllipse(center.X, center.Y, rx, ry)
	s.fill(ellipse, c)
}

func (s *Surface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Surface) MeasureText(text string, f spider.Font) (width, height float64) {
	width, height, err := s.faces.Measure(text, f)
	if err != nil {
		s.setErr(err)
	}
	return width, height
}

// DrawText fills the glyph outlines, so that
// no font has to be embedded in the document.
func (s *Surface) DrawText(text string, f spider.Font, c color.Color, topLeft spider.Point) {
	ascent, err := s.faces.Ascent(f)
	if err != nil {
		s.setErr(err)
		return
	}
	glyphs, err := spiderfont.Outline(text, f, spiderpath.ToFixed(topLeft.X, topLeft.Y+ascent))
	if err != nil {
		s.setErr(err)
		return
	}
	if len(glyphs) == 0 {
		return
	}
	s.fill(glyphs, c)
}
