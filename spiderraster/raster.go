// Implements a raster backend to render spider charts,
// by wrapping rasterx.
package spiderraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderfont"
	"github.com/benoitkugler/okspider/spiderpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ spider.Surface = (*Surface)(nil) // assert interface conformance

// Surface paints on an RGBA image.
type Surface struct {
	dst    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	path  spiderpath.Path // current path, replayed on each painting
	faces spiderfont.Faces
	err   error
}

// NewSurface returns a surface drawing into `dst`,
// using a default scanner rasterx.ScannerGV.
func NewSurface(dst *image.RGBA) *Surface {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &Surface{
		dst:    dst,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// RenderChart draws `c` on a new image large enough to
// contain the chart bounds. If `background` is not nil, the
// image is first filled with it.
func RenderChart(c *spider.Chart, background color.Color) (*image.RGBA, error) {
	b := c.Bounds()
	w, h := int(math.Ceil(b.X+b.W)), int(math.Ceil(b.Y+b.H))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	s := NewSurface(img)
	defer s.Close()
	if err := c.Draw(s); err != nil {
		return nil, err
	}
	return img, nil
}

// Err returns the first error met while drawing text.
func (s *Surface) Err() error { return s.err }

// Close releases the font faces.
func (s *Surface) Close() error { return s.faces.Close() }

func (s *Surface) Clear() { s.path.Clear() }

func (s *Surface) MoveTo(p spider.Point) { s.path.Start(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) LineTo(p spider.Point) { s.path.Line(spiderpath.ToFixed(p.X, p.Y)) }

func (s *Surface) ClosePath() { s.path.Stop(true) }

func (s *Surface) fill(p spiderpath.Path, c color.Color) {
	s.filler.Clear()
	s.filler.SetWinding(true)
	s.filler.SetColor(c)
	p.AddTo(s.filler)
	s.filler.Draw()
}

func (s *Surface) Fill(c color.Color) { s.fill(s.path, c) }

func (s *Surface) Stroke(c color.Color, width float64) {
	s.dasher.Clear()
	s.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	s.dasher.SetColor(c)
	s.path.AddTo(s.dasher)
	s.dasher.Draw()
}

func (s *Surface) FillEllipse(center spider.Point, rx, ry float64, c color.Color) {
	s.path.Clear()
	var ellipse spiderpath.Path
	ellipse.AddEllipse(center.X, center.Y, rx, ry)
	s.fill(ellipse, c)
}

func (s *Surface) MeasureText(text string, f spider.Font) (width, height float64) {
	width, height, err := s.faces.Measure(text, f)
	if err != nil && s.err == nil {
		s.err = err
	}
	return width, height
}

func (s *Surface) DrawText(text string, f spider.Font, c color.Color, topLeft spider.Point) {
	face, err := s.faces.Face(f)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	d := font.Drawer{
		Dst:  s.dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  spiderpath.ToFixed(topLeft.X, topLeft.Y),
	}
	d.Dot.Y += face.Metrics().Ascent
	d.DrawString(text)
}
