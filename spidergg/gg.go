// Implements a backend rendering spider charts
// with a gg drawing context.
package spidergg

import (
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderfont"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

var _ spider.Surface = (*Surface)(nil) // assert interface conformance

// Surface paints with a gg.Context, whose current
// path is used as the surface path.
type Surface struct {
	ctx     *gg.Context
	sources map[bool]*text.FontSource // by Bold
	err     error
}

// NewSurface returns a surface painting with `ctx`.
func NewSurface(ctx *gg.Context) *Surface {
	return &Surface{ctx: ctx, sources: make(map[bool]*text.FontSource)}
}

// RenderChart draws `c` on a new context large enough to
// contain the chart bounds, and writes it as PNG to `out`.
func RenderChart(c *spider.Chart, background color.Color, out io.Writer) error {
	b := c.Bounds()
	ctx := gg.NewContext(int(math.Ceil(b.X+b.W)), int(math.Ceil(b.Y+b.H)))
	defer ctx.Close()
	if background != nil {
		ctx.ClearWithColor(gg.FromColor(background))
	}

	s := NewSurface(ctx)
	defer s.Close()
	if err := c.Draw(s); err != nil {
		return err
	}
	if err := ctx.FlushGPU(); err != nil {
		return err
	}
	return ctx.EncodePNG(out)
}

// Err returns the first error met while painting.
func (s *Surface) Err() error { return s.err }

// Close releases the font sources.
func (s *Surface) Close() error {
	var err error
	for k, src := range s.sources {
		if errC := src.Close(); errC != nil && err == nil {
			err = errC
		}
		delete(s.sources, k)
	}
	return err
}

func (s *Surface) setErr(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) face(f spider.Font) (text.Face, error) {
	src, ok := s.sources[f.Bold]
	if !ok {
		var err error
		src, err = text.NewFontSource(spiderfont.TTF(f))
		if err != nil {
			return nil, err
		}
		s.sources[f.Bold] = src
	}
	return src.Face(f.Size), nil
}

func (s *Surface) Clear() { s.ctx.ClearPath() }

func (s *Surface) MoveTo(p spider.Point) { s.ctx.MoveTo(p.X, p.Y) }

func (s *Surface) LineTo(p spider.Point) { s.ctx.LineTo(p.X, p.Y) }

func (s *Surface) ClosePath() { s.ctx.ClosePath() }

func (s *Surface) Fill(c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetFillRule(gg.FillRuleNonZero)
	s.setErr(s.ctx.FillPreserve())
}

func (s *Surface) Stroke(c color.Color, width float64) {
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(width)
	s.ctx.SetLineCap(gg.LineCapRound)
	s.ctx.SetLineJoin(gg.LineJoinRound)
	s.setErr(s.ctx.StrokePreserve())
}

func (s *Surface) FillEllipse(center spider.Point, rx, ry float64, c color.Color) {
	s.ctx.ClearPath()
	s.ctx.DrawEllipse(center.X, center.Y, rx, ry)
	s.ctx.SetColor(c)
	s.ctx.SetFillRule(gg.FillRuleNonZero)
	s.setErr(s.ctx.Fill())
}

func (s *Surface) MeasureText(txt string, f spider.Font) (width, height float64) {
	face, err := s.face(f)
	if err != nil {
		s.setErr(err)
		return 0, 0
	}
	width, _ = text.Measure(txt, face)
	return width, face.Metrics().LineHeight()
}

func (s *Surface) DrawText(txt string, f spider.Font, c color.Color, topLeft spider.Point) {
	face, err := s.face(f)
	if err != nil {
		s.setErr(err)
		return
	}
	s.ctx.SetFont(face)
	s.ctx.SetColor(c)
	s.ctx.DrawString(txt, topLeft.X, topLeft.Y+face.Metrics().Ascent)
}
