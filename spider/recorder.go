package spider

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

// OpKind identifies a Surface call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpFill
	OpStroke
	OpFillEllipse
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpClosePath:
		return "ClosePath"
	case OpFill:
		return "Fill"
	case OpStroke:
		return "Stroke"
	case OpFillEllipse:
		return "FillEllipse"
	case OpDrawText:
		return "DrawText"
	default:
		return "<unknown OpKind>"
	}
}

// Op is one recorded Surface call. Only the fields
// relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Point  Point // MoveTo, LineTo, FillEllipse center, DrawText top left corner
	Color  color.Color
	Width  float64 // stroke width
	RX, RY float64 // ellipse radii
	Text   string
	Font   Font
}

func (op Op) String() string {
	switch op.Kind {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s %.4f,%.4f", op.Kind, op.Point.X, op.Point.Y)
	case OpFill:
		return fmt.Sprintf("%s %s", op.Kind, colorString(op.Color))
	case OpStroke:
		return fmt.Sprintf("%s %s %.4f", op.Kind, colorString(op.Color), op.Width)
	case OpFillEllipse:
		return fmt.Sprintf("%s %.4f,%.4f %.4f %.4f %s", op.Kind, op.Point.X, op.Point.Y, op.RX, op.RY, colorString(op.Color))
	case OpDrawText:
		return fmt.Sprintf("%s %q %.4f,%.4f %g/%t %s", op.Kind, op.Text, op.Point.X, op.Point.Y,
			op.Font.Size, op.Font.Bold, colorString(op.Color))
	default:
		return op.Kind.String()
	}
}

func colorString(c color.Color) string {
	if c == nil {
		return "<nil>"
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

// Recorder is a Surface which records every call.
// It is useful to test charts or to replay them later.
type Recorder struct {
	Ops []Op

	// Measure is used by MeasureText. When nil, a fixed advance of
	// 0.6 em per rune and a line height of 1.2 em are assumed.
	Measure func(text string, f Font) (width, height float64)
}

var _ Surface = (*Recorder)(nil) // assert interface conformance

func (r *Recorder) Clear()             { r.Ops = append(r.Ops, Op{Kind: OpClear}) }
func (r *Recorder) MoveTo(p Point)     { r.Ops = append(r.Ops, Op{Kind: OpMoveTo, Point: p}) }
func (r *Recorder) LineTo(p Point)     { r.Ops = append(r.Ops, Op{Kind: OpLineTo, Point: p}) }
func (r *Recorder) ClosePath()         { r.Ops = append(r.Ops, Op{Kind: OpClosePath}) }
func (r *Recorder) Fill(c color.Color) { r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c}) }

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: c, Width: width})
}

func (r *Recorder) FillEllipse(center Point, rx, ry float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillEllipse, Point: center, RX: rx, RY: ry, Color: c})
}

func (r *Recorder) MeasureText(text string, f Font) (width, height float64) {
	if r.Measure != nil {
		return r.Measure(text, f)
	}
	return 0.6 * f.Size * float64(utf8.RuneCountInString(text)), 1.2 * f.Size
}

func (r *Recorder) DrawText(text string, f Font, c color.Color, topLeft Point) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawText, Text: text, Font: f, Color: c, Point: topLeft})
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Replay sends the recorded operations to `s`.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			s.Clear()
		case OpMoveTo:
			s.MoveTo(op.Point)
		case OpLineTo:
			s.LineTo(op.Point)
		case OpClosePath:
			s.ClosePath()
		case OpFill:
			s.Fill(op.Color)
		case OpStroke:
			s.Stroke(op.Color, op.Width)
		case OpFillEllipse:
			s.FillEllipse(op.Point, op.RX, op.RY, op.Color)
		case OpDrawText:
			s.DrawText(op.Text, op.Font, op.Color, op.Point)
		}
	}
}

// String returns one line per recorded operation.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
