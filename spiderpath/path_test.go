package spiderpath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

// records the calls made on an Adder
type callRecorder []string

func (c *callRecorder) Start(a fixed.Point26_6)            { *c = append(*c, "start") }
func (c *callRecorder) Line(b fixed.Point26_6)             { *c = append(*c, "line") }
func (c *callRecorder) QuadBezier(b, _ fixed.Point26_6)    { *c = append(*c, "quad") }
func (c *callRecorder) CubeBezier(b, _, _ fixed.Point26_6) { *c = append(*c, "cube") }
func (c *callRecorder) Stop(closeLoop bool) {
	if closeLoop {
		*c = append(*c, "close")
	} else {
		*c = append(*c, "stop")
	}
}

func TestToSVGPath(t *testing.T) {
	var p Path
	p.Start(ToFixed(10, 20))
	p.Line(ToFixed(30, 20.5))
	p.Stop(true)
	if got, exp := p.ToSVGPath(), "M10.000,20.000 L30.000,20.500 Z"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}

	p.Clear()
	if len(p) != 0 || p.String() != "" {
		t.Errorf("expected empty path, got %s", p)
	}
}

func TestAddTo(t *testing.T) {
	var p Path
	p.Start(ToFixed(0, 0))
	p.Line(ToFixed(1, 0))
	p.Line(ToFixed(1, 1))
	p.Stop(true)
	p.QuadBezier(ToFixed(0, 0), ToFixed(2, 2))

	var rec callRecorder
	p.AddTo(&rec)
	exp := []string{"stop", "start", "line", "line", "close", "quad", "stop"}
	if len(rec) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, rec)
	}
	for i := range exp {
		if rec[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, rec)
		}
	}
}

func TestEllipseBounds(t *testing.T) {
	var p Path
	p.AddEllipse(50, 40, 3, 3)
	if len(p) != 6 { // start, 4 cubics, close
		t.Fatalf("unexpected ellipse path %s", p)
	}
	box := p.Bounds()
	if box.Min != ToFixed(47, 37) || box.Max != ToFixed(53, 43) {
		t.Errorf("unexpected bounds %v", box)
	}
}

func TestEmptyBounds(t *testing.T) {
	if empty := (Path{}).Bounds(); empty != (fixed.Rectangle26_6{}) {
		t.Errorf("expected zero bounds, got %v", empty)
	}
}

func TestExtent(t *testing.T) {
	var p Path
	p.Start(ToFixed(0, 0))
	p.QuadBezier(ToFixed(10, 20), ToFixed(20, 0))
	// the control point is far outside the curve
	if box := p.Bounds(); box.Max.Y != ToFixed(0, 20).Y {
		t.Errorf("unexpected bounds %v", box)
	}
	ext := p.Extent()
	if ext.Min != ToFixed(0, 0) || ext.Max != ToFixed(20, 10) {
		t.Errorf("unexpected extent %v", ext)
	}

	p.Clear()
	p.AddEllipse(50, 40, 3, 3)
	ext = p.Extent()
	if d := ext.Min.Sub(ToFixed(47, 37)); abs26(d.X) > 1 || abs26(d.Y) > 1 {
		t.Errorf("unexpected ellipse extent %v", ext)
	}
	if d := ext.Max.Sub(ToFixed(53, 43)); abs26(d.X) > 1 || abs26(d.Y) > 1 {
		t.Errorf("unexpected ellipse extent %v", ext)
	}

	if empty := (Path{}).Extent(); empty != (fixed.Rectangle26_6{}) {
		t.Errorf("expected zero extent, got %v", empty)
	}
}

func TestQuadraticRoots(t *testing.T) {
	for _, test := range []struct {
		a, b, c float64
		n       int
	}{
		{0, 0, 1, 0},
		{0, 2, -1, 1},
		{1, 0, 1, 0},
		{1, -2, 1, 1},
		{1, 0, -1, 2},
	} {
		if got := quadraticRoots(test.a, test.b, test.c); len(got) != test.n {
			t.Errorf("%v: expected %d roots, got %v", test, test.n, got)
		}
	}
}

func abs26(v fixed.Int26_6) fixed.Int26_6 {
	if v < 0 {
		return -v
	}
	return v
}
