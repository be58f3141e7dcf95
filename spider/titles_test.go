package spider

import (
	"math"
	"testing"
)

func TestTitleCenter(t *testing.T) {
	c := Point{100, 100}
	const r, w, h = 50., 20., 14.
	for _, test := range []struct {
		row, rows int
		clockwise bool
		expected  Point
	}{
		{0, 4, false, Point{100, 100 - (r + titlePadding + h/2)}},
		{2, 4, false, Point{100, 100 + (r + titlePadding + h/2)}},
		{1, 4, false, Point{100 + r + w/2 + titlePadding, 100}},
		{1, 4, true, Point{100 - r - w/2 - titlePadding, 100}},
		{3, 4, false, Point{100 - r - w/2 - titlePadding, 100}},
		{3, 6, false, Point{100, 100 + (r + titlePadding + h/2)}},
		{1, 6, false, Point{100 + r*math.Sin(math.Pi/3) + w/2 + titlePadding, 100 - r/2 - h/2 - titlePadding}},
		{2, 6, true, Point{100 - r*math.Sin(math.Pi/3) - w/2 - titlePadding, 100 + r/2 + h/2 + titlePadding}},
		{0, 1, false, Point{100, 100 - (r + titlePadding + h/2)}},
	} {
		got := titleCenter(c, r, AxisAngle(test.row, test.rows, test.clockwise), w, h)
		if math.Abs(got.X-test.expected.X) > 1e-6 || math.Abs(got.Y-test.expected.Y) > 1e-6 {
			t.Errorf("row %d/%d (clockwise %v): expected %v, got %v", test.row, test.rows, test.clockwise, test.expected, got)
		}
	}
}

func TestTitleBoxes(t *testing.T) {
	var rec Recorder
	ds := tableSource{steps: 1, titles: []string{"north", "east", "south", "west"}, values: [][]float64{{1, 1, 1, 1}}}
	cfg := DefaultConfiguration()
	cfg.Clockwise = true
	if err := Render(bounds, cfg, ds, nil, &rec); err != nil {
		t.Fatal(err)
	}
	texts := rec.Filter(OpDrawText)
	if len(texts) != 4 {
		t.Fatalf("expected 4 titles, got %d", len(texts))
	}
	for _, op := range texts {
		w, h := rec.MeasureText(op.Text, op.Font)
		box := Rect{op.Point.X, op.Point.Y, w, h}
		// titles never overlap the chart disc
		dx := math.Max(math.Max(box.X-150, 150-(box.X+box.W)), 0)
		dy := math.Max(math.Max(box.Y-150, 150-(box.Y+box.H)), 0)
		if d := math.Hypot(dx, dy); d < 80 {
			t.Errorf("title %q too close to the chart: %g", op.Text, d)
		}
		if op.Font != (Font{Size: 12, Bold: true}) {
			t.Errorf("unexpected font %v", op.Font)
		}
	}
	// "east" is at index 1, on the left when clockwise
	if east := texts[1]; east.Point.X > 150-80 {
		t.Errorf("unexpected position for %q: %v", east.Text, east.Point)
	}
}
