package spiderfont

import (
	"testing"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderpath"
)

func TestMeasure(t *testing.T) {
	var fc Faces
	defer fc.Close()

	f := spider.Font{Size: 12, Bold: true}
	w0, h0, err := fc.Measure("", f)
	if err != nil {
		t.Fatal(err)
	}
	if w0 != 0 || h0 <= 0 {
		t.Errorf("unexpected empty text size %g x %g", w0, h0)
	}

	w1, h1, _ := fc.Measure("Speed", f)
	w2, h2, _ := fc.Measure("Speed and power", f)
	if !(w1 > 0 && w2 > w1) || h1 != h2 {
		t.Errorf("unexpected sizes %g %g %g %g", w1, h1, w2, h2)
	}

	w3, h3, _ := fc.Measure("Speed", spider.Font{Size: 24, Bold: true})
	if w3 <= w1 || h3 <= h1 {
		t.Errorf("larger font should give a larger box: %g x %g", w3, h3)
	}

	asc, err := fc.Ascent(f)
	if err != nil || asc <= 0 || asc > h1 {
		t.Errorf("unexpected ascent %g (%v)", asc, err)
	}

	if len(fc.faces) != 2 {
		t.Errorf("expected 2 cached faces, got %d", len(fc.faces))
	}
}

func TestOutline(t *testing.T) {
	f := spider.Font{Size: 20}
	dot := spiderpath.ToFixed(100, 50)
	p, err := Outline("HA", f, dot)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) == 0 {
		t.Fatal("empty outline")
	}
	var fc Faces
	w, _, _ := fc.Measure("HA", f)

	box := p.Bounds()
	minX, minY := spiderpath.FromFixed(box.Min)
	maxX, maxY := spiderpath.FromFixed(box.Max)
	// capital letters sit on the baseline, inside their advance
	if minX < 100 || maxX > 100+w+1 || maxY > 50.5 || minY > 40 {
		t.Errorf("unexpected outline bounds %g,%g %g,%g", minX, minY, maxX, maxY)
	}

	if empty, err := Outline("", f, dot); err != nil || len(empty) != 0 {
		t.Errorf("expected empty path, got %v %v", empty, err)
	}
}
