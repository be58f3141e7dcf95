package spiderpdf

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/pdf/contentstream"
)

func TestOpaque(t *testing.T) {
	rgb, a := opaque(color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	if rgb != (color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}) || a != 128 {
		t.Errorf("unexpected split %v %d", rgb, a)
	}
	if _, a := opaque(color.Black); a != 0xff {
		t.Errorf("expected opaque, got %d", a)
	}
}

func TestOpacityStates(t *testing.T) {
	cs := contentstream.NewAppearance(300, 300)
	s := NewSurface(&cs)
	defer s.Close()

	cfg := spider.DefaultConfiguration()
	cfg.ShowBorder = true
	cfg.ShowPoint = true
	if err := spider.Render(spider.Rect{W: 300, H: 300}, cfg, nil, translucent{}, s); err != nil {
		t.Fatal(err)
	}
	// opaque and translucent fills, only opaque strokes
	if len(s.fillStates) != 2 || len(s.strokeStates) != 1 {
		t.Errorf("unexpected graphic states %d %d", len(s.fillStates), len(s.strokeStates))
	}
	if s.fillStates[0x80].Ca != 0x80/255. {
		t.Errorf("unexpected opacity %v", s.fillStates[0x80].Ca)
	}
}

type translucent struct{ spider.DefaultStyle }

func (translucent) SectionFillColor() color.Color { return color.NRGBA{R: 0xff, A: 0x80} }

func TestWriteChart(t *testing.T) {
	c, err := spider.NewChart(spider.Rect{X: 10, Y: 10, W: 300, H: 200}, spider.DefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	doc, err := RenderChart(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Catalog.Pages.Kids) != 1 {
		t.Fatalf("expected one page, got %d", len(doc.Catalog.Pages.Kids))
	}

	name := filepath.Join(t.TempDir(), "chart.pdf")
	if err := WriteChart(c, name); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("invalid PDF header %q", b[:min(len(b), 8)])
	}
}

func TestDrawError(t *testing.T) {
	c, err := spider.NewChart(spider.Rect{W: 300, H: 300}, spider.DefaultConfiguration(),
		spider.WithDataSource(emptySource{}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RenderChart(c); err == nil {
		t.Error("expected error for empty data source")
	}
}

type emptySource struct{ spider.DefaultDataSource }

func (emptySource) RowCount() int { return 0 }
