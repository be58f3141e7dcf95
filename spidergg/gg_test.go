package spidergg

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/okspider/spider"
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

func near(c1, c2 color.Color) bool {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	d := func(u, v uint32) bool { return u-v < 0x400 || v-u < 0x400 }
	return d(r1, r2) && d(g1, g2) && d(b1, b2) && d(a1, a2)
}

func TestSurface(t *testing.T) {
	ctx := gg.NewContext(300, 300)
	defer ctx.Close()
	ctx.ClearWithColor(gg.FromColor(color.White))

	s := NewSurface(ctx)
	defer s.Close()
	if err := spider.Render(spider.Rect{W: 300, H: 300}, spider.DefaultConfiguration(), nil, nil, s); err != nil {
		t.Fatal(err)
	}
	if err := ctx.FlushGPU(); err != nil {
		t.Fatal(err)
	}

	img := ctx.Image()
	for _, test := range []struct {
		x, y     int
		expected color.Color
	}{
		{5, 5, color.White},
		{200, 150, colornames.Blue},
		{140, 150, colornames.Lime},
		{255, 150, color.White},
	} {
		if got := img.At(test.x, test.y); !near(got, test.expected) {
			t.Errorf("pixel (%d, %d): expected %v, got %v", test.x, test.y, test.expected, got)
		}
	}
	if len(s.sources) != 1 {
		t.Errorf("expected one font source, got %d", len(s.sources))
	}
}

func TestMeasureText(t *testing.T) {
	ctx := gg.NewContext(10, 10)
	defer ctx.Close()
	s := NewSurface(ctx)
	defer s.Close()

	f := spider.Font{Size: 12, Bold: true}
	w1, h1 := s.MeasureText("ab", f)
	w2, h2 := s.MeasureText("abab", f)
	if !(w1 > 0 && w2 > w1) || h1 <= 0 || h1 != h2 {
		t.Errorf("unexpected measures %g %g %g %g", w1, h1, w2, h2)
	}
	if _, h := s.MeasureText("", f); h != h1 {
		t.Errorf("empty text should keep the line height, got %g", h)
	}
	if s.Err() != nil {
		t.Fatal(s.Err())
	}
}

func TestRenderChart(t *testing.T) {
	c, err := spider.NewChart(spider.Rect{W: 200, H: 150}, spider.DefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := RenderChart(c, color.White, &out); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("unexpected image size %v", b)
	}
	if c.NeedsDisplay() {
		t.Error("chart should be clean after rendering")
	}
}
