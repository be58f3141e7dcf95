// Resolves the chart fonts to actual font faces,
// using the Go fonts, so that every backend measures
// text the same way.
package spiderfont

import (
	"sync"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderpath"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DPI is the resolution used to convert font sizes: at 72 dpi,
// one point is one surface unit.
const DPI = 72

var (
	parseOnce     sync.Once
	regular, bold *opentype.Font
	parseErr      error
)

// Source returns the parsed font used for `f`.
// The returned font may be shared between goroutines.
func Source(f spider.Font) (*opentype.Font, error) {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if f.Bold {
		return bold, nil
	}
	return regular, nil
}

// TTF returns the raw font file used for `f`.
func TTF(f spider.Font) []byte {
	if f.Bold {
		return gobold.TTF
	}
	return goregular.TTF
}

// Faces caches the font faces of a surface.
// It is not safe for concurrent use, since faces are not.
type Faces struct {
	faces map[spider.Font]font.Face
}

// Face returns the face for `f`, creating it on first use.
func (fc *Faces) Face(f spider.Font) (font.Face, error) {
	if face, ok := fc.faces[f]; ok {
		return face, nil
	}
	src, err := Source(f)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	if fc.faces == nil {
		fc.faces = make(map[spider.Font]font.Face)
	}
	fc.faces[f] = face
	return face, nil
}

// Measure returns the advance width and the line height of `text`.
func (fc *Faces) Measure(text string, f spider.Font) (width, height float64, err error) {
	face, err := fc.Face(f)
	if err != nil {
		return 0, 0, err
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, float64(face.Metrics().Height) / 64, nil
}

// Ascent returns the distance from the top of the line to the baseline.
func (fc *Faces) Ascent(f spider.Font) (float64, error) {
	face, err := fc.Face(f)
	if err != nil {
		return 0, err
	}
	return float64(face.Metrics().Ascent) / 64, nil
}

// Close releases the cached faces.
func (fc *Faces) Close() error {
	var err error
	for k, face := range fc.faces {
		if errC := face.Close(); errC != nil && err == nil {
			err = errC
		}
		delete(fc.faces, k)
	}
	return err
}

// Outline returns the glyph contours of `text` as a path,
// with the baseline starting at `dot`. It is used by the backends
// without native text support.
func Outline(text string, f spider.Font, dot fixed.Point26_6) (spiderpath.Path, error) {
	src, err := Source(f)
	if err != nil {
		return nil, err
	}
	ppem := fixed.Int26_6(f.Size * 64)
	var (
		buf     sfnt.Buffer
		p       spiderpath.Path
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range text {
		idx, err := src.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if hasPrev {
			if kern, err := src.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				dot.X += kern
			}
		}
		segments, err := src.LoadGlyph(&buf, idx, ppem, nil)
		if err != nil {
			return nil, err
		}
		inContour := false
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if inContour {
					p.Stop(true)
				}
				p.Start(seg.Args[0].Add(dot))
				inContour = true
			case sfnt.SegmentOpLineTo:
				p.Line(seg.Args[0].Add(dot))
			case sfnt.SegmentOpQuadTo:
				p.QuadBezier(seg.Args[0].Add(dot), seg.Args[1].Add(dot))
			case sfnt.SegmentOpCubeTo:
				p.CubeBezier(seg.Args[0].Add(dot), seg.Args[1].Add(dot), seg.Args[2].Add(dot))
			}
		}
		if inContour {
			p.Stop(true)
		}
		adv, err := src.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		dot.X += adv
		prev, hasPrev = idx, true
	}
	return p, nil
}
