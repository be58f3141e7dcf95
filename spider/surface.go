package spider

import "image/color"

// Surface knows how to do the actual draw operations
// but doesn't need any chart knowledge: every coordinate
// is already resolved when sent to the Surface.
//
// A Surface holds one current path. Fill and Stroke paint it
// without consuming it, so that the same path may be filled
// then stroked.
type Surface interface {
	// Clear must reset the current path (used before starting a new path painting)
	Clear()

	// MoveTo starts a new sub-path at the given point.
	MoveTo(p Point)

	// LineTo adds a line from the current point to `p`
	LineTo(p Point)

	// ClosePath joins the current point to the start of the sub-path.
	ClosePath()

	// Fill paints the inside of the current path, using the non-zero winding rule.
	Fill(c color.Color)

	// Stroke paints the outline of the current path.
	Stroke(c color.Color, width float64)

	// FillEllipse paints a filled ellipse. The current path is discarded.
	FillEllipse(center Point, rx, ry float64, c color.Color)

	// MeasureText returns the advance width and the line height of `text`.
	MeasureText(text string, f Font) (width, height float64)

	// DrawText draws `text` in the box of size MeasureText(text, f)
	// whose top left corner is `topLeft`.
	DrawText(text string, f Font, c color.Color, topLeft Point)
}

// surfaces which may fail report their first error with Err
type errSurface interface {
	Err() error
}
