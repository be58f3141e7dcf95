package spiderpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// kappa is the distance of the control points, relative to the radius,
// for a cubic approximation of a quarter circle.
var kappa = 4 * (math.Sqrt2 - 1) / 3

// AddEllipse adds a closed ellipse centered at (cx, cy), made of
// four cubic bezier curves, starting at the rightmost point.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	p.Start(ToFixed(cx+rx, cy))
	p.CubeBezier(ToFixed(cx+rx, cy+ky), ToFixed(cx+kx, cy+ry), ToFixed(cx, cy+ry))
	p.CubeBezier(ToFixed(cx-kx, cy+ry), ToFixed(cx-rx, cy+ky), ToFixed(cx-rx, cy))
	p.CubeBezier(ToFixed(cx-rx, cy-ky), ToFixed(cx-kx, cy-ry), ToFixed(cx, cy-ry))
	p.CubeBezier(ToFixed(cx+kx, cy-ry), ToFixed(cx+rx, cy-ky), ToFixed(cx+rx, cy))
	p.Stop(true)
}

// Bounds returns the smallest rectangle containing every point
// of the path, control points included. Since Bezier curves lie
// inside the convex hull of their control points, this is an upper bound
// of the exact extent.
func (p Path) Bounds() (box fixed.Rectangle26_6) {
	first := true
	add := func(a fixed.Point26_6) {
		if first {
			box = fixed.Rectangle26_6{Min: a, Max: a}
			first = false
			return
		}
		if a.X < box.Min.X {
			box.Min.X = a.X
		}
		if a.Y < box.Min.Y {
			box.Min.Y = a.Y
		}
		if a.X > box.Max.X {
			box.Max.X = a.X
		}
		if a.Y > box.Max.Y {
			box.Max.Y = a.Y
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(fixed.Point26_6(op))
		case LineTo:
			add(fixed.Point26_6(op))
		case QuadTo:
			add(op[0])
			add(op[1])
		case CubicTo:
			add(op[0])
			add(op[1])
			add(op[2])
		}
	}
	return box
}
