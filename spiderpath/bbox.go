package spiderpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// exact extent of paths, using the critical points of the segments

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixed(l[0])
	p1x, p1y := FromFixed(l[1])
	return (p1x-p0x)*t + p0x, (p1y-p0y)*t + p0y
}

type quadBezier [3]fixed.Point26_6

// quadratic polynomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := FromFixed(cu[0])
	p1x, p1y := FromFixed(cu[1])
	p2x, p2y := FromFixed(cu[2])
	aX, bX := quadraticDerivative(p0x, p1x, p2x)
	aY, bY := quadraticDerivative(p0y, p1y, p2y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixed(cu[0])
	p1x, p1y := FromFixed(cu[1])
	p2x, p2y := FromFixed(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where
// A = p3 - 3p2 + 3p1 - p0
// B = 3p2 - 6p1 + 3p0
// C = 3p1 - 3p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := FromFixed(cu[0])
	p1x, p1y := FromFixed(cu[1])
	p2x, p2y := FromFixed(cu[2])
	p3x, p3y := FromFixed(cu[3])
	aX, bX, cX := cubicDerivative(p0x, p1x, p2x, p3x)
	aY, bY, cY := cubicDerivative(p0y, p1y, p2y, p3y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixed(cu[0])
	p1x, p1y := FromFixed(cu[1])
	p2x, p2y := FromFixed(cu[2])
	p3x, p3y := FromFixed(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// extent accumulates the min and max of evaluated points
type extent struct {
	minX, minY, maxX, maxY float64
}

func newExtent() extent {
	return extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (e *extent) add(x, y float64) {
	e.minX, e.minY = math.Min(e.minX, x), math.Min(e.minY, y)
	e.maxX, e.maxY = math.Max(e.maxX, x), math.Max(e.maxY, y)
}

func (e *extent) addCurve(curve bezier) {
	tX, tY := curve.criticalPoints()
	// add begin and end point
	for _, t := range append(append(tX, 0, 1), tY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		e.add(curve.evaluateCurve(t))
	}
}

// Extent returns the exact bounding box of the path, which is
// included in (and usually smaller than) Bounds for curved paths.
// An empty path has an empty extent.
func (p Path) Extent() fixed.Rectangle26_6 {
	ext := newExtent()
	var start, current fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			start, current = fixed.Point26_6(op), fixed.Point26_6(op)
			ext.add(FromFixed(current))
		case LineTo:
			ext.addCurve(line{current, fixed.Point26_6(op)})
			current = fixed.Point26_6(op)
		case QuadTo:
			ext.addCurve(quadBezier{current, op[0], op[1]})
			current = op[1]
		case CubicTo:
			ext.addCurve(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			current = start
		}
	}
	if ext.minX > ext.maxX {
		return fixed.Rectangle26_6{}
	}
	return fixed.Rectangle26_6{Min: ToFixed(ext.minX, ext.minY), Max: ToFixed(ext.maxX, ext.maxY)}
}
