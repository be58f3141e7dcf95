package spider

import "math"

// Point is a location on the drawing surface, with Y growing downward.
type Point struct{ X, Y float64 }

// Add returns the vector p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect defines a bounding box, such as the view bounds
// of a chart.
type Rect struct{ X, Y, W, H float64 }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// AnglePerRow returns the signed angle between two consecutive axes.
// Positive angles turn clockwise on screen.
func AnglePerRow(rows int, clockwise bool) float64 {
	a := 2 * math.Pi / float64(rows)
	if !clockwise {
		a = -a
	}
	return a
}

// AxisAngle returns the angle of the axis for `row`, measured from
// the upward direction.
func AxisAngle(row, rows int, clockwise bool) float64 {
	return float64(row) * AnglePerRow(rows, clockwise)
}

// PointOnAxis returns the point at distance `radius` from `center`
// along the axis of `row`. Row 0 points up; following rows turn
// clockwise or counter-clockwise according to the flag.
// `rows` must be positive.
func PointOnAxis(center Point, radius float64, row, rows int, clockwise bool) Point {
	return pointAtAngle(center, radius, AxisAngle(row, rows, clockwise))
}

func pointAtAngle(center Point, radius, angle float64) Point {
	return Point{
		X: center.X - radius*math.Sin(angle),
		Y: center.Y - radius*math.Cos(angle),
	}
}

// ValueToRadius linearly maps `value` from [min, max] to [0, radius].
// Values outside of the range are not clamped.
// An empty or reversed range is rejected with a *ConfigurationError.
func ValueToRadius(value, min, max, radius float64) (float64, error) {
	if !(max > min) {
		return 0, &ConfigurationError{Field: "MaxValue", Reason: "must be greater than MinValue"}
	}
	return scale{min: min, max: max, radius: radius}.radiusOf(value), nil
}

// scale is a validated value range
type scale struct{ min, max, radius float64 }

func (s scale) radiusOf(value float64) float64 {
	return s.radius * (value - s.min) / (s.max - s.min)
}

func (s scale) contains(value float64) bool { return value >= s.min && value <= s.max }
