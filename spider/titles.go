package spider

import "math"

const (
	// titlePadding is the gap between the chart edge and the row titles.
	titlePadding = 10

	// angleEpsilon is the tolerance used to detect axes
	// pointing to a cardinal direction.
	angleEpsilon = 1e-9
)

// titleCenter returns the center of the label box (of size w x h)
// for an axis of the given angle.
//
// Labels are pushed outward from the edge point of the axis, on the side of
// the center they lie on. Vertical axes get their label stacked right
// above or below the chart, and horizontal axes get their label
// vertically centered.
func titleCenter(center Point, radius, angle, w, h float64) Point {
	edge := pointAtAngle(center, radius, angle)

	offset := Point{X: -w/2 - titlePadding, Y: -h/2 - titlePadding}
	if edge.X >= center.X {
		offset.X = w/2 + titlePadding
	}
	if edge.Y >= center.Y {
		offset.Y = h/2 + titlePadding
	}
	label := edge.Add(offset)

	switch {
	case math.Abs(math.Sin(angle)) < angleEpsilon: // top or bottom
		label.X = center.X
		d := radius + titlePadding + h/2
		if math.Cos(angle) > 0 {
			label.Y = center.Y - d
		} else {
			label.Y = center.Y + d
		}
	case math.Abs(math.Cos(angle)) < angleEpsilon: // left or right
		label.Y = center.Y
	}
	return label
}

// drawTitles places the row titles around the chart.
func (p *renderPass) drawTitles() error {
	font := p.style.TitleFont()
	titleColor := p.style.TitleColor()
	for i := 0; i < p.rows; i++ {
		title := p.data.RowTitle(i)
		w, h := p.s.MeasureText(title, font)
		c := titleCenter(p.center, p.radius, AxisAngle(i, p.rows, p.config.Clockwise), w, h)
		p.s.DrawText(title, font, titleColor, Point{c.X - w/2, c.Y - h/2})
	}
	return nil
}
