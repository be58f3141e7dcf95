// Package spider lays out and draws radial ("spider" or radar) charts:
// concentric step bands, radial axis lines, row titles and
// data polygons around a center point.
//
// The chart content is supplied by a DataSource and its look by
// a Style; the drawing itself is delegated to a Surface,
// implemented for instance by the spiderraster, spiderpdf,
// spidersvg and spidergg packages.
package spider

import "log/slog"

// Chart is a chart bound to a view.
// It keeps the center point and the effective radius for
// the current bounds, and tracks whether it needs to be redrawn.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	config Configuration
	data   DataSource
	style  Style

	bounds      Rect
	center      Point
	radius      float64
	fixedCenter *Point

	dirty      bool
	invalidate func()
}

// Option customizes a Chart at creation.
type Option func(*Chart)

// WithDataSource sets the data source of the chart.
func WithDataSource(ds DataSource) Option {
	return func(c *Chart) { c.data = ds }
}

// WithStyle sets the style of the chart.
func WithStyle(st Style) Option {
	return func(c *Chart) { c.style = st }
}

// WithInvalidate registers a function called each time
// the chart needs to be redrawn. Hosts use it to schedule
// a repaint, which should then call Draw.
func WithInvalidate(fn func()) Option {
	return func(c *Chart) { c.invalidate = fn }
}

// NewChart returns a chart for the given bounds.
// The configuration is validated first.
func NewChart(bounds Rect, config Configuration, opts ...Option) (*Chart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{config: config, bounds: bounds}
	for _, opt := range opts {
		opt(c)
	}
	if c.data == nil {
		c.data = DefaultDataSource{}
	}
	if c.style == nil {
		c.style = DefaultStyle{}
	}
	c.updateLayout()
	c.dirty = true
	return c, nil
}

// Configuration returns the current configuration.
func (c *Chart) Configuration() Configuration { return c.config }

// SetConfiguration validates and replaces the configuration,
// then requests a redraw. An invalid configuration is rejected
// and the previous one is kept.
func (c *Chart) SetConfiguration(config Configuration) error {
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	c.updateLayout()
	c.Reload()
	return nil
}

// DataSource returns the current data source.
func (c *Chart) DataSource() DataSource { return c.data }

// SetDataSource replaces the data source and requests a redraw.
// nil restores DefaultDataSource.
func (c *Chart) SetDataSource(ds DataSource) {
	if ds == nil {
		ds = DefaultDataSource{}
	}
	c.data = ds
	c.Reload()
}

// Style returns the current style.
func (c *Chart) Style() Style { return c.style }

// SetStyle replaces the style and requests a redraw.
// nil restores DefaultStyle.
func (c *Chart) SetStyle(st Style) {
	if st == nil {
		st = DefaultStyle{}
	}
	c.style = st
	c.Reload()
}

// Bounds returns the current view bounds.
func (c *Chart) Bounds() Rect { return c.bounds }

// OnBoundsChanged recomputes the center point and
// the effective radius, and requests a redraw.
func (c *Chart) OnBoundsChanged(bounds Rect) {
	c.bounds = bounds
	c.updateLayout()
	Logger().Debug("spider: bounds changed", slog.Float64("width", bounds.W), slog.Float64("height", bounds.H),
		slog.Float64("radius", c.radius))
	c.Reload()
}

// SetCenterPoint fixes the center point used when
// AutoCenterPoint is disabled, and requests a redraw.
func (c *Chart) SetCenterPoint(p Point) {
	c.fixedCenter = &p
	c.updateLayout()
	c.Reload()
}

// CenterPoint returns the center of the chart for the current bounds.
func (c *Chart) CenterPoint() Point { return c.center }

// Radius returns the radius actually used, which is
// the configured one clamped to the bounds.
func (c *Chart) Radius() float64 { return c.radius }

// Reload marks the chart as needing a redraw,
// and notifies the host.
func (c *Chart) Reload() {
	c.dirty = true
	if c.invalidate != nil {
		c.invalidate()
	}
}

// NeedsDisplay returns true if the chart changed since the last
// successful Draw.
func (c *Chart) NeedsDisplay() bool { return c.dirty }

// Draw renders the chart on `s`. The layout is recomputed
// and the providers are queried again.
func (c *Chart) Draw(s Surface) error {
	c.updateLayout()
	if err := render(c.center, c.radius, c.config, c.data, c.style, s); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

func (c *Chart) updateLayout() {
	c.center, c.radius = layout(c.bounds, c.config, c.fixedCenter)
}
