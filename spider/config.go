package spider

import "math"

// Configuration holds the display parameters of a chart.
// It is a value type: a chart reads it fresh on each render,
// and replacing it marks the chart for a redraw.
type Configuration struct {
	Radius             float64 // outer radius, clamped to half the smaller view dimension
	MinValue, MaxValue float64 // value range mapped to [0, Radius]

	BorderWidth float64 // width of the band and section borders
	LineWidth   float64 // width of the radial axis lines

	ShowPoint            bool // marks each data vertex with a dot
	ShowBorder           bool // strokes the data sections (and the bands, see ShowBackgroundBorder)
	ShowBackgroundLine   bool // draws the radial axis lines
	ShowBackgroundBorder bool // allows stroking the step bands when ShowBorder is set
	FillArea             bool // fills the data sections
	Clockwise            bool // direction of increasing row index
	AutoCenterPoint      bool // centers the chart in its bounds

	// CenterOffset is the margin between the bounds origin and
	// the chart disc, used when AutoCenterPoint is false
	// and no explicit center is set.
	CenterOffset float64
}

// DefaultConfiguration returns the configuration used
// when none is provided.
func DefaultConfiguration() Configuration {
	return Configuration{
		Radius:               80,
		MinValue:             0,
		MaxValue:             5,
		BorderWidth:          4,
		LineWidth:            1,
		ShowPoint:            false,
		ShowBorder:           false,
		ShowBackgroundLine:   true,
		ShowBackgroundBorder: true,
		FillArea:             true,
		Clockwise:            false,
		AutoCenterPoint:      true,
		CenterOffset:         10,
	}
}

// NewConfiguration returns a configuration with every field set.
func NewConfiguration(radius, minValue, maxValue, borderWidth, lineWidth float64,
	showPoint, showBorder, showBackgroundLine, showBackgroundBorder, fillArea, clockwise, autoCenterPoint bool,
	centerOffset float64,
) Configuration {
	return Configuration{
		Radius:               radius,
		MinValue:             minValue,
		MaxValue:             maxValue,
		BorderWidth:          borderWidth,
		LineWidth:            lineWidth,
		ShowPoint:            showPoint,
		ShowBorder:           showBorder,
		ShowBackgroundLine:   showBackgroundLine,
		ShowBackgroundBorder: showBackgroundBorder,
		FillArea:             fillArea,
		Clockwise:            clockwise,
		AutoCenterPoint:      autoCenterPoint,
		CenterOffset:         centerOffset,
	}
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Validate returns a *ConfigurationError if the configuration
// can't produce a well defined geometry.
func (c Configuration) Validate() error {
	switch {
	case !(c.Radius > 0) || !isFinite(c.Radius):
		return &ConfigurationError{Field: "Radius", Reason: "must be positive"}
	case !isFinite(c.MinValue) || !isFinite(c.MaxValue):
		return &ConfigurationError{Field: "MinValue/MaxValue", Reason: "must be finite"}
	case !(c.MaxValue > c.MinValue):
		return &ConfigurationError{Field: "MaxValue", Reason: "must be greater than MinValue"}
	case !(c.BorderWidth > 0):
		return &ConfigurationError{Field: "BorderWidth", Reason: "must be positive"}
	case !(c.LineWidth > 0):
		return &ConfigurationError{Field: "LineWidth", Reason: "must be positive"}
	case !isFinite(c.CenterOffset):
		return &ConfigurationError{Field: "CenterOffset", Reason: "must be finite"}
	}
	return nil
}

func (c Configuration) scale(radius float64) scale {
	return scale{min: c.MinValue, max: c.MaxValue, radius: radius}
}
