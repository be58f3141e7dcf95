// Package config handles configuration loading for the okspider command.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/okspider/spider"
	"github.com/benoitkugler/okspider/spiderdoc"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Chart    ChartConfig    `mapstructure:"chart"    yaml:"chart"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
	Document DocumentConfig `mapstructure:"document" yaml:"document"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// ChartConfig mirrors spider.Configuration.
type ChartConfig struct {
	Radius               float64 `mapstructure:"radius"                 yaml:"radius"`
	MinValue             float64 `mapstructure:"min_value"              yaml:"min_value"`
	MaxValue             float64 `mapstructure:"max_value"              yaml:"max_value"`
	BorderWidth          float64 `mapstructure:"border_width"           yaml:"border_width"`
	LineWidth            float64 `mapstructure:"line_width"             yaml:"line_width"`
	ShowPoint            bool    `mapstructure:"show_point"             yaml:"show_point"`
	ShowBorder           bool    `mapstructure:"show_border"            yaml:"show_border"`
	ShowBackgroundLine   bool    `mapstructure:"show_background_line"   yaml:"show_background_line"`
	ShowBackgroundBorder bool    `mapstructure:"show_background_border" yaml:"show_background_border"`
	FillArea             bool    `mapstructure:"fill_area"              yaml:"fill_area"`
	Clockwise            bool    `mapstructure:"clockwise"              yaml:"clockwise"`
	AutoCenterPoint      bool    `mapstructure:"auto_center_point"      yaml:"auto_center_point"`
	CenterOffset         float64 `mapstructure:"center_offset"          yaml:"center_offset"`
}

// OutputConfig holds the rendering target settings.
type OutputConfig struct {
	Format     string `mapstructure:"format"     yaml:"format"` // "png", "gg", "pdf" or "svg"
	Width      int    `mapstructure:"width"      yaml:"width"`
	Height     int    `mapstructure:"height"     yaml:"height"`
	Path       string `mapstructure:"path"       yaml:"path"`       // empty for the standard output
	Background string `mapstructure:"background" yaml:"background"` // raster formats only
}

// DocumentConfig holds the chart document reading settings.
type DocumentConfig struct {
	ErrorMode string `mapstructure:"error_mode" yaml:"error_mode"` // "ignore", "warn" or "strict"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Formats lists the supported output formats.
var Formats = []string{"png", "gg", "pdf", "svg"}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/okspider.yaml
//  2. ~/.okspider/okspider.yaml
//  3. /etc/okspider/okspider.yaml
//
// Environment variables override config file values.
// Format: OKSPIDER_<SECTION>_<KEY>, e.g., OKSPIDER_CHART_RADIUS
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("okspider")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".okspider"))
	v.AddConfigPath("/etc/okspider")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("OKSPIDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults mirrors spider.DefaultConfiguration for the chart section.
func setDefaults(v *viper.Viper) {
	d := spider.DefaultConfiguration()
	v.SetDefault("chart.radius", d.Radius)
	v.SetDefault("chart.min_value", d.MinValue)
	v.SetDefault("chart.max_value", d.MaxValue)
	v.SetDefault("chart.border_width", d.BorderWidth)
	v.SetDefault("chart.line_width", d.LineWidth)
	v.SetDefault("chart.show_point", d.ShowPoint)
	v.SetDefault("chart.show_border", d.ShowBorder)
	v.SetDefault("chart.show_background_line", d.ShowBackgroundLine)
	v.SetDefault("chart.show_background_border", d.ShowBackgroundBorder)
	v.SetDefault("chart.fill_area", d.FillArea)
	v.SetDefault("chart.clockwise", d.Clockwise)
	v.SetDefault("chart.auto_center_point", d.AutoCenterPoint)
	v.SetDefault("chart.center_offset", d.CenterOffset)

	v.SetDefault("output.format", "png")
	v.SetDefault("output.width", 400)
	v.SetDefault("output.height", 400)
	v.SetDefault("output.path", "")
	v.SetDefault("output.background", "white")

	v.SetDefault("document.error_mode", "warn")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the values which can't be checked when used.
func (cfg *Config) Validate() error {
	if err := cfg.Chart.Configuration().Validate(); err != nil {
		return err
	}
	if !isFormat(cfg.Output.Format) {
		return fmt.Errorf("invalid output format %q (expected one of %s)", cfg.Output.Format, strings.Join(Formats, ", "))
	}
	if cfg.Output.Width <= 0 || cfg.Output.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", cfg.Output.Width, cfg.Output.Height)
	}
	if _, err := cfg.Output.BackgroundColor(); err != nil {
		return err
	}
	if _, err := cfg.Document.Mode(); err != nil {
		return err
	}
	if _, err := cfg.Logging.level(); err != nil {
		return err
	}
	return nil
}

func isFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Configuration converts to the chart configuration.
func (c ChartConfig) Configuration() spider.Configuration {
	return spider.NewConfiguration(c.Radius, c.MinValue, c.MaxValue, c.BorderWidth, c.LineWidth,
		c.ShowPoint, c.ShowBorder, c.ShowBackgroundLine, c.ShowBackgroundBorder,
		c.FillArea, c.Clockwise, c.AutoCenterPoint, c.CenterOffset)
}

// Bounds returns the chart bounds filling the output.
func (o OutputConfig) Bounds() spider.Rect {
	return spider.Rect{W: float64(o.Width), H: float64(o.Height)}
}

// BackgroundColor parses the background color, which is nil
// for an empty value.
func (o OutputConfig) BackgroundColor() (color.Color, error) {
	if o.Background == "" {
		return nil, nil
	}
	c, err := spiderdoc.ParseColor(o.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid output background: %w", err)
	}
	return c, nil
}

// Mode parses the document error mode.
func (d DocumentConfig) Mode() (spiderdoc.ErrorMode, error) {
	switch strings.ToLower(d.ErrorMode) {
	case "ignore":
		return spiderdoc.IgnoreErrorMode, nil
	case "warn", "":
		return spiderdoc.WarnErrorMode, nil
	case "strict":
		return spiderdoc.StrictErrorMode, nil
	default:
		return 0, fmt.Errorf("invalid document error mode %q", d.ErrorMode)
	}
}

func (l LoggingConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid logging level %q: %w", l.Level, err)
	}
	return level, nil
}

// NewLogger returns a logger writing to `w`, with
// the configured level and format.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(l.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid logging format %q", l.Format)
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
