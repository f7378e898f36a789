// Package config defines the settings of the foil command and how they are
// loaded.
//
// Settings are layered, lowest precedence first: built-in defaults, an
// optional YAML file, environment variables prefixed AIRFOIL_.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/render"
	"gonum.org/v1/plot/vg"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config contains the settings of the foil command.
type Config struct {
	// Points is the number of stations for synthesized sections.
	Points int `koanf:"points"`

	// Scale is a scale factor or a target chord, depending on ScaleMode.
	Scale float64 `koanf:"scale"`

	// ScaleMode is "direct" or "chord".
	ScaleMode string `koanf:"scale_mode"`

	// RepairDegree is the polynomial degree for repairing sparse data, 0 disables repair.
	RepairDegree int `koanf:"repair_degree"`

	// RepairDensity is the number of resampled points per surface.
	RepairDensity int `koanf:"repair_density"`

	// PlotWidth and PlotHeight are the image size in inches.
	PlotWidth  float64 `koanf:"plot_width"`
	PlotHeight float64 `koanf:"plot_height"`

	// PlotFormat is the image format: png, svg, pdf, jpg, eps or tif.
	PlotFormat string `koanf:"plot_format"`

	// OutputDir receives generated coordinate files and plots.
	OutputDir string `koanf:"output_dir"`

	// TraceLevel is one of Error, Info, Debug.
	TraceLevel string `koanf:"trace_level"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Points:        200,
		Scale:         1.0,
		ScaleMode:     "direct",
		RepairDegree:  0,
		RepairDensity: 100,
		PlotWidth:     8,
		PlotHeight:    4,
		PlotFormat:    "png",
		OutputDir:     ".",
		TraceLevel:    "Error",
	}
}

var plotFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true,
	"eps": true, "tif": true, "tiff": true,
}

// Validate checks every setting and reports the first offending key.
func (c *Config) Validate() error {
	switch {
	case c.Points < 2:
		return fmt.Errorf("%w: points = %d, need at least 2", ErrInvalidConfig, c.Points)
	case !airfoil.Finite(c.Scale) || c.Scale <= 0:
		return fmt.Errorf("%w: scale = %g, must be > 0", ErrInvalidConfig, c.Scale)
	case c.RepairDegree < 0:
		return fmt.Errorf("%w: repair_degree = %d, must not be negative", ErrInvalidConfig, c.RepairDegree)
	case c.RepairDensity < 2:
		return fmt.Errorf("%w: repair_density = %d, need at least 2", ErrInvalidConfig, c.RepairDensity)
	case c.PlotWidth <= 0 || c.PlotHeight <= 0:
		return fmt.Errorf("%w: plot size %g × %g", ErrInvalidConfig, c.PlotWidth, c.PlotHeight)
	case !plotFormats[strings.ToLower(c.PlotFormat)]:
		return fmt.Errorf("%w: plot_format = %q", ErrInvalidConfig, c.PlotFormat)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	if _, err := airfoil.ParseScaleMode(c.ScaleMode); err != nil {
		return fmt.Errorf("%w: scale_mode: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.TraceLevel) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("%w: trace_level = %q", ErrInvalidConfig, c.TraceLevel)
	}
	return nil
}

// ScaleSpec returns the configured scale operation.
func (c *Config) ScaleSpec() (airfoil.Scale, error) {
	mode, err := airfoil.ParseScaleMode(c.ScaleMode)
	if err != nil {
		return airfoil.Unit, err
	}
	return airfoil.Scale{Mode: mode, Value: c.Scale}, nil
}

// Renderer returns a plot renderer for the configured image size.
func (c *Config) Renderer() render.Renderer {
	return render.Renderer{
		Width:  vg.Length(c.PlotWidth) * vg.Inch,
		Height: vg.Length(c.PlotHeight) * vg.Inch,
	}
}
