// Package config holds the run parameters of the coastline pipeline.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-contour/geo/boundary"
	"github.com/cwbudde/algo-contour/measure/harmonics"
)

// DefaultTerms is the number of Fourier terms used for reconstruction.
const DefaultTerms = 50

// Config holds every tunable of a run. The zero values of Output, Timeout
// and NoWindow reproduce the fixed behaviour of a plain invocation.
type Config struct {
	// URL of the GeoJSON boundary document.
	URL string `yaml:"url"`
	// Terms is the reconstruction term count N (DC plus N-1 harmonics).
	Terms int `yaml:"terms"`
	// ReportTerms is how many coefficients are printed per axis.
	ReportTerms int `yaml:"report_terms"`
	// FallbackPoints is the sample count of the synthetic fallback curve.
	FallbackPoints int `yaml:"fallback_points"`
	// Timeout bounds the fetch. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`

	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig configures rendering and display of the comparison figure.
type PlotConfig struct {
	// Output is an optional file path; the format follows its extension.
	Output string `yaml:"output"`
	// WidthInches and HeightInches size the figure.
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	// NoWindow skips the interactive viewer.
	NoWindow bool `yaml:"no_window"`
}

// Default returns the configuration matching the original fixed constants.
func Default() Config {
	return Config{
		URL:            boundary.DefaultURL,
		Terms:          DefaultTerms,
		ReportTerms:    harmonics.DefaultReportTerms,
		FallbackPoints: boundary.DefaultSyntheticPoints,
		Plot: PlotConfig{
			WidthInches:  12,
			HeightInches: 8,
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if c.Terms < 1 {
		return fmt.Errorf("terms must be >= 1: %d", c.Terms)
	}
	if c.ReportTerms < 1 {
		return fmt.Errorf("report_terms must be >= 1: %d", c.ReportTerms)
	}
	if c.FallbackPoints < 1 {
		return fmt.Errorf("fallback_points must be >= 1: %d", c.FallbackPoints)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0: %s", c.Timeout)
	}
	if c.Plot.WidthInches <= 0 || c.Plot.HeightInches <= 0 {
		return fmt.Errorf("plot size must be > 0: %gx%g", c.Plot.WidthInches, c.Plot.HeightInches)
	}
	return nil
}
