// Package config handles application configuration loading.
package config

import "fmt"

// Config holds all converter settings. The shape is fixed: merging a
// user file over the defaults is a field-by-field override, never a
// free-form dictionary merge.
type Config struct {
	Photo   PhotoConfig   `yaml:"photo"`
	Text    TextConfig    `yaml:"text"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// PhotoConfig holds photo conversion settings.
type PhotoConfig struct {
	DefaultResolution int `yaml:"default_resolution"`
	MaxResolution     int `yaml:"max_resolution"`
	// DepthMethod selects the depth estimation path. Only "simple"
	// (luminance) is implemented; "neural" is accepted and falls back
	// with a warning.
	DepthMethod     string  `yaml:"depth_method"`
	Smoothing       bool    `yaml:"smoothing"`
	SmoothingFactor float64 `yaml:"smoothing_factor"`
}

// TextConfig holds text conversion settings.
type TextConfig struct {
	DefaultResolution int `yaml:"default_resolution"`
	MaxResolution     int `yaml:"max_resolution"`
	// ModelType selects the generation path. Only "procedural" is
	// implemented; "neural" is accepted and falls back with a warning.
	ModelType string `yaml:"model_type"`
	// Complexity selects the terrain octave count: low, medium, high.
	Complexity string `yaml:"complexity"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	DefaultFormat    string `yaml:"default_format"` // obj or stl
	DefaultDirectory string `yaml:"default_directory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented default values.
func Default() *Config {
	return &Config{
		Photo: PhotoConfig{
			DefaultResolution: 128,
			MaxResolution:     512,
			DepthMethod:       "simple",
			Smoothing:         false,
			SmoothingFactor:   0.5,
		},
		Text: TextConfig{
			DefaultResolution: 128,
			MaxResolution:     512,
			ModelType:         "procedural",
			Complexity:        "medium",
		},
		Output: OutputConfig{
			DefaultFormat:    "obj",
			DefaultDirectory: "models",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// TerrainOctaves maps the complexity setting to the number of terrain
// octaves. "medium" is the canonical 8-octave synthesis.
func (c TextConfig) TerrainOctaves() int {
	switch c.Complexity {
	case "low":
		return 4
	case "high":
		return 16
	default:
		return 8
	}
}

// Validate checks mode strings and numeric bounds.
func (c *Config) Validate() error {
	if err := validateChoice("photo.depth_method", c.Photo.DepthMethod, "simple", "neural"); err != nil {
		return err
	}
	if err := validateChoice("text.model_type", c.Text.ModelType, "procedural", "neural"); err != nil {
		return err
	}
	if err := validateChoice("text.complexity", c.Text.Complexity, "low", "medium", "high"); err != nil {
		return err
	}
	if err := validateChoice("output.default_format", c.Output.DefaultFormat, "obj", "stl"); err != nil {
		return err
	}
	if c.Photo.DefaultResolution < 2 || c.Text.DefaultResolution < 2 {
		return fmt.Errorf("default resolution must be at least 2")
	}
	if c.Photo.SmoothingFactor < 0 || c.Photo.SmoothingFactor > 1 {
		return fmt.Errorf("photo.smoothing_factor must be in [0,1], got %v", c.Photo.SmoothingFactor)
	}
	return nil
}

func validateChoice(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unknown value %q (allowed: %v)", field, value, allowed)
}
