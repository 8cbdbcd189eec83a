package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Photo.DefaultResolution != 128 {
		t.Errorf("expected photo resolution 128, got %d", cfg.Photo.DefaultResolution)
	}
	if cfg.Photo.MaxResolution != 512 {
		t.Errorf("expected max resolution 512, got %d", cfg.Photo.MaxResolution)
	}
	if cfg.Photo.DepthMethod != "simple" {
		t.Errorf("expected depth method 'simple', got %s", cfg.Photo.DepthMethod)
	}
	if cfg.Photo.Smoothing {
		t.Error("expected smoothing off by default")
	}
	if cfg.Text.Complexity != "medium" {
		t.Errorf("expected complexity 'medium', got %s", cfg.Text.Complexity)
	}
	if cfg.Output.DefaultFormat != "obj" {
		t.Errorf("expected format 'obj', got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Output.DefaultDirectory != "models" {
		t.Errorf("expected directory 'models', got %s", cfg.Output.DefaultDirectory)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestTerrainOctaves(t *testing.T) {
	tests := []struct {
		complexity string
		octaves    int
	}{
		{"low", 4},
		{"medium", 8},
		{"high", 16},
	}
	for _, tt := range tests {
		c := TextConfig{Complexity: tt.complexity}
		if got := c.TerrainOctaves(); got != tt.octaves {
			t.Errorf("complexity %q: expected %d octaves, got %d", tt.complexity, tt.octaves, got)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapeforge.yaml")
	content := `photo:
  default_resolution: 64
  smoothing: true
text:
  complexity: high
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Overridden fields
	if cfg.Photo.DefaultResolution != 64 {
		t.Errorf("expected resolution 64, got %d", cfg.Photo.DefaultResolution)
	}
	if !cfg.Photo.Smoothing {
		t.Error("expected smoothing enabled")
	}
	if cfg.Text.Complexity != "high" {
		t.Errorf("expected complexity 'high', got %s", cfg.Text.Complexity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}

	// Untouched fields keep their defaults
	if cfg.Photo.MaxResolution != 512 {
		t.Errorf("expected max resolution default 512, got %d", cfg.Photo.MaxResolution)
	}
	if cfg.Output.DefaultFormat != "obj" {
		t.Errorf("expected default format 'obj', got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("text:\n  complexity: extreme\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown complexity")
	}
}

func TestValidateResolutionBounds(t *testing.T) {
	cfg := Default()
	cfg.Photo.DefaultResolution = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for resolution below 2")
	}
}
