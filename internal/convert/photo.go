package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shapeforge/shapeforge/internal/config"
	"github.com/shapeforge/shapeforge/internal/fileutil"
	"github.com/shapeforge/shapeforge/internal/logger"
	"github.com/shapeforge/shapeforge/pkg/depth"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// Photo converts an image file into a height-field mesh and writes it
// to outputPath. A resolution of 0 selects the configured default.
func Photo(cfg *config.Config, inputPath, outputPath string, resolution int) error {
	if err := fileutil.ValidateFile(inputPath, imageExtensions); err != nil {
		return fmt.Errorf("invalid input image: %w", err)
	}

	res, err := resolveResolution(resolution, cfg.Photo.DefaultResolution, cfg.Photo.MaxResolution)
	if err != nil {
		return err
	}

	if cfg.Photo.DepthMethod == "neural" {
		logger.Log.Warn("neural depth estimation is not available, using simple luminance depth")
	}

	logger.Log.Info("processing image",
		zap.String("input", inputPath),
		zap.Int("resolution", res))

	grid, err := depth.FromFile(inputPath, res, depth.Options{
		Smoothing:       cfg.Photo.Smoothing,
		SmoothingFactor: cfg.Photo.SmoothingFactor,
	})
	if err != nil {
		return fmt.Errorf("depth extraction failed: %w", err)
	}

	m := mesh.Triangulate("photo", grid, mesh.UnitSpan, mesh.UnitSpan)
	return writeMesh(m, outputPath)
}
