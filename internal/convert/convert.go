// Package convert wires the extraction, generation and export stages
// into the two one-shot conversion pipelines. Each call either writes
// a complete mesh file or returns an error; nothing is retried and no
// partial output survives a failure.
package convert

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/shapeforge/shapeforge/internal/config"
	"github.com/shapeforge/shapeforge/internal/fileutil"
	"github.com/shapeforge/shapeforge/internal/logger"
	"github.com/shapeforge/shapeforge/pkg/export"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// resolveResolution applies the default for an unset resolution,
// rejects degenerate values and clamps to the soft cap.
func resolveResolution(requested, fallback, max int) (int, error) {
	res := requested
	if res == 0 {
		res = fallback
	}
	if res < 2 {
		return 0, fmt.Errorf("resolution must be at least 2, got %d", res)
	}
	if max > 0 && res > max {
		logger.Log.Warn("resolution clamped to configured maximum",
			zap.Int("requested", res), zap.Int("max", max))
		res = max
	}
	return res, nil
}

// writeMesh ensures the output directory exists and exports the mesh.
func writeMesh(m *mesh.Mesh, outputPath string) error {
	if err := fileutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return err
	}
	if err := export.Export(m, outputPath); err != nil {
		return err
	}
	logger.Log.Info("mesh written",
		zap.String("path", outputPath),
		zap.String("format", export.Format(outputPath)),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()))
	return nil
}

// DefaultOutputPath builds the output path used when the caller does
// not pass one explicitly.
func DefaultOutputPath(cfg *config.Config) string {
	return filepath.Join(cfg.Output.DefaultDirectory, "output."+cfg.Output.DefaultFormat)
}
