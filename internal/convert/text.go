package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shapeforge/shapeforge/internal/config"
	"github.com/shapeforge/shapeforge/internal/logger"
	"github.com/shapeforge/shapeforge/pkg/shape"
)

// Text converts a prompt into a procedural mesh and writes it to
// outputPath. A resolution of 0 selects the configured default.
func Text(cfg *config.Config, prompt, outputPath string, resolution int) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt must not be empty")
	}

	res, err := resolveResolution(resolution, cfg.Text.DefaultResolution, cfg.Text.MaxResolution)
	if err != nil {
		return err
	}

	if cfg.Text.ModelType == "neural" {
		logger.Log.Warn("neural text-to-3d is not available, using procedural generation")
	}

	kind := shape.Select(prompt)
	logger.Log.Info("processing text prompt",
		zap.String("prompt", prompt),
		zap.Stringer("shape", kind),
		zap.Int("resolution", res),
		zap.Uint32("seed", shape.Seed(prompt)))

	m := shape.FromPrompt(prompt, shape.Options{
		Resolution:     res,
		TerrainOctaves: cfg.Text.TerrainOctaves(),
	})
	return writeMesh(m, outputPath)
}
