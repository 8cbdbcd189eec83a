package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapeforge/shapeforge/internal/config"
	"github.com/shapeforge/shapeforge/internal/logger"
	"github.com/shapeforge/shapeforge/version"
)

var (
	cfg      *config.Config
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "shapeforge",
	Short: "Convert photos and text prompts into 3D models",
	Long: `shapeforge converts 2D photos and text descriptions into triangulated
3D meshes. Photos become height-field reliefs from their luminance,
text prompts become procedural shapes. Models are exported as OBJ or
binary STL files.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		return logger.Init(level, cfg.Logging.LogFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
