package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shapeforge/shapeforge/internal/convert"
	"github.com/shapeforge/shapeforge/internal/logger"
	"github.com/shapeforge/shapeforge/pkg/watcher"
)

var (
	watchOutput     string
	watchResolution int
)

var watchCmd = &cobra.Command{
	Use:   "watch [image]",
	Short: "Reconvert a photo whenever it changes",
	Long: `Watch a photo and regenerate its 3D model every time the file is
saved. Useful while editing an image and inspecting the result.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output file (.obj or .stl)")
	watchCmd.Flags().IntVarP(&watchResolution, "resolution", "r", 0, "mesh grid resolution (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := watchOutput
	if output == "" {
		output = convert.DefaultOutputPath(cfg)
	}

	// Convert once up front so the output exists before the first edit
	if err := convert.Photo(cfg, input, output, watchResolution); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{input}, func(path string) {
		if err := convert.Photo(cfg, path, output, watchResolution); err != nil {
			logger.Log.Error("reconversion failed", zap.String("input", path), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	logger.Log.Info("watching for changes", zap.String("input", input), zap.String("output", output))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Log.Info("stopping watcher")
	return nil
}
