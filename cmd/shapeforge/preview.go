package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapeforge/shapeforge/pkg/export"
	"github.com/shapeforge/shapeforge/pkg/viewer"
)

var (
	previewOutput string
	previewWidth  int
	previewHeight int
	previewFilled bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a mesh file to a PNG image",
	Long:  "Render an OBJ or STL file offscreen and save the result as a PNG, without opening a window.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.png", "output PNG file")
	previewCmd.Flags().IntVar(&previewWidth, "width", 800, "image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 600, "image height in pixels")
	previewCmd.Flags().BoolVar(&previewFilled, "filled", false, "flat-shaded surfaces instead of wireframe")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	m, err := export.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load mesh: %w", err)
	}

	cam := viewer.NewCamera(m.BoundingBox())
	img := viewer.RenderImage(m, cam, viewer.Options{
		Width:  previewWidth,
		Height: previewHeight,
		Filled: previewFilled,
	})

	f, err := os.Create(previewOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", previewOutput, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	fmt.Printf("Preview written to %s\n", previewOutput)
	return nil
}
