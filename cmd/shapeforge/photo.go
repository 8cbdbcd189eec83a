package main

import (
	"github.com/spf13/cobra"

	"github.com/shapeforge/shapeforge/internal/convert"
)

var (
	photoOutput     string
	photoResolution int
)

var photoCmd = &cobra.Command{
	Use:   "photo [image]",
	Short: "Convert a photo into a 3D relief model",
	Long: `Convert a JPEG or PNG photo into a height-field mesh. Pixel luminance
becomes surface height: bright areas are raised, dark areas recessed.`,
	Args: cobra.ExactArgs(1),
	RunE: runPhoto,
}

func init() {
	photoCmd.Flags().StringVarP(&photoOutput, "output", "o", "", "output file (.obj or .stl)")
	photoCmd.Flags().IntVarP(&photoResolution, "resolution", "r", 0, "mesh grid resolution (default from config)")
	rootCmd.AddCommand(photoCmd)
}

func runPhoto(cmd *cobra.Command, args []string) error {
	output := photoOutput
	if output == "" {
		output = convert.DefaultOutputPath(cfg)
	}
	return convert.Photo(cfg, args[0], output, photoResolution)
}
