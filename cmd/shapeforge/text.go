package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shapeforge/shapeforge/internal/convert"
)

var (
	textOutput     string
	textResolution int
)

var textCmd = &cobra.Command{
	Use:   "text [prompt...]",
	Short: "Generate a 3D model from a text description",
	Long: `Generate a procedural mesh from a text prompt. Keywords select the
shape (sphere, cube, cylinder, cone); anything else produces a terrain
surface seeded by the prompt, so the same prompt always yields the
same model.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runText,
}

func init() {
	textCmd.Flags().StringVarP(&textOutput, "output", "o", "", "output file (.obj or .stl)")
	textCmd.Flags().IntVarP(&textResolution, "resolution", "r", 0, "mesh grid resolution (default from config)")
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	output := textOutput
	if output == "" {
		output = convert.DefaultOutputPath(cfg)
	}
	return convert.Text(cfg, strings.Join(args, " "), output, textResolution)
}
