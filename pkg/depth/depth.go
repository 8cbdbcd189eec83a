// Package depth turns a photo into a normalized height grid. The
// "depth" is simply perceptual luminance: bright pixels become high
// points. No learned estimation is involved.
package depth

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// maxImageSide bounds the working image size. Larger inputs are
// downscaled proportionally before sampling; this is a performance
// limit, not a correctness requirement.
const maxImageSide = 1024

// Options control the extraction.
type Options struct {
	// Smoothing applies a Gaussian blur to the luminance image before
	// sampling. Off by default.
	Smoothing bool
	// SmoothingFactor in [0,1] maps to a 0..4px blur radius.
	SmoothingFactor float64
}

// FromFile decodes an image file and extracts its height grid.
func FromFile(path string, resolution int, opts Options) ([][]float64, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img, resolution, opts), nil
}

// FromImage maps an image to a resolution x resolution grid of
// luminance values in [0,1].
//
// The image is converted to grayscale and sampled with nearest-index
// resampling: output cell (i,j) reads source pixel
// (round(j*(W-1)/(R-1)), round(i*(H-1)/(R-1))). Deliberately not an
// interpolating resample; the grid reproduces exact pixel values.
func FromImage(img image.Image, resolution int, opts Options) [][]float64 {
	img = clampSize(img)
	if opts.Smoothing && opts.SmoothingFactor > 0 {
		img = blur.Gaussian(img, opts.SmoothingFactor*4)
	}
	gray := effect.Grayscale(img)

	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()

	grid := make([][]float64, resolution)
	for i := range grid {
		grid[i] = make([]float64, resolution)
		sy := nearestIndex(i, resolution, h)
		for j := range grid[i] {
			sx := nearestIndex(j, resolution, w)
			px := gray.RGBAAt(b.Min.X+sx, b.Min.Y+sy)
			grid[i][j] = float64(px.R) / 255.0
		}
	}
	return grid
}

// clampSize downscales the image proportionally when its longer side
// exceeds maxImageSide.
func clampSize(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > w {
		longer = h
	}
	if longer <= maxImageSide {
		return img
	}

	scale := float64(maxImageSide) / float64(longer)
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return transform.Resize(img, nw, nh, transform.Linear)
}

// nearestIndex maps output index i of n samples onto a source axis of
// the given length.
func nearestIndex(i, n, length int) int {
	if n < 2 || length < 2 {
		return 0
	}
	idx := int(math.Round(float64(i) * float64(length-1) / float64(n-1)))
	if idx > length-1 {
		idx = length - 1
	}
	return idx
}
