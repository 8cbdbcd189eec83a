package depth

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// grayscale conversion may round channel values by one step
const eps = 2.0 / 255.0

func grayImage(w, h int, value uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: value})
		}
	}
	return img
}

func TestFromImageConstant(t *testing.T) {
	grid := FromImage(grayImage(64, 64, 128), 16, Options{})

	if len(grid) != 16 {
		t.Fatalf("expected 16 rows, got %d", len(grid))
	}
	expected := 128.0 / 255.0
	for i, row := range grid {
		if len(row) != 16 {
			t.Fatalf("row %d: expected 16 columns, got %d", i, len(row))
		}
		for j, v := range row {
			if math.Abs(v-expected) > eps {
				t.Fatalf("cell (%d,%d): expected %v, got %v", i, j, expected, v)
			}
		}
	}
}

func TestFromImageNearestSampling(t *testing.T) {
	// A 3x3 image sampled at resolution 3 must reproduce the exact
	// pixel values: round(i*(H-1)/(R-1)) = i.
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	values := [3][3]uint8{
		{0, 51, 102},
		{119, 153, 170},
		{204, 221, 255},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetGray(x, y, color.Gray{Y: values[y][x]})
		}
	}

	grid := FromImage(img, 3, Options{})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := float64(values[i][j]) / 255.0
			if math.Abs(grid[i][j]-expected) > eps {
				t.Errorf("cell (%d,%d): expected %v, got %v", i, j, expected, grid[i][j])
			}
		}
	}
}

func TestFromImageGradientMonotonic(t *testing.T) {
	// A horizontal gradient must stay monotonically non-decreasing
	// along every grid row.
	img := image.NewGray(image.Rect(0, 0, 128, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 128; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(2 * x)})
		}
	}

	grid := FromImage(img, 16, Options{})
	for i, row := range grid {
		for j := 1; j < len(row); j++ {
			if row[j] < row[j-1]-eps {
				t.Fatalf("row %d not monotonic at column %d: %v < %v", i, j, row[j], row[j-1])
			}
		}
	}
}

func TestFromImageValueRange(t *testing.T) {
	grid := FromImage(grayImage(10, 10, 255), 4, Options{})
	for _, row := range grid {
		for _, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("value out of range: %v", v)
			}
		}
	}
	if math.Abs(grid[0][0]-1.0) > eps {
		t.Errorf("white pixel should map to 1.0, got %v", grid[0][0])
	}
}

func TestClampSize(t *testing.T) {
	img := clampSize(grayImage(2048, 1024, 0))
	b := img.Bounds()
	if b.Dx() != 1024 || b.Dy() != 512 {
		t.Errorf("expected 1024x512 after clamp, got %dx%d", b.Dx(), b.Dy())
	}

	small := clampSize(grayImage(100, 50, 0))
	if small.Bounds().Dx() != 100 {
		t.Error("small images must pass through untouched")
	}
}
