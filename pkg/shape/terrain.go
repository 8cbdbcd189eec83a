package shape

import (
	"math"
	"math/rand"

	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Terrain synthesizes an undulating height field from prompt-derived
// parameters and triangulates it over [-0.5,0.5]^2. Octave k (0-based)
// uses amplitude params[k] and frequency 1+2k; its contribution at a
// grid point is a*sin(f*x)*cos(f*y)/f. The summed heights are min-max
// normalized to [0,0.5].
func Terrain(prompt string, resolution, octaves int, rng *rand.Rand) *mesh.Mesh {
	params := Params(prompt)
	grid := terrainHeights(params, resolution, octaves)
	normalizeHeights(grid)
	return mesh.Triangulate("terrain", grid, mesh.CenteredSpan, mesh.CenteredSpan)
}

func terrainHeights(params [16]float64, resolution, octaves int) [][]float64 {
	if octaves < 1 {
		octaves = 1
	}
	if octaves > len(params) {
		octaves = len(params)
	}

	grid := make([][]float64, resolution)
	for i := range grid {
		grid[i] = make([]float64, resolution)
		y := mesh.CenteredSpan.Sample(i, resolution)
		for j := range grid[i] {
			x := mesh.CenteredSpan.Sample(j, resolution)
			z := 0.0
			for k := 0; k < octaves; k++ {
				freq := float64(1 + 2*k)
				z += params[k] * math.Sin(freq*x) * math.Cos(freq*y) / freq
			}
			grid[i][j] = z
		}
	}
	return grid
}

// normalizeHeights rescales the grid to [0,0.5] in place. A flat field
// has no range to scale by and collapses to all zeros instead of
// dividing by zero.
func normalizeHeights(grid [][]float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, row := range grid {
		for _, z := range row {
			min = math.Min(min, z)
			max = math.Max(max, z)
		}
	}

	if !(max > min) {
		for _, row := range grid {
			for j := range row {
				row[j] = 0
			}
		}
		return
	}

	scale := 0.5 / (max - min)
	for _, row := range grid {
		for j := range row {
			row[j] = (row[j] - min) * scale
		}
	}
}
