package mesh

import "github.com/shapeforge/shapeforge/pkg/geometry"

// Span is an inclusive coordinate range sampled with evenly spaced points.
type Span struct {
	Min, Max float64
}

// UnitSpan covers [0,1], used by the photo pipeline.
var UnitSpan = Span{Min: 0, Max: 1}

// CenteredSpan covers [-0.5,0.5], used by the terrain pipeline.
var CenteredSpan = Span{Min: -0.5, Max: 0.5}

// Sample returns the i-th of n evenly spaced points over the span.
// The endpoints are included; with a single point the minimum is returned.
func (s Span) Sample(i, n int) float64 {
	if n < 2 {
		return s.Min
	}
	return s.Min + (s.Max-s.Min)*float64(i)/float64(n-1)
}

// Triangulate converts a square height grid into a triangle mesh.
//
// The vertex at grid position (i, j) is placed at (x_j, y_i, grid[i][j]),
// where x and y are sampled over the given spans, and gets the linear
// index i*R + j. Every grid cell is split into two triangles along the
// same diagonal:
//
//	A = (v(i,j),   v(i,j+1),   v(i+1,j))
//	B = (v(i,j+1), v(i+1,j+1), v(i+1,j))
//
// An R x R grid therefore yields R*R vertices and 2*(R-1)*(R-1) faces.
// Grids smaller than 2x2 produce a degenerate mesh with no faces.
func Triangulate(name string, grid [][]float64, xspan, yspan Span) *Mesh {
	r := len(grid)
	m := New(name)
	m.Vertices = make([]geometry.Vector3, 0, r*r)
	if r >= 2 {
		m.Faces = make([][3]int, 0, 2*(r-1)*(r-1))
	}

	for i := 0; i < r; i++ {
		y := yspan.Sample(i, r)
		for j := 0; j < r; j++ {
			m.AddVertex(geometry.Vector3{
				X: xspan.Sample(j, r),
				Y: y,
				Z: grid[i][j],
			})
		}
	}

	for i := 0; i < r-1; i++ {
		for j := 0; j < r-1; j++ {
			v0 := i*r + j
			v1 := i*r + j + 1
			v2 := (i+1)*r + j
			v3 := (i+1)*r + j + 1

			m.AddFace(v0, v1, v2)
			m.AddFace(v1, v3, v2)
		}
	}

	return m
}
