package mesh

import (
	"math"
	"testing"
)

func constantGrid(r int, value float64) [][]float64 {
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, r)
		for j := range grid[i] {
			grid[i][j] = value
		}
	}
	return grid
}

func TestTriangulateCounts(t *testing.T) {
	for _, r := range []int{2, 3, 4, 16, 33} {
		m := Triangulate("grid", constantGrid(r, 0), UnitSpan, UnitSpan)

		if m.VertexCount() != r*r {
			t.Errorf("r=%d: expected %d vertices, got %d", r, r*r, m.VertexCount())
		}
		expectedFaces := 2 * (r - 1) * (r - 1)
		if m.FaceCount() != expectedFaces {
			t.Errorf("r=%d: expected %d faces, got %d", r, expectedFaces, m.FaceCount())
		}
		if err := m.Validate(); err != nil {
			t.Errorf("r=%d: invalid mesh: %v", r, err)
		}
	}
}

func TestTriangulateFaceIndices(t *testing.T) {
	// For a 2x2 grid the single cell must split along the fixed diagonal.
	m := Triangulate("grid", constantGrid(2, 0), UnitSpan, UnitSpan)

	if m.FaceCount() != 2 {
		t.Fatalf("expected 2 faces, got %d", m.FaceCount())
	}
	if m.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("triangle A: expected (0,1,2), got %v", m.Faces[0])
	}
	if m.Faces[1] != [3]int{1, 3, 2} {
		t.Errorf("triangle B: expected (1,3,2), got %v", m.Faces[1])
	}
}

func TestTriangulateVertexLayout(t *testing.T) {
	grid := [][]float64{
		{0.0, 0.1, 0.2},
		{0.3, 0.4, 0.5},
		{0.6, 0.7, 0.8},
	}
	m := Triangulate("grid", grid, UnitSpan, UnitSpan)

	// Vertex (i, j) lives at linear index i*R+j with coordinates
	// (x_j, y_i, grid[i][j]).
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := m.Vertices[i*3+j]
			if math.Abs(v.X-float64(j)/2) > 1e-12 {
				t.Errorf("vertex (%d,%d): expected x=%v, got %v", i, j, float64(j)/2, v.X)
			}
			if math.Abs(v.Y-float64(i)/2) > 1e-12 {
				t.Errorf("vertex (%d,%d): expected y=%v, got %v", i, j, float64(i)/2, v.Y)
			}
			if v.Z != grid[i][j] {
				t.Errorf("vertex (%d,%d): expected z=%v, got %v", i, j, grid[i][j], v.Z)
			}
		}
	}
}

func TestTriangulateConstantGridIsFlat(t *testing.T) {
	m := Triangulate("grid", constantGrid(8, 0.25), CenteredSpan, CenteredSpan)

	for i, v := range m.Vertices {
		if v.Z != 0.25 {
			t.Fatalf("vertex %d: expected z=0.25, got %v", i, v.Z)
		}
	}
}

func TestTriangulateDegenerateGrid(t *testing.T) {
	m := Triangulate("grid", constantGrid(1, 0), UnitSpan, UnitSpan)
	if m.VertexCount() != 1 {
		t.Errorf("expected 1 vertex, got %d", m.VertexCount())
	}
	if m.FaceCount() != 0 {
		t.Errorf("expected 0 faces, got %d", m.FaceCount())
	}

	m = Triangulate("grid", nil, UnitSpan, UnitSpan)
	if m.VertexCount() != 0 || m.FaceCount() != 0 {
		t.Errorf("expected empty mesh, got %d vertices %d faces", m.VertexCount(), m.FaceCount())
	}
}

func TestSpanSample(t *testing.T) {
	if got := CenteredSpan.Sample(0, 5); got != -0.5 {
		t.Errorf("expected -0.5, got %v", got)
	}
	if got := CenteredSpan.Sample(4, 5); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
	if got := UnitSpan.Sample(0, 1); got != 0 {
		t.Errorf("single sample: expected 0, got %v", got)
	}
}
