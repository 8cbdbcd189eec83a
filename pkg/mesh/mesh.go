// Package mesh provides an indexed triangle mesh and the grid
// triangulation used by the photo and terrain pipelines.
package mesh

import (
	"fmt"

	"github.com/shapeforge/shapeforge/pkg/geometry"
)

// Mesh is an indexed triangle mesh. Faces reference vertices by their
// position in the Vertices slice; the winding order of each face is
// counter-clockwise when seen from outside the surface.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    [][3]int
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][3]int, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle referencing three vertex indices
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, [3]int{a, b, c})
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Triangle materializes face i as a geometry.Triangle with its normal
// computed from the winding order
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	t := geometry.Triangle{
		V1: m.Vertices[f[0]],
		V2: m.Vertices[f[1]],
		V3: m.Vertices[f[2]],
	}
	t.Normal = t.CalculateNormal()
	return t
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Faces {
		total += m.Triangle(i).Area()
	}
	return total
}

// Validate checks that every face index references an existing vertex
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d, have %d vertices", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}
