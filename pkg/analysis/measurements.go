// Package analysis computes summary measurements of a mesh for the
// info command and the viewer.
package analysis

import (
	"fmt"
	"math"

	"github.com/shapeforge/shapeforge/pkg/geometry"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Result contains the measurements of a mesh. Edges are counted per
// face, so shared edges appear twice.
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze measures the mesh.
func Analyze(m *mesh.Mesh) *Result {
	result := &Result{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.FaceCount(),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < m.FaceCount(); i++ {
		for _, length := range m.Triangle(i).EdgeLengths() {
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			result.EdgeCount++
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatVector formats a 3D vector for display.
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
