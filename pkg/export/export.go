// Package export serializes meshes to Wavefront OBJ and STL files and
// reads them back for inspection.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Format returns the output format selected by a path's extension:
// ".stl" (case-insensitive) means STL, everything else means OBJ.
func Format(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		return "stl"
	}
	return "obj"
}

// Export writes the mesh to the given path in the format selected by
// its extension. A partially written file is removed on failure so no
// inconsistent output is left behind.
func Export(m *mesh.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if Format(path) == "stl" {
		err = WriteSTL(m, f)
	} else {
		err = WriteOBJ(m, f)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads a mesh file in either format, selected by extension.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if Format(path) == "stl" {
		return ReadSTL(f)
	}
	return ReadOBJ(f)
}
