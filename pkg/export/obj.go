package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shapeforge/shapeforge/pkg/geometry"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// WriteOBJ serializes a mesh as Wavefront OBJ. Face indices are written
// 1-based per the format.
func WriteOBJ(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d faces\n", m.VertexCount(), m.FaceCount())
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	return bw.Flush()
}

// ReadOBJ parses a Wavefront OBJ stream into a mesh. Only the v, f and
// o statements are interpreted; faces with more than three vertices are
// fan-triangulated.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex with %d coordinates", lineNo, len(fields)-1)
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("line %d: malformed vertex", lineNo)
			}
			m.AddVertex(geometry.NewVector3(x, y, z))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineNo, len(fields)-1)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				idx, err := parseFaceIndex(field, m.VertexCount())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			for i := 1; i+1 < len(indices); i++ {
				m.AddFace(indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OBJ mesh: %w", err)
	}

	return m, nil
}

// parseFaceIndex handles the v, v/vt and v/vt/vn reference forms,
// including negative (relative) indices.
func parseFaceIndex(field string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("malformed face index %q", field)
	}
	if idx < 0 {
		return vertexCount + idx, nil
	}
	return idx - 1, nil
}
