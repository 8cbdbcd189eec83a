package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shapeforge/shapeforge/pkg/geometry"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// WriteSTL serializes a mesh as binary STL: an 80-byte header, a
// little-endian triangle count, then one 50-byte record per facet with
// the normal computed from the winding order.
func WriteSTL(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.FaceCount())); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)
		record := [12]float32{
			float32(tri.Normal.X), float32(tri.Normal.Y), float32(tri.Normal.Z),
			float32(tri.V1.X), float32(tri.V1.Y), float32(tri.V1.Z),
			float32(tri.V2.X), float32(tri.V2.Y), float32(tri.V2.Z),
			float32(tri.V3.X), float32(tri.V3.Y), float32(tri.V3.Z),
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// ReadSTL parses an STL stream into an indexed mesh, detecting ASCII
// vs binary from the leading bytes. Facet corners are welded back into
// shared vertices by exact coordinate match, so a grid mesh written and
// read back recovers its original vertex count.
func ReadSTL(r io.Reader) (*mesh.Mesh, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(6)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL header: %w", err)
	}
	if strings.HasPrefix(string(head), "solid") {
		return readASCIISTL(br)
	}
	return readBinarySTL(br)
}

// weldIndex deduplicates facet corners into vertex indices.
type weldIndex struct {
	mesh    *mesh.Mesh
	indices map[geometry.Vector3]int
}

func newWeldIndex(m *mesh.Mesh) *weldIndex {
	return &weldIndex{mesh: m, indices: make(map[geometry.Vector3]int)}
}

func (w *weldIndex) add(v geometry.Vector3) int {
	if idx, ok := w.indices[v]; ok {
		return idx
	}
	idx := w.mesh.AddVertex(v)
	w.indices[v] = idx
	return idx
}

func readBinarySTL(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")
	weld := newWeldIndex(m)

	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	m.Name = strings.TrimRight(strings.TrimRight(string(header), "\x00"), " ")

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	record := make([]byte, 50)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		var face [3]int
		for v := 0; v < 3; v++ {
			// 12-byte normal first, then the three corners
			off := 12 + v*12
			face[v] = weld.add(geometry.Vector3{
				X: float64(float32frombytes(record[off:])),
				Y: float64(float32frombytes(record[off+4:])),
				Z: float64(float32frombytes(record[off+8:])),
			})
		}
		m.AddFace(face[0], face[1], face[2])
	}

	return m, nil
}

func float32frombytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func readASCIISTL(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")
	weld := newWeldIndex(m)
	scanner := bufio.NewScanner(r)

	var corners []int
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("malformed vertex statement: %q", strings.Join(fields, " "))
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			corners = append(corners, weld.add(geometry.NewVector3(x, y, z)))

		case "endfacet":
			if len(corners) == 3 {
				m.AddFace(corners[0], corners[1], corners[2])
			}
			corners = corners[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return m, nil
}
