package shape

import (
	"math"
	"math/rand"

	"github.com/shapeforge/shapeforge/pkg/geometry"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Each generator takes the prompt-seeded PRNG even when the current
// construction is fully deterministic, so randomized variants can be
// added without changing the dispatch contract.

// Sphere builds a UV-parameterized sphere of radius 0.5. Both angular
// parameters are sampled at `resolution` evenly spaced points (U over
// [0,2pi], V over [0,pi]) and the parameter grid is triangulated with
// the same row-major scheme as a height field. The poles and the U seam
// are not welded, so the mesh has resolution^2 vertices including
// coincident ones.
func Sphere(resolution int, rng *rand.Rand) *mesh.Mesh {
	m := mesh.New("sphere")
	uspan := mesh.Span{Min: 0, Max: 2 * math.Pi}
	vspan := mesh.Span{Min: 0, Max: math.Pi}

	for i := 0; i < resolution; i++ {
		u := uspan.Sample(i, resolution)
		for j := 0; j < resolution; j++ {
			v := vspan.Sample(j, resolution)
			m.AddVertex(geometry.Vector3{
				X: 0.5 * math.Sin(v) * math.Cos(u),
				Y: 0.5 * math.Sin(v) * math.Sin(u),
				Z: 0.5 * math.Cos(v),
			})
		}
	}

	for i := 0; i < resolution-1; i++ {
		for j := 0; j < resolution-1; j++ {
			v0 := i*resolution + j
			v1 := i*resolution + j + 1
			v2 := (i+1)*resolution + j
			v3 := (i+1)*resolution + j + 1

			m.AddFace(v0, v1, v2)
			m.AddFace(v1, v3, v2)
		}
	}

	return m
}

// Cube builds a unit cube refined by repeated 4-way midpoint
// subdivision. The step count floor(log2(resolution/12)) only
// approximates the requested resolution; each step quadruples the face
// count, so the relationship is coarse by construction. Resolutions
// below 12 clamp to zero steps and yield the plain 12-triangle cube.
func Cube(resolution int, rng *rand.Rand) *mesh.Mesh {
	m := mesh.New("cube")
	for _, v := range [][3]float64{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	} {
		m.AddVertex(geometry.NewVector3(v[0], v[1], v[2]))
	}
	for _, f := range [][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom (-z)
		{4, 5, 6}, {4, 6, 7}, // top (+z)
		{0, 1, 5}, {0, 5, 4}, // front (-y)
		{2, 3, 7}, {2, 7, 6}, // back (+y)
		{1, 2, 6}, {1, 6, 5}, // right (+x)
		{3, 0, 4}, {3, 4, 7}, // left (-x)
	} {
		m.AddFace(f[0], f[1], f[2])
	}

	steps := 0
	if resolution >= 12 {
		steps = int(math.Floor(math.Log2(float64(resolution) / 12.0)))
	}
	for s := 0; s < steps; s++ {
		m = subdivide(m)
	}

	return m
}

// subdivide splits every triangle into four by inserting edge
// midpoints. Midpoints are shared between adjacent faces via an edge
// cache so the surface stays connected.
func subdivide(m *mesh.Mesh) *mesh.Mesh {
	out := mesh.New(m.Name)
	out.Vertices = append(out.Vertices, m.Vertices...)

	midpoints := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := m.Vertices[a].Midpoint(m.Vertices[b])
		idx := out.AddVertex(mid)
		midpoints[key] = idx
		return idx
	}

	for _, f := range m.Faces {
		a, b, c := f[0], f[1], f[2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)

		out.AddFace(a, ab, ca)
		out.AddFace(ab, b, bc)
		out.AddFace(ca, bc, c)
		out.AddFace(ab, bc, ca)
	}

	return out
}

// Cylinder builds a capped cylinder of radius 0.5 and height 1.0
// centered on the origin, with `resolution` radial segments: two rim
// rings plus two cap centers (2*resolution+2 vertices) and 4*resolution
// faces.
func Cylinder(resolution int, rng *rand.Rand) *mesh.Mesh {
	m := mesh.New("cylinder")
	const radius = 0.5

	for _, z := range []float64{-0.5, 0.5} {
		for k := 0; k < resolution; k++ {
			theta := 2 * math.Pi * float64(k) / float64(resolution)
			m.AddVertex(geometry.Vector3{
				X: radius * math.Cos(theta),
				Y: radius * math.Sin(theta),
				Z: z,
			})
		}
	}
	bottomCenter := m.AddVertex(geometry.NewVector3(0, 0, -0.5))
	topCenter := m.AddVertex(geometry.NewVector3(0, 0, 0.5))

	for k := 0; k < resolution; k++ {
		k2 := (k + 1) % resolution
		bottom, bottom2 := k, k2
		top, top2 := resolution+k, resolution+k2

		// Side wall
		m.AddFace(bottom, bottom2, top2)
		m.AddFace(bottom, top2, top)
		// Caps, wound so the normals point away from the body
		m.AddFace(bottomCenter, bottom2, bottom)
		m.AddFace(topCenter, top, top2)
	}

	return m
}

// Cone builds a capped cone of radius 0.5 with its base disk at z=0 and
// the apex at (0,0,1), using `resolution` radial segments: resolution+2
// vertices and 2*resolution faces.
func Cone(resolution int, rng *rand.Rand) *mesh.Mesh {
	m := mesh.New("cone")
	const radius = 0.5

	for k := 0; k < resolution; k++ {
		theta := 2 * math.Pi * float64(k) / float64(resolution)
		m.AddVertex(geometry.Vector3{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
			Z: 0,
		})
	}
	baseCenter := m.AddVertex(geometry.NewVector3(0, 0, 0))
	apex := m.AddVertex(geometry.NewVector3(0, 0, 1))

	for k := 0; k < resolution; k++ {
		k2 := (k + 1) % resolution
		m.AddFace(baseCenter, k2, k)
		m.AddFace(k, k2, apex)
	}

	return m
}
