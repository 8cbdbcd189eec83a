// Package shape generates procedural meshes from text prompts. The
// prompt alone determines the output: keyword matching picks a
// generator, and an MD5 digest of the prompt drives every derived
// parameter, so identical prompts always produce identical geometry.
package shape

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
	"strings"

	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Kind identifies one of the procedural generators.
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindCylinder
	KindCone
	KindTerrain
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindTerrain:
		return "terrain"
	}
	return "unknown"
}

// categories is evaluated in order; the first keyword hit wins, so a
// prompt mentioning both "cube" and "round" still selects a sphere.
// A slice rather than a map keeps that priority stable.
var categories = []struct {
	keywords []string
	kind     Kind
}{
	{[]string{"sphere", "ball", "round"}, KindSphere},
	{[]string{"cube", "box", "square"}, KindCube},
	{[]string{"cylinder", "tube"}, KindCylinder},
	{[]string{"cone", "pyramid"}, KindCone},
}

// Select maps a prompt to a generator by substring keyword matching on
// the lower-cased prompt. Prompts matching no category fall back to the
// terrain generator.
func Select(prompt string) Kind {
	lower := strings.ToLower(prompt)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.kind
			}
		}
	}
	return KindTerrain
}

// Digest returns the MD5 digest of the raw prompt bytes. The digest is
// the single source of all prompt-derived numeric parameters.
func Digest(prompt string) [md5.Size]byte {
	return md5.Sum([]byte(prompt))
}

// Seed reduces the prompt digest to a 32-bit PRNG seed. Interpreting
// the digest as a big-endian integer, the value modulo 2^32 is its last
// four bytes.
func Seed(prompt string) uint32 {
	digest := Digest(prompt)
	return binary.BigEndian.Uint32(digest[md5.Size-4:])
}

// Params derives 16 floats in [0,1] from the prompt digest, one per
// digest byte.
func Params(prompt string) [md5.Size]float64 {
	digest := Digest(prompt)
	var params [md5.Size]float64
	for i, b := range digest {
		params[i] = float64(b) / 255.0
	}
	return params
}

// Options control mesh generation.
type Options struct {
	// Resolution is the tessellation density passed to the selected
	// generator.
	Resolution int
	// TerrainOctaves is the number of sinusoid octaves summed by the
	// terrain generator, between 1 and 16. Zero means the default of 8.
	TerrainOctaves int
}

// DefaultTerrainOctaves is the octave count used when Options leaves it
// unset.
const DefaultTerrainOctaves = 8

// FromPrompt selects a generator for the prompt and builds its mesh.
// The PRNG is seeded from the prompt before dispatch so that
// generators drawing random numbers stay reproducible.
func FromPrompt(prompt string, opts Options) *mesh.Mesh {
	rng := rand.New(rand.NewSource(int64(Seed(prompt))))

	octaves := opts.TerrainOctaves
	if octaves == 0 {
		octaves = DefaultTerrainOctaves
	}

	switch Select(prompt) {
	case KindSphere:
		return Sphere(opts.Resolution, rng)
	case KindCube:
		return Cube(opts.Resolution, rng)
	case KindCylinder:
		return Cylinder(opts.Resolution, rng)
	case KindCone:
		return Cone(opts.Resolution, rng)
	default:
		return Terrain(prompt, opts.Resolution, octaves, rng)
	}
}
