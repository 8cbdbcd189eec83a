// Package viewer renders meshes offscreen for the preview command and
// for the interactive GUI widget.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/shapeforge/shapeforge/pkg/geometry"
	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// Options controls a single render pass.
type Options struct {
	Width  int
	Height int
	Filled bool // flat shading instead of wireframe
}

// DefaultOptions returns the options used when the caller passes none.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600}
}

// RenderImage renders the mesh through the camera into a new image.
func RenderImage(m *mesh.Mesh, cam *Camera, opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	background := color.RGBA{25, 25, 30, 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}

	if opts.Filled {
		renderFilled(img, m, cam)
	} else {
		renderWireframe(img, m, cam)
	}
	return img
}

func renderWireframe(img *image.RGBA, m *mesh.Mesh, cam *Camera) {
	width := float64(img.Bounds().Max.X)
	height := float64(img.Bounds().Max.Y)

	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)
		vertices := []geometry.Vector3{tri.V1, tri.V2, tri.V3}

		for j := 0; j < 3; j++ {
			v1 := vertices[j]
			v2 := vertices[(j+1)%3]

			x1, y1, z1 := cam.Project(v1, width, height)
			x2, y2, z2 := cam.Project(v2, width, height)

			// Depth-based brightness so nearer edges stand out
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(60, math.Min(255, 255-avgZ*60/cam.Distance)))

			drawLine(img, int(x1), int(y1), int(x2), int(y2),
				color.RGBA{brightness, brightness, brightness, 255})
		}
	}
}

func renderFilled(img *image.RGBA, m *mesh.Mesh, cam *Camera) {
	width := float64(img.Bounds().Max.X)
	height := float64(img.Bounds().Max.Y)

	zbuffer := make([]float64, img.Bounds().Max.X*img.Bounds().Max.Y)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	light := cam.Target.Sub(cam.Position).Normalize().Mul(-1)

	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)

		x1, y1, z1 := cam.Project(tri.V1, width, height)
		x2, y2, z2 := cam.Project(tri.V2, width, height)
		x3, y3, z3 := cam.Project(tri.V3, width, height)

		// Flat shading from the face normal, both sides lit
		intensity := math.Abs(tri.Normal.Dot(light))
		shade := uint8(60 + intensity*180)

		fillTriangleWithDepth(img, zbuffer,
			x1, y1, z1, x2, y2, z2, x3, y3, z3,
			color.RGBA{shade, shade, uint8(math.Min(255, float64(shade)+20)), 255})
	}
}
