package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/shapeforge/shapeforge/pkg/mesh"
)

// MeshViewer is an interactive widget showing a software-rendered
// mesh. Dragging rotates the orbit camera, scrolling zooms.
type MeshViewer struct {
	widget.BaseWidget
	mesh      *mesh.Mesh
	camera    *Camera
	filled    bool
	image     *canvas.Image
	dragStart *fyne.Position
}

// NewMeshViewer creates a viewer widget for the given mesh.
func NewMeshViewer(m *mesh.Mesh) *MeshViewer {
	v := &MeshViewer{
		mesh:   m,
		camera: NewCamera(m.BoundingBox()),
		image:  canvas.NewImageFromImage(nil),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.ExtendBaseWidget(v)
	return v
}

// SetFilled switches between wireframe and flat-shaded rendering.
func (v *MeshViewer) SetFilled(filled bool) {
	v.filled = filled
	v.redraw()
}

// SetMesh replaces the displayed mesh and resets the camera.
func (v *MeshViewer) SetMesh(m *mesh.Mesh) {
	v.mesh = m
	v.camera = NewCamera(m.BoundingBox())
	v.redraw()
}

// Camera exposes the orbit camera for programmatic control.
func (v *MeshViewer) Camera() *Camera {
	return v.camera
}

func (v *MeshViewer) redraw() {
	size := v.Size()
	opts := Options{
		Width:  int(size.Width),
		Height: int(size.Height),
		Filled: v.filled,
	}
	v.image.Image = RenderImage(v.mesh, v.camera, opts)
	v.image.Refresh()
}

// Dragged rotates the camera.
func (v *MeshViewer) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.redraw()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd finishes a rotation gesture.
func (v *MeshViewer) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms the camera.
func (v *MeshViewer) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.redraw()
}

// CreateRenderer implements fyne.Widget.
func (v *MeshViewer) CreateRenderer() fyne.WidgetRenderer {
	return &meshViewerRenderer{viewer: v}
}

type meshViewerRenderer struct {
	viewer *MeshViewer
}

func (r *meshViewerRenderer) Layout(size fyne.Size) {
	r.viewer.image.Resize(size)
	r.viewer.redraw()
}

func (r *meshViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *meshViewerRenderer) Refresh() {
	canvas.Refresh(r.viewer)
}

func (r *meshViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.image}
}

func (r *meshViewerRenderer) Destroy() {}
