package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/shapeforge/shapeforge/pkg/analysis"
	"github.com/shapeforge/shapeforge/pkg/export"
	"github.com/shapeforge/shapeforge/pkg/mesh"
	"github.com/shapeforge/shapeforge/pkg/viewer"
)

type App struct {
	window    fyne.Window
	mesh      *mesh.Mesh
	viewer    *viewer.MeshViewer
	infoLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("ShapeForge - Model Viewer")

	appInstance := &App{
		window: w,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to ShapeForge")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Model' to load an OBJ or STL file")

	openButton := widget.NewButton("Open Model", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	m, err := export.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load model: %w", err), a.window)
		return
	}

	a.mesh = m
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.viewer = viewer.NewMeshViewer(a.mesh)
	a.infoLabel = widget.NewLabel("")
	a.updateInfo()

	openButton := widget.NewButton("Open Model", func() {
		a.showFileDialog()
	})

	filledModeCheck := widget.NewCheck("Show Filled", func(checked bool) {
		a.viewer.SetFilled(checked)
	})
	filledModeCheck.SetChecked(false)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledModeCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.viewer,   // center
	)

	a.window.SetContent(content)
}

func (a *App) updateInfo() {
	result := analysis.Analyze(a.mesh)
	a.infoLabel.SetText(fmt.Sprintf(
		"Model: %s\nVertices: %d\nTriangles: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.mesh.Name,
		result.VertexCount,
		result.TriangleCount,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}
