package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shapeforge/shapeforge/internal/config"
	"github.com/shapeforge/shapeforge/pkg/export"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestTextSphereEndToEnd(t *testing.T) {
	cfg := config.Default()
	out := filepath.Join(t.TempDir(), "sphere.obj")

	if err := Text(cfg, "a sphere object", out, 16); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	m, err := export.Load(out)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if m.VertexCount() != 256 {
		t.Errorf("expected 256 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 450 {
		t.Errorf("expected 450 faces, got %d", m.FaceCount())
	}
}

func TestTextTerrainSTL(t *testing.T) {
	cfg := config.Default()
	out := filepath.Join(t.TempDir(), "terrain.stl")

	if err := Text(cfg, "rolling hills", out, 16); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	m, err := export.Load(out)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if m.FaceCount() != 2*15*15 {
		t.Errorf("expected %d faces, got %d", 2*15*15, m.FaceCount())
	}
}

func TestTextEmptyPrompt(t *testing.T) {
	cfg := config.Default()
	out := filepath.Join(t.TempDir(), "out.obj")

	if err := Text(cfg, "   ", out, 16); err == nil {
		t.Error("expected error for blank prompt")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output file should exist after a failed conversion")
	}
}

func TestTextResolutionClamp(t *testing.T) {
	cfg := config.Default()
	cfg.Text.MaxResolution = 8
	out := filepath.Join(t.TempDir(), "out.obj")

	if err := Text(cfg, "hills", out, 32); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	m, err := export.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 8*8 {
		t.Errorf("expected clamped 64 vertices, got %d", m.VertexCount())
	}
}

func TestTextDegenerateResolution(t *testing.T) {
	cfg := config.Default()
	if err := Text(cfg, "hills", filepath.Join(t.TempDir(), "out.obj"), 1); err == nil {
		t.Error("expected error for resolution below 2")
	}
}

func TestPhotoEndToEnd(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	writeTestImage(t, input, 64, 48)
	out := filepath.Join(dir, "relief.obj")

	if err := Photo(cfg, input, out, 32); err != nil {
		t.Fatalf("Photo failed: %v", err)
	}

	m, err := export.Load(out)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if m.VertexCount() != 32*32 {
		t.Errorf("expected %d vertices, got %d", 32*32, m.VertexCount())
	}
	if m.FaceCount() != 2*31*31 {
		t.Errorf("expected %d faces, got %d", 2*31*31, m.FaceCount())
	}

	// Photo heights stay inside the normalized luminance range.
	bbox := m.BoundingBox()
	if bbox.Min.Z < 0 || bbox.Max.Z > 1 {
		t.Errorf("heights escaped [0,1]: [%v,%v]", bbox.Min.Z, bbox.Max.Z)
	}
}

func TestPhotoMissingInput(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()

	err := Photo(cfg, filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.obj"), 16)
	if err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestPhotoRejectsWrongExtension(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(input, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Photo(cfg, input, filepath.Join(dir, "out.obj"), 16); err == nil {
		t.Error("expected error for non-image input")
	}
}

func TestPhotoCreatesOutputDirectory(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	writeTestImage(t, input, 16, 16)
	out := filepath.Join(dir, "models", "nested", "out.stl")

	if err := Photo(cfg, input, out, 8); err != nil {
		t.Fatalf("Photo failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
