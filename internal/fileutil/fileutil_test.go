package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.JPG")
	touch(t, img)

	if err := ValidateFile(img, []string{".jpg", ".jpeg", ".png"}); err != nil {
		t.Errorf("valid file rejected: %v", err)
	}
	if err := ValidateFile(img, nil); err != nil {
		t.Errorf("extension-free validation failed: %v", err)
	}
	if err := ValidateFile(filepath.Join(dir, "missing.png"), nil); err == nil {
		t.Error("expected error for missing file")
	}
	if err := ValidateFile(img, []string{".png"}); err == nil {
		t.Error("expected error for wrong extension")
	}
	if err := ValidateFile(dir, nil); err == nil {
		t.Error("expected error for directory")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Error("directory was not created")
	}

	// Idempotent on existing directories, no-op for empty paths.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
	if err := EnsureDir(""); err != nil {
		t.Errorf("EnsureDir(\"\") failed: %v", err)
	}
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(path, make([]byte, 42), 0o644); err != nil {
		t.Fatal(err)
	}

	size, err := FileSize(path)
	if err != nil {
		t.Fatalf("FileSize failed: %v", err)
	}
	if size != 42 {
		t.Errorf("expected size 42, got %d", size)
	}

	if _, err := FileSize(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestListByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.obj"))
	touch(t, filepath.Join(dir, "b.OBJ"))
	touch(t, filepath.Join(dir, "c.stl"))

	files, err := ListByExtension(dir, ".obj")
	if err != nil {
		t.Fatalf("ListByExtension failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 .obj files, got %d: %v", len(files), files)
	}
}
