package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveFramebufferFlipsRows(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(filepath.Join(dir, "shots"), "gallery")
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue, as OpenGL returns it.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := s.SaveFramebuffer(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SaveFramebuffer: %v", err)
	}
	if want := filepath.Join(dir, "shots", "gallery_2026-03-01_12-30-00.000.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red, got r=%d b=%d", r, b)
	}
}

func TestSaveFramebufferRejectsShortData(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.SaveFramebuffer(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := s.SaveFramebuffer(nil, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}
