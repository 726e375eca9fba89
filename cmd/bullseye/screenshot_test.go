package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-hit", "after-hit"},
		{"  ", "unlabeled"},
		{"level 2/hit", "level_2_hit"},
		{"v1.0", "v1.0"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		127, 63, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
