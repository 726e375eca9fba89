package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotQueue collects labels during Update and captures the rendered
// frame for each at the end of Draw.
type screenshotQueue struct {
	dir    string
	labels []string
}

func newScreenshotQueue(dir string) *screenshotQueue {
	return &screenshotQueue{dir: dir}
}

func (q *screenshotQueue) queue(label string) {
	q.labels = append(q.labels, label)
}

// flush writes one PNG per queued label. Failures are logged, not returned;
// a missed screenshot never stops the game.
func (q *screenshotQueue) flush(screen *ebiten.Image) {
	if len(q.labels) == 0 {
		return
	}
	defer func() { q.labels = q.labels[:0] }()

	if err := os.MkdirAll(q.dir, 0o755); err != nil {
		slog.Error("screenshot: mkdir", slog.String("dir", q.dir), slog.Any("err", err))
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range q.labels {
		path := filepath.Join(q.dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			slog.Error("screenshot", slog.Any("err", err))
			continue
		}
		slog.Info("screenshot saved", slog.String("path", path))
	}
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
