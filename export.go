package sanctuary

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Screenshot queues a labeled screenshot of the next composed frame. The
// PNG is written to Config.ScreenshotDir with a timestamped filename.
func (c *Controller) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// ScreenshotDir returns the directory screenshots are written to.
func (c *Controller) ScreenshotDir() string {
	return c.cfg.ScreenshotDir
}

// flushScreenshots writes the frame for every queued label. Failures are
// reported on stderr and do not interrupt the session.
func (c *Controller) flushScreenshots(frame *Surface) {
	if len(c.screenshotQueue) == 0 {
		return
	}

	dir := c.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] screenshot: mkdir %s: %v\n", dir, err)
		c.screenshotQueue = c.screenshotQueue[:0]
		return
	}

	img := frame.Snapshot()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range c.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := WritePNG(path, img, 1); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] screenshot: %v\n", err)
		}
	}

	c.screenshotQueue = c.screenshotQueue[:0]
}

// ScaleImage resamples img by factor with Catmull-Rom filtering. A factor of
// 1 (or any non-positive factor) returns img unchanged.
func ScaleImage(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Rect, img, b, xdraw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG, scaled by factor.
func EncodePNG(w io.Writer, img image.Image, factor float64) error {
	if err := png.Encode(w, ScaleImage(img, factor)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG encodes img, scaled by factor, to a PNG file at path.
func WritePNG(path string, img image.Image, factor float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(f, img, factor); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
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
