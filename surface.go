package sanctuary

import (
	"fmt"
	"image"
	"image/color"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
	xdraw "golang.org/x/image/draw"
)

// Surface is a persistent offscreen raster with an immediate-mode 2D paint
// API. Everything painted onto it accumulates until Clear or a full repaint;
// nothing is ever read back by the painters themselves.
type Surface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	w, h    int
}

// NewSurface creates a transparent surface of the given size.
func NewSurface(w, h int) *Surface {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sanctuary: invalid surface size %dx%d", w, h))
	}
	backend := softwarebackend.New(w, h)
	return &Surface{
		backend: backend,
		cv:      canvas.New(backend),
		w:       w,
		h:       h,
	}
}

// Canvas returns the underlying canvas for direct drawing.
func (s *Surface) Canvas() *canvas.Canvas {
	return s.cv
}

// Image returns the backing RGBA pixels. The image is live: later paints
// show up in it.
func (s *Surface) Image() *image.RGBA {
	return s.backend.Image
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.w
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.h
}

// Bounds returns the surface extent as a Rect.
func (s *Surface) Bounds() Rect {
	return Rect{Width: float64(s.w), Height: float64(s.h)}
}

// At returns the color of the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.backend.Image.RGBAAt(x, y)
}

// Snapshot returns an independent copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	src := s.backend.Image
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// Clear resets every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.backend.Image.Pix)
}

// Fill paints the entire surface with c.
func (s *Surface) Fill(c Color) {
	s.FillRect(0, 0, float64(s.w), float64(s.h), c)
}

// FillRect fills an axis-aligned rectangle with a solid color.
func (s *Surface) FillRect(x, y, w, h float64, c Color) {
	s.cv.SetFillStyle(c.canvasColor())
	s.cv.FillRect(x, y, w, h)
}

// DrawSurface copies src onto s at the origin, replacing the covered pixels.
func (s *Surface) DrawSurface(src *Surface) {
	mustSurface(src, "DrawSurface")
	xdraw.Draw(s.backend.Image, s.backend.Image.Rect, src.backend.Image, image.Point{}, xdraw.Src)
}

// mustSurface fails fast when a painter is handed no surface.
func mustSurface(s *Surface, op string) {
	if s == nil {
		panic(fmt.Sprintf("sanctuary: %s on nil surface", op))
	}
}
