package sanctuary

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Conversion to 8-bit happens when a primitive is handed to the rasterizer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Scale multiplies the RGB channels by f (f < 1 darkens, f > 1 brightens).
// Alpha is unchanged.
func (c Color) Scale(f float64) Color {
	return Color{clamp01(c.R * f), clamp01(c.G * f), clamp01(c.B * f), c.A}
}

// Lerp interpolates from c to other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// NRGBA converts c to a straight-alpha 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// canvasColor converts c for the rasterizer. The canvas reads a color.Color
// through RGBA() and treats the result as straight alpha, so the channels
// are handed over unpremultiplied.
func (c Color) canvasColor() color.RGBA {
	n := c.NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Vec2 is a 2D vector used for positions, offsets and directions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Mode selects what a pointer interaction does on the garden canvas.
type Mode uint8

const (
	ModeSand  Mode = iota // drag to draw grooves in the sand
	ModeStar              // click to place an emotion star
	ModeStone             // click to place a stone
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeSand:
		return "sand"
	case ModeStar:
		return "star"
	case ModeStone:
		return "stone"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "sand":
		return ModeSand, true
	case "star":
		return ModeStar, true
	case "stone":
		return ModeStone, true
	}
	return 0, false
}

// EventType identifies a kind of controller event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventPointerMove                  // fires when the pointer moves with the button held
	EventClick                        // fires on press then release without dragging
	EventMilestone                    // fires when a new constellation milestone is reached
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
