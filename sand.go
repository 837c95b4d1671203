package sanctuary

import (
	"math"
	"math/rand/v2"

	"github.com/tfriedel6/canvas"
)

// groovePass is one layer of the groove stroke.
type groovePass struct {
	color   Color
	width   float64
	opacity float64
}

// groovePasses are painted in order for every stroke segment. The darker,
// narrower passes sit at the bottom of the furrow; the wide pale rim on top
// reads as the lip of pushed-up sand catching the light.
var groovePasses = [5]groovePass{
	{RGB8(92, 62, 32), 20, 0.8},    // deep shadow
	{RGB8(124, 88, 52), 22, 0.6},   // inner shadow
	{RGB8(166, 126, 80), 24, 0.5},  // mid-tone
	{RGB8(205, 170, 120), 26, 0.4}, // raised edge
	{RGB8(242, 218, 172), 28, 0.3}, // rim highlight
}

// Displaced-grain scatter around the pointer.
const (
	grainSpecks       = 8
	grainMinRadius    = 10.0
	grainMaxRadius    = 25.0
	grooveSpecks      = 3
	grooveSpeckSpread = 8.0
)

var grooveSpeckColor = RGB8(70, 45, 20)

// SandDeformer paints groove strokes forward onto a Surface. It never reads
// pixels back; the only way to remove a groove is to recompose the surface.
type SandDeformer struct {
	surface *Surface
	rng     *rand.Rand
	active  bool
	last    Vec2
	strokes int
}

// NewSandDeformer returns a deformer painting onto s with grain jitter from r.
func NewSandDeformer(s *Surface, r *rand.Rand) *SandDeformer {
	mustSurface(s, "NewSandDeformer")
	return &SandDeformer{surface: s, rng: r}
}

// Active reports whether a stroke is in progress.
func (d *SandDeformer) Active() bool {
	return d.active
}

// Strokes returns the number of strokes begun since creation.
func (d *SandDeformer) Strokes() int {
	return d.strokes
}

// Begin starts a stroke at (x, y) in surface pixels. It reports false and
// does nothing if a stroke is already active or the point is off-surface.
func (d *SandDeformer) Begin(x, y float64) bool {
	if d.active || !d.surface.Bounds().Contains(x, y) {
		return false
	}
	d.active = true
	d.last = Vec2{x, y}
	d.strokes++
	return true
}

// Extend continues the active stroke to (x, y), painting the five groove
// passes over the new segment followed by the displaced grains. Samples
// outside the surface are dropped.
func (d *SandDeformer) Extend(x, y float64) bool {
	if !d.active || !d.surface.Bounds().Contains(x, y) {
		return false
	}
	cv := d.surface.cv
	cv.Save()
	cv.SetLineCap(canvas.Round)
	cv.SetLineJoin(canvas.Round)
	for _, p := range groovePasses {
		cv.SetStrokeStyle(p.color.WithAlpha(p.opacity).canvasColor())
		cv.SetLineWidth(p.width)
		cv.BeginPath()
		cv.MoveTo(d.last.X, d.last.Y)
		cv.LineTo(x, y)
		cv.Stroke()
	}
	cv.Restore()

	d.scatter(x, y)
	d.last = Vec2{x, y}
	return true
}

// End finishes the active stroke. Calling End with no active stroke is a no-op.
func (d *SandDeformer) End() {
	d.active = false
}

// scatter drops displaced grains in a ring around (x, y) and a few dark
// specks inside the furrow.
func (d *SandDeformer) scatter(x, y float64) {
	cv := d.surface.cv
	for range grainSpecks {
		angle := d.rng.Float64() * 2 * math.Pi
		dist := grainMinRadius + d.rng.Float64()*(grainMaxRadius-grainMinRadius)
		size := 0.8 + d.rng.Float64()*1.7
		cv.SetFillStyle(RandomEarthTone(d.rng).WithAlpha(0.5 + d.rng.Float64()*0.4).canvasColor())
		cv.BeginPath()
		cv.Arc(x+math.Cos(angle)*dist, y+math.Sin(angle)*dist, size, 0, 2*math.Pi, false)
		cv.Fill()
	}
	for range grooveSpecks {
		angle := d.rng.Float64() * 2 * math.Pi
		dist := d.rng.Float64() * grooveSpeckSpread
		d.surface.FillRect(x+math.Cos(angle)*dist, y+math.Sin(angle)*dist, 1, 1, grooveSpeckColor.WithAlpha(0.6))
	}
}
