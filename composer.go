package sanctuary

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Backdrop proportions, as fractions of the surface height.
const (
	skyBottom     = 0.60 // sky gradient covers [0, skyBottom)
	starfieldEnd  = 0.50 // ambient stars stay above this line
	horizonTop    = 0.50
	horizonBottom = 0.70
	sandTop       = 0.60 // sand covers [sandTop, 1]
)

// Backdrop element counts.
const (
	ambientStarCount = 100
	grainCount       = 3000
	duneCount        = 3
	rippleCount      = 8
)

var (
	skyStops = [4]Color{
		RGB8(11, 10, 31),   // near-black indigo
		RGB8(27, 23, 64),   // deep indigo
		RGB8(58, 45, 92),   // violet
		RGB8(107, 84, 120), // dusty violet at the horizon
	}
	sandStops = [4]Color{
		RGB8(216, 178, 122),
		RGB8(200, 155, 98),
		RGB8(181, 133, 79),
		RGB8(154, 110, 62),
	}
	moonColor    = RGB8(255, 248, 225)
	horizonColor = RGB8(255, 170, 120)
	grainColor   = RGB8(120, 86, 48)
	rippleColor  = RGB8(110, 78, 44)
)

// duneBands describes the three layered dunes from back to front.
var duneBands = [duneCount]struct {
	top       float64 // fraction of height of the band's mean crest
	amplitude float64 // crest height in pixels
	waves     float64 // number of full sine periods across the width
	phase     float64 // per-band phase offset in radians
	tint      Color
}{
	{0.64, 14, 1.5, 0, RGB8(226, 190, 135).WithAlpha(0.45)},
	{0.74, 11, 2.0, math.Pi / 3, RGB8(205, 163, 106).WithAlpha(0.5)},
	{0.85, 8, 2.5, 2 * math.Pi / 3, RGB8(186, 140, 86).WithAlpha(0.55)},
}

// Compose paints the desert-night backdrop over the whole surface, replacing
// whatever was there. All randomness is drawn from r, so the same seed yields
// the same pixels.
func Compose(s *Surface, r *rand.Rand) {
	mustSurface(s, "Compose")
	w, h := float64(s.w), float64(s.h)
	cv := s.cv

	s.Clear()

	// Sky.
	sky := cv.CreateLinearGradient(0, 0, 0, h*skyBottom)
	for i, c := range skyStops {
		sky.AddColorStop(float64(i)/3, c.canvasColor())
	}
	cv.SetFillStyle(sky)
	cv.FillRect(0, 0, w, h*skyBottom)

	// Ambient stars.
	for range ambientStarCount {
		x := r.Float64() * w
		y := r.Float64() * h * starfieldEnd
		radius := 0.3 + r.Float64()*1.5
		cv.SetFillStyle(ColorWhite.WithAlpha(0.3 + r.Float64()*0.6).canvasColor())
		cv.BeginPath()
		cv.Arc(x, y, radius, 0, 2*math.Pi, false)
		cv.Fill()
	}

	// Moon.
	mx, my := w*0.82, h*0.14
	mr := math.Min(w, h) * 0.055
	glow := cv.CreateRadialGradient(mx, my, 0, mx, my, mr*2.6)
	glow.AddColorStop(0, moonColor.canvasColor())
	glow.AddColorStop(0.36, moonColor.WithAlpha(0.95).canvasColor())
	glow.AddColorStop(0.42, moonColor.WithAlpha(0.3).canvasColor())
	glow.AddColorStop(1, moonColor.WithAlpha(0).canvasColor())
	cv.SetFillStyle(glow)
	cv.BeginPath()
	cv.Arc(mx, my, mr*2.6, 0, 2*math.Pi, false)
	cv.Fill()

	// Horizon warmth.
	band := cv.CreateLinearGradient(0, h*horizonTop, 0, h*horizonBottom)
	band.AddColorStop(0, horizonColor.WithAlpha(0).canvasColor())
	band.AddColorStop(0.5, horizonColor.WithAlpha(0.35).canvasColor())
	band.AddColorStop(1, horizonColor.WithAlpha(0).canvasColor())
	cv.SetFillStyle(band)
	cv.FillRect(0, h*horizonTop, w, h*(horizonBottom-horizonTop))

	// Sand base.
	sand := cv.CreateLinearGradient(0, h*sandTop, 0, h)
	for i, c := range sandStops {
		sand.AddColorStop(float64(i)/3, c.canvasColor())
	}
	cv.SetFillStyle(sand)
	cv.FillRect(0, h*sandTop, w, h*(1-sandTop))

	// Grain. Noise clusters darker and lighter patches so the speckle
	// does not read as uniform static.
	noise := perlin.NewPerlin(2, 2, 3, r.Int64())
	for range grainCount {
		x := r.Float64() * w
		y := h*sandTop + r.Float64()*h*(1-sandTop)
		n := (noise.Noise2D(x/90, y/90) + 1) / 2
		size := 1.0
		if r.Float64() < 0.2 {
			size = 1.5
		}
		c := grainColor.Scale(0.8 + 0.6*n).WithAlpha(0.15 + r.Float64()*0.2)
		s.FillRect(x, y, size, size, c)
	}

	// Dunes.
	for _, d := range duneBands {
		freq := 2 * math.Pi * d.waves / w
		base := h * d.top
		cv.SetFillStyle(d.tint.canvasColor())
		cv.BeginPath()
		cv.MoveTo(0, h)
		for x := 0.0; x <= w; x += 4 {
			cv.LineTo(x, base+d.amplitude*math.Sin(x*freq+d.phase))
		}
		cv.LineTo(w, base+d.amplitude*math.Sin(w*freq+d.phase))
		cv.LineTo(w, h)
		cv.ClosePath()
		cv.Fill()
	}

	// Ripples.
	cv.SetStrokeStyle(rippleColor.WithAlpha(0.18).canvasColor())
	cv.SetLineWidth(1)
	step := h * (1 - sandTop - 0.06) / rippleCount
	for i := range rippleCount {
		y := h*(sandTop+0.05) + float64(i)*step
		amp := 1.5 + r.Float64()*1.5
		phase := r.Float64() * 2 * math.Pi
		cv.BeginPath()
		cv.MoveTo(0, y+amp*math.Sin(phase))
		for x := 6.0; x <= w; x += 6 {
			cv.LineTo(x, y+amp*math.Sin(x*0.03+phase))
		}
		cv.Stroke()
	}
}
