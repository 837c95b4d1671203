package sanctuary

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"
)

func composeSeeded(w, h int, seed uint64) *Surface {
	s := NewSurface(w, h)
	Compose(s, rand.New(rand.NewPCG(seed, streamBackdrop)))
	return s
}

func TestComposeDeterministic(t *testing.T) {
	a := composeSeeded(160, 100, 11)
	b := composeSeeded(160, 100, 11)
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("same seed produced different backdrops")
	}
	c := composeSeeded(160, 100, 12)
	if bytes.Equal(a.Image().Pix, c.Image().Pix) {
		t.Error("different seeds produced identical backdrops")
	}
}

func TestComposeCoversSurface(t *testing.T) {
	s := composeSeeded(120, 80, 5)
	for _, p := range [][2]int{{0, 0}, {119, 0}, {60, 40}, {0, 79}, {119, 79}} {
		if c := s.At(p[0], p[1]); c.A != 255 {
			t.Errorf("pixel %v alpha = %d, want opaque", p, c.A)
		}
	}
}

func TestComposeSkyAndSandTones(t *testing.T) {
	s := composeSeeded(200, 120, 8)
	// Sky is blue-violet at the top left, away from the moon.
	if c := s.At(2, 1); c.B < c.R {
		t.Errorf("sky pixel %+v is not cool", c)
	}
	// Sand is warm at the bottom.
	for _, x := range []int{10, 100, 190} {
		if c := s.At(x, 117); c.R <= c.B {
			t.Errorf("sand pixel at x=%d %+v is not warm", x, c)
		}
	}
}

func TestComposeReplacesPreviousContent(t *testing.T) {
	s := NewSurface(100, 60)
	s.Fill(RGB8(0, 255, 0))
	Compose(s, rand.New(rand.NewPCG(1, streamBackdrop)))
	fresh := composeSeeded(100, 60, 1)
	if !bytes.Equal(s.Image().Pix, fresh.Image().Pix) {
		t.Error("Compose left traces of earlier paint")
	}
}

func TestComposeHorizonBandAlpha(t *testing.T) {
	const w, h = 800, 500
	s := composeSeeded(w, h, 1)

	// Row 298 sits just above the sand line, inside the horizon band and
	// below the starfield and dunes: the sky's last stop under the band's
	// near-peak warmth.
	y := 298
	bandT := (float64(y) + 0.5 - h*horizonTop) / (h * (horizonBottom - horizonTop))
	alpha := 0.35 * (1 - math.Abs(bandT-0.5)*2)
	skyT := (float64(y) + 0.5) / (h * skyBottom)
	sky := skyStops[2].Lerp(skyStops[3], (skyT-2.0/3)*3)
	want := sky.Lerp(horizonColor, alpha)

	got := s.At(w/2, y)
	if math.Abs(float64(got.R)-want.R*255) > 5 || math.Abs(float64(got.G)-want.G*255) > 5 {
		t.Errorf("horizon pixel = %v, want ~(%.0f, %.0f)", got, want.R*255, want.G*255)
	}
}
