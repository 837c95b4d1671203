package sanctuary

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	twinkleLow     = 0.45 // dimmest point of a twinkle
	twinkleStagger = 0.2  // seconds of phase offset between consecutive stars
)

// Twinkler animates a per-star opacity that pulses between twinkleLow and 1.
// It is purely visual: it never touches the stars themselves, only the alpha
// slice handed to RenderStars. Call Sync whenever the star count changes and
// Update once per tick.
type Twinkler struct {
	period float32
	tweens []*gween.Tween
	rising []bool
	alpha  []float64
}

// NewTwinkler returns a Twinkler whose full dim-and-brighten cycle lasts
// period seconds. Non-positive periods default to 2.4s.
func NewTwinkler(period float32) *Twinkler {
	if period <= 0 {
		period = 2.4
	}
	return &Twinkler{period: period}
}

// Sync grows or truncates the animation state to n stars. New stars start
// staggered by their index so the sky does not pulse in unison.
func (t *Twinkler) Sync(n int) {
	if n < len(t.tweens) {
		t.tweens = t.tweens[:n]
		t.rising = t.rising[:n]
		t.alpha = t.alpha[:n]
		return
	}
	for i := len(t.tweens); i < n; i++ {
		tw := gween.New(1, twinkleLow, t.period/2, ease.InOutSine)
		val, _ := tw.Update(float32(i) * twinkleStagger)
		t.tweens = append(t.tweens, tw)
		t.rising = append(t.rising, false)
		t.alpha = append(t.alpha, float64(val))
	}
}

// Update advances every star's twinkle by dt seconds.
func (t *Twinkler) Update(dt float32) {
	for i, tw := range t.tweens {
		val, done := tw.Update(dt)
		t.alpha[i] = float64(val)
		if !done {
			continue
		}
		// Reverse direction for the next half-cycle.
		if t.rising[i] {
			t.tweens[i] = gween.New(1, twinkleLow, t.period/2, ease.InOutSine)
		} else {
			t.tweens[i] = gween.New(twinkleLow, 1, t.period/2, ease.InOutSine)
		}
		t.rising[i] = !t.rising[i]
	}
}

// Alpha returns the current opacity per star. The returned slice MUST NOT be
// mutated.
func (t *Twinkler) Alpha() []float64 {
	return t.alpha
}
