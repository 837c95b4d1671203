package sanctuary

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const chimeDuration = 1200 * time.Millisecond

// chimeRoots holds one root pitch per milestone, rising with the threshold.
var chimeRoots = [...]float64{523.25, 587.33, 659.25, 783.99} // C5 D5 E5 G5

// ChimeGenerator synthesizes a short bell tone: a root and two inharmonic
// partials under an exponential decay.
type ChimeGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewChime returns a finite streamer announcing milestone m.
func NewChime(sr beep.SampleRate, m Milestone) *ChimeGenerator {
	freq := chimeRoots[0]
	for i, ms := range milestones {
		if ms.Name == m.Name {
			freq = chimeRoots[i]
		}
	}
	return &ChimeGenerator{sr: sr, freq: freq, total: sr.N(chimeDuration)}
}

// Stream fills samples with the next chunk of the tone. It reports ok=false
// once the tone has fully decayed.
func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-4*t) * math.Min(t/0.005, 1)
		v := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.25*math.Sin(2*math.Pi*g.freq*2.76*t) +
			0.12*math.Sin(2*math.Pi*g.freq*5.4*t)
		v *= 0.25 * env
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ChimeGenerator) Err() error {
	return nil
}
