package window

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/sanctuary"
)

const sampleRate = beep.SampleRate(48000)

// chimePlayer mixes milestone chimes onto the speaker.
type chimePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newChimePlayer() *chimePlayer {
	return &chimePlayer{mixer: &beep.Mixer{}}
}

// init opens the speaker and starts the mixer.
func (p *chimePlayer) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// play queues the chime for m.
func (p *chimePlayer) play(m sanctuary.Milestone) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(sanctuary.NewChime(sampleRate, m))
	speaker.Unlock()
}

// close silences every chime.
func (p *chimePlayer) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
