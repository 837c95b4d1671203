// Package window runs a garden session in an Ebitengine window: real mouse
// and touch input, keyboard shortcuts, a status overlay and milestone
// chimes.
package window

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sanctuary"
	"github.com/phanxgames/sanctuary/journal"
)

// Config holds window options. The zero value is usable.
type Config struct {
	// Title is the window title. Empty defaults to "Sanctuary".
	Title string
	// Scale multiplies the window size relative to the canvas. Zero means 1.
	Scale float64
	// HUD shows the status overlay at start.
	HUD bool
	// Audio plays a chime when a constellation milestone is reached.
	Audio bool
	// Journal, when set, delivers updated entry lists whose new entries
	// become gratitude leaves.
	Journal <-chan []journal.Entry
}

// errQuit ends the game loop without reporting an error.
var errQuit = errors.New("quit")

// game implements ebiten.Game around a Controller.
type game struct {
	ctrl    *sanctuary.Controller
	cfg     Config
	img     *ebiten.Image
	hud     *hud
	chimes  *chimePlayer
	journal <-chan []journal.Entry
	outside bool // pointer left the canvas while pressed
	touch   touchTracker
}

// Run opens a window for ctrl and blocks until it is closed.
func Run(ctrl *sanctuary.Controller, cfg Config) error {
	if ctrl == nil {
		return fmt.Errorf("run window: nil controller")
	}
	if cfg.Title == "" {
		cfg.Title = "Sanctuary"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	w, h := ctrl.Size()
	g := &game{
		ctrl:    ctrl,
		cfg:     cfg,
		img:     ebiten.NewImage(w, h),
		hud:     newHUD(cfg.HUD),
		journal: cfg.Journal,
	}
	if cfg.Audio {
		g.chimes = newChimePlayer()
		if err := g.chimes.init(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] audio: %v\n", err)
			g.chimes = nil
		} else {
			ctrl.OnMilestone(func(ev sanctuary.MilestoneEvent) {
				g.chimes.play(ev.Milestone)
			})
		}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if g.chimes != nil {
		g.chimes.close()
	}
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update drains the journal, handles keys and pointer input and advances
// the controller.
func (g *game) Update() error {
	g.drainJournal()
	if quit := g.handleKeys(); quit {
		return errQuit
	}

	dt := float32(1.0 / ebiten.TPS())
	if injected := g.ctrl.Update(dt); !injected {
		g.pollPointer()
	}
	g.hud.update(float64(dt), g.ctrl)
	return nil
}

// Draw composes the garden and uploads it.
func (g *game) Draw(screen *ebiten.Image) {
	frame := g.ctrl.Frame()
	g.img.WritePixels(frame.Image().Pix)
	screen.DrawImage(g.img, nil)
	g.hud.draw(screen)
}

// Layout keeps the logical screen at the canvas size; Ebitengine scales it
// to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return g.ctrl.Size()
}

func (g *game) drainJournal() {
	if g.journal == nil {
		return
	}
	for {
		select {
		case entries, ok := <-g.journal:
			if !ok {
				g.journal = nil
				return
			}
			g.ctrl.SyncLeaves(journal.Texts(entries))
		default:
			return
		}
	}
}
