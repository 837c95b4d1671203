package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/sanctuary"
)

const hudRefresh = 0.5 // seconds between text refreshes

// hud is a status overlay rendered with ebitenutil.DebugPrint into its own
// image and refreshed about twice a second.
type hud struct {
	visible bool
	img     *ebiten.Image
	elapsed float64
	op      ebiten.DrawImageOptions
}

func newHUD(visible bool) *hud {
	h := &hud{visible: visible, img: ebiten.NewImage(220, 84), elapsed: hudRefresh}
	h.op.GeoM.Translate(8, 40)
	return h
}

func (h *hud) update(dt float64, ctrl *sanctuary.Controller) {
	if !h.visible {
		return
	}
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, statusText(ctrl, ebiten.ActualFPS()))
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.visible {
		screen.DrawImage(h.img, &h.op)
	}
}

// statusText summarizes the session for the overlay.
func statusText(ctrl *sanctuary.Controller, fps float64) string {
	var b strings.Builder
	m := ctrl.Morphology()
	stars := len(ctrl.Stars())

	fmt.Fprintf(&b, "Mode: %s  (1/2/3)\n", ctrl.Mode())
	fmt.Fprintf(&b, "Leaves: %d  Stage: %s\n", m.LeafCount, m.Stage)
	if ms, ok := ctrl.Milestone(); ok {
		fmt.Fprintf(&b, "Stars: %d  %s\n", stars, ms.Name)
	} else {
		fmt.Fprintf(&b, "Stars: %d\n", stars)
	}
	if next, ok := sanctuary.NextMilestone(stars); ok {
		fmt.Fprintf(&b, "Next: %s at %d\n", next.Name, next.RequiredStars)
	}
	fmt.Fprintf(&b, "Stones: %d  FPS: %.1f", len(ctrl.Stones()), fps)
	return b.String()
}
