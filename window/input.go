package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sanctuary"
)

// Keyboard shortcuts.
var modeKeys = map[ebiten.Key]sanctuary.Mode{
	ebiten.Key1: sanctuary.ModeSand,
	ebiten.Key2: sanctuary.ModeStar,
	ebiten.Key3: sanctuary.ModeStone,
}

// handleKeys applies keyboard shortcuts. It reports true when the user asked
// to quit.
func (g *game) handleKeys() bool {
	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.ctrl.SetMode(mode)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.ctrl.ClearSand()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.ctrl.ClearStars()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.ctrl.ClearStones()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.ctrl.ClearAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.ctrl.AutoPlaceStar()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.ctrl.AutoPlaceStone()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.ctrl.Screenshot("window")
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.hud.visible = !g.hud.visible
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return true
	}
	return false
}

// touchTracker remembers where the current touch is, so the release is
// reported at the tap point rather than at the mouse cursor.
type touchTracker struct {
	active bool
	x, y   int
}

// pointerSample is one frame of pointer state in canvas pixels.
type pointerSample struct {
	x, y    int
	pressed bool
}

// sample merges touch and mouse state. touching reports whether any touch is
// down this frame, at (tx, ty). A touch that just ended releases at its last
// position; otherwise the mouse is used.
func (tt *touchTracker) sample(touching bool, tx, ty int, mouse pointerSample) pointerSample {
	switch {
	case touching:
		tt.active, tt.x, tt.y = true, tx, ty
		return pointerSample{x: tx, y: ty, pressed: true}
	case tt.active:
		tt.active = false
		return pointerSample{x: tt.x, y: tt.y}
	default:
		return mouse
	}
}

// pollPointer feeds the mouse, or the first active touch, into the
// controller. Leaving the canvas while pressed ends the interaction.
func (g *game) pollPointer() {
	var tx, ty int
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		tx, ty = ebiten.TouchPosition(ids[0])
	}
	var mouse pointerSample
	mouse.x, mouse.y = ebiten.CursorPosition()
	mouse.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	p := g.touch.sample(len(ids) > 0, tx, ty, mouse)
	g.feed(p)
}

// feed routes one pointer sample, handling the pointer leaving the canvas.
func (g *game) feed(p pointerSample) {
	w, h := g.ctrl.Size()
	inside := p.x >= 0 && p.y >= 0 && p.x < w && p.y < h
	if !inside {
		if p.pressed && !g.outside {
			g.ctrl.PointerLeave()
		}
		g.outside = p.pressed
		return
	}
	if g.outside {
		// Still held from a press that left the canvas; wait for release.
		if !p.pressed {
			g.outside = false
		}
		return
	}
	g.ctrl.ProcessPointer(float64(p.x), float64(p.y), p.pressed)
}
