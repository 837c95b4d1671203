// Package sanctuary renders an interactive night-time garden: a generated
// desert backdrop, a sand raster that takes grooves, emotion stars that form
// constellations, shaded stones, and a tree that grows with the number of
// gratitude entries.
//
// The package is headless. Every pixel is produced by a software rasterizer
// ([github.com/tfriedel6/canvas]) so sessions can be scripted and inspected
// without a window; the window subpackage wraps a [Controller] in an
// [Ebitengine] game.
//
// # Quick start
//
//	ctrl, err := sanctuary.NewController(sanctuary.Config{Width: 800, Height: 500, Seed: 7})
//	if err != nil {
//		return err
//	}
//	ctrl.SetMode(sanctuary.ModeStar)
//	ctrl.InjectClick(120, 80)
//	for ctrl.Pending() > 0 {
//		ctrl.Update(1.0 / 60)
//	}
//	frame := ctrl.Frame()
//	err = sanctuary.WritePNG("garden.png", frame.Image(), 1)
//
// # Layers
//
// The backdrop ([Compose]) and sand grooves ([SandDeformer]) live on a
// persistent raster that is only repainted by [Controller.ClearSand]. The
// tree ([RenderTree]), stones, stars and constellation are rebuilt as a
// [VectorScene] every frame from the garden state and drawn over a copy of
// that raster.
//
// # Growth
//
// [MorphologyFor] maps the leaf count to a [TreeMorphology]: stage
// thresholds at 5, 10, 15 and 20 leaves, trunk height and width, branch
// count, roots from 5 leaves and flowers from 10.
//
// # Constellations
//
// Star counts unlock milestones at 5, 7, 10 and 15 stars. [Achieved]
// reports the highest one reached; [Controller.OnMilestone] fires when a
// new one is reached.
//
// [Ebitengine]: https://ebitengine.org
package sanctuary
