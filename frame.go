package sanctuary

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// treeBaseY is the ground line of the tree as a fraction of canvas height.
const treeBaseY = 0.9

// frameStats holds per-frame timing and primitive counts.
// Only populated when Config.Debug is true.
type frameStats struct {
	copyTime   time.Duration
	buildTime  time.Duration
	rasterTime time.Duration
	primitives int
	stars      int
	stones     int
	leaves     int
}

// Frame composes the current garden into the output surface and returns it:
// the sand raster, then the tree grown from the leaf count, stones, the
// constellation and finally the stars with their twinkle. Queued screenshots
// are written from the composed frame. The returned surface is reused by the
// next call.
func (c *Controller) Frame() *Surface {
	var stats frameStats
	var t0 time.Time
	if c.cfg.Debug {
		t0 = time.Now()
	}

	c.frame.DrawSurface(c.sand)

	if c.cfg.Debug {
		stats.copyTime = time.Since(t0)
		t0 = time.Now()
	}

	w, h := c.cfg.Width, c.cfg.Height
	stars := c.garden.Stars()
	vs := c.scene
	vs.Reset()
	AppendTree(vs, c.Morphology(), c.treeBase(), c.treeRNG())
	RenderStones(vs, c.garden.Stones(), w, h)
	RenderConstellation(vs, stars, w, h)
	RenderStars(vs, stars, w, h, c.twinkle.Alpha())

	if c.cfg.Debug {
		stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}

	vs.Draw(c.frame)

	if c.cfg.Debug {
		stats.rasterTime = time.Since(t0)
		stats.primitives = vs.Len()
		stats.stars = len(stars)
		stats.stones = c.garden.StoneCount()
		stats.leaves = c.garden.LeafCount()
		c.debugLog(stats)
	}

	c.frames++
	c.flushScreenshots(c.frame)
	return c.frame
}

// Frames returns how many frames have been composed.
func (c *Controller) Frames() uint64 { return c.frames }

// treeBase is the ground-level trunk center: horizontally centered, on the
// sand.
func (c *Controller) treeBase() Vec2 {
	return Vec2{float64(c.cfg.Width) / 2, float64(c.cfg.Height) * treeBaseY}
}

// treeRNG returns the jitter source for the tree. It depends on the session
// seed and the leaf count, so the tree keeps its shape between frames and
// only changes when it grows.
func (c *Controller) treeRNG() *rand.Rand {
	return rand.New(rand.NewPCG(c.seed, streamTree+uint64(c.garden.LeafCount())))
}

// debugLog prints timing and primitive stats to stderr.
func (c *Controller) debugLog(stats frameStats) {
	total := stats.copyTime + stats.buildTime + stats.rasterTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sanctuary] copy: %v | build: %v | raster: %v | total: %v\n",
		stats.copyTime, stats.buildTime, stats.rasterTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sanctuary] primitives: %d | stars: %d | stones: %d | leaves: %d\n",
		stats.primitives, stats.stars, stats.stones, stats.leaves)
}
