package sanctuary

import "math"

const (
	starOuterRadius = 6.0
	starInnerRatio  = 0.45
	starGlowRadius  = 14.0
)

var (
	stoneBase      = RGB8(128, 124, 118)
	stoneHighlight = RGB8(214, 210, 200)
	stoneShadow    = RGB8(40, 30, 20)
)

// percentToPixel converts a percentage position to surface pixels.
func percentToPixel(x, y float64, w, h int) Vec2 {
	return Vec2{clampPercent(x) / 100 * float64(w), clampPercent(y) / 100 * float64(h)}
}

// RenderStars appends a glow and a five-point glyph for every star, in
// insertion order so later stars draw on top. alpha, when non-nil, supplies
// a per-star opacity multiplier (for twinkling); missing entries count as 1
// and values are floored at 0.05 so a star never vanishes completely.
func RenderStars(vs *VectorScene, stars []Star, w, h int, alpha []float64) {
	for i, s := range stars {
		a := 1.0
		if i < len(alpha) {
			a = math.Max(0.05, clamp01(alpha[i]))
		}
		c := percentToPixel(s.X, s.Y, w, h)
		size := s.Size
		if size <= 0 {
			size = 1
		}

		glowR := starGlowRadius * size
		glow := RadialPaint(c.X, c.Y, 0, c.X, c.Y, glowR,
			GradientStop{0, s.Color.WithAlpha(0.8)},
			GradientStop{1, s.Color.WithAlpha(0)},
		)
		vs.Circle(LayerStars, PartStarGlow, c, glowR, glow, a)
		vs.FillPath(LayerStars, PartStar, starPath(c, starOuterRadius*size), Solid(s.Color.Lerp(ColorWhite, 0.35)), a)
	}
}

// starPath returns a closed five-point star centered on c.
func starPath(c Vec2, outer float64) Path {
	inner := outer * starInnerRatio
	var p Path
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		x, y := c.X+math.Cos(a)*r, c.Y+math.Sin(a)*r
		if i == 0 {
			p = p.MoveTo(x, y)
		} else {
			p = p.LineTo(x, y)
		}
	}
	return p.Close()
}

// RenderStones appends a shadow, a shaded body and a highlight for every
// stone, in insertion order.
func RenderStones(vs *VectorScene, stones []Stone, w, h int) {
	for _, s := range stones {
		c := percentToPixel(s.X, s.Y, w, h)
		rx := s.Size.Radius()
		ry := rx * 0.65

		vs.Ellipse(LayerStones, PartStoneShadow, Vec2{c.X + rx*0.2, c.Y + ry*0.55}, rx*1.05, ry*0.6, 0, Solid(stoneShadow), 0.35)
		body := RadialPaint(c.X-rx*0.35, c.Y-ry*0.45, rx*0.1, c.X, c.Y, rx*1.1,
			GradientStop{0, stoneBase.Scale(1.35)},
			GradientStop{0.6, stoneBase},
			GradientStop{1, stoneBase.Scale(0.55)},
		)
		vs.Ellipse(LayerStones, PartStone, c, rx, ry, 0, body, 0)
		vs.Ellipse(LayerStones, PartStoneHighlight, Vec2{c.X - rx*0.35, c.Y - ry*0.4}, rx*0.3, ry*0.2, -0.3, Solid(stoneHighlight), 0.45)
	}
}

// RenderConstellation links the stars that earned the current milestone and
// draws a badge in the milestone color. Nothing is added below the first
// milestone.
func RenderConstellation(vs *VectorScene, stars []Star, w, h int) {
	m, ok := Achieved(len(stars))
	if !ok {
		return
	}
	var line Path
	for i, s := range stars[:m.RequiredStars] {
		c := percentToPixel(s.X, s.Y, w, h)
		if i == 0 {
			line = line.MoveTo(c.X, c.Y)
		} else {
			line = line.LineTo(c.X, c.Y)
		}
	}
	vs.StrokePath(LayerConstellation, PartConstellationLine, line, Solid(m.Color), 1.5, 0.45)

	// Badge: one pip per unlocked milestone, the newest one largest.
	for i, ms := range milestones {
		if ms.RequiredStars > m.RequiredStars {
			break
		}
		r := 5.0
		if ms.Name == m.Name {
			r = 9
		}
		c := Vec2{22 + float64(i)*24, 22}
		halo := RadialPaint(c.X, c.Y, 0, c.X, c.Y, r*2,
			GradientStop{0, ms.Color.WithAlpha(0.6)},
			GradientStop{1, ms.Color.WithAlpha(0)},
		)
		vs.Circle(LayerBadge, PartBadge, c, r*2, halo, 0)
		vs.Circle(LayerBadge, PartBadge, c, r, Solid(ms.Color), 0)
	}
}
