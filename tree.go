package sanctuary

import (
	"math"
	"math/rand/v2"
)

// Tree part limits.
const (
	maxClusters     = 12
	maxLeafSpecks   = 60
	maxFlowers      = 20
	grassBlades     = 30
	flowerPetals    = 6
	maxCanopyRadius = 120.0
)

var (
	barkDark  = RGB8(74, 48, 28)
	barkMid   = RGB8(120, 82, 50)
	barkLight = RGB8(150, 108, 70)
	rootColor = RGB8(88, 58, 34)

	// foliagePalette runs from the shaded back of the canopy to its lit front.
	foliagePalette = [5]Color{
		RGB8(34, 85, 34),
		RGB8(46, 110, 46),
		RGB8(60, 135, 55),
		RGB8(85, 160, 70),
		RGB8(110, 185, 90),
	}
	leafPalette = [5]Color{
		RGB8(50, 120, 50),
		RGB8(70, 145, 60),
		RGB8(95, 170, 75),
		RGB8(40, 100, 45),
		RGB8(120, 190, 95),
	}
	flowerPalette = [5]Color{
		RGB8(255, 182, 193),
		RGB8(255, 250, 240),
		RGB8(221, 160, 221),
		RGB8(255, 218, 185),
		RGB8(255, 239, 150),
	}
	grassShades = [3]Color{
		RGB8(74, 124, 58),
		RGB8(96, 146, 70),
		RGB8(58, 104, 48),
	}
	foliageShadow = RGB8(16, 40, 20)
	lightDir      = Vec2{-0.6, -0.8}
)

// treeGeometry carries the derived positions every layer builds on.
type treeGeometry struct {
	m            TreeMorphology
	base         Vec2 // center of the trunk at ground level
	top          Vec2 // tip of the trunk
	halfWidth    float64
	canopy       Vec2 // canopy center
	canopyRadius float64
}

func newTreeGeometry(m TreeMorphology, base Vec2) treeGeometry {
	r := math.Min(35+float64(m.LeafCount)*2.5, maxCanopyRadius)
	top := Vec2{base.X, base.Y - m.TrunkHeight}
	return treeGeometry{
		m:            m,
		base:         base,
		top:          top,
		halfWidth:    m.TrunkWidth / 2,
		canopy:       Vec2{top.X, top.Y + r*0.15},
		canopyRadius: r,
	}
}

// trunkHalfWidthAt returns the trunk half-width at height y above the base.
func (g *treeGeometry) trunkHalfWidthAt(y float64) float64 {
	t := clamp01(y / g.m.TrunkHeight)
	return g.halfWidth * (1 - t) * (1 - 0.3*t)
}

// ringPoint returns the point at angle a and distance d from the canopy
// center. The ring is squashed vertically so the canopy reads as a crown.
func (g *treeGeometry) ringPoint(a, d float64) Vec2 {
	return Vec2{g.canopy.X + math.Cos(a)*d, g.canopy.Y + math.Sin(a)*d*0.8}
}

// RenderTree builds the tree for m standing at base (ground-level trunk
// center). Organic jitter is drawn from r; the primitive structure depends
// only on m.
func RenderTree(m TreeMorphology, base Vec2, r *rand.Rand) *VectorScene {
	vs := NewVectorScene(512)
	AppendTree(vs, m, base, r)
	return vs
}

// AppendTree adds the tree's primitives to vs after those already present.
func AppendTree(vs *VectorScene, m TreeMorphology, base Vec2, r *rand.Rand) {
	g := newTreeGeometry(m, base)

	g.groundShadow(vs)
	if m.HasRoots {
		g.roots(vs, r)
	}
	g.trunk(vs, r)
	g.branches(vs, r)
	g.clusters(vs, r)
	g.leaves(vs, r)
	if m.FlowersEnabled {
		g.flowers(vs, r)
	}
	g.grass(vs, r)
}

func (g *treeGeometry) groundShadow(vs *VectorScene) {
	rx := g.m.TrunkWidth*1.6 + 20
	ry := 10 + g.m.TrunkWidth*0.2
	c := Vec2{g.base.X, g.base.Y + 4}
	fill := RadialPaint(c.X, c.Y, 0, c.X, c.Y, rx,
		GradientStop{0, Color{0, 0, 0, 0.35}},
		GradientStop{1, Color{0, 0, 0, 0}},
	)
	vs.Ellipse(LayerGroundShadow, PartGroundShadow, c, rx, ry, 0, fill, 0)
}

func (g *treeGeometry) roots(vs *VectorScene, r *rand.Rand) {
	n := 2
	if g.m.Stage >= StageFlourishing {
		n = 3
	}
	sides := [3]float64{-1, 1, -0.2}
	for i := range n {
		side := sides[i]
		sx := g.base.X + side*g.halfWidth*0.6
		reach := g.halfWidth + 18 + r.Float64()*14
		ex := g.base.X + side*reach
		ey := g.base.Y + 8 + r.Float64()*8
		if i == 2 {
			ex, ey = g.base.X+side*reach, g.base.Y+16+r.Float64()*6
		}
		path := Path{}.
			MoveTo(sx, g.base.Y-2).
			QuadTo((sx+ex)/2, g.base.Y+2, ex, ey)
		vs.StrokePath(LayerRoots, PartRoot, path, Solid(rootColor), math.Max(3, g.m.TrunkWidth*0.18), 0.7)
	}
}

func (g *treeGeometry) trunk(vs *VectorScene, r *rand.Rand) {
	bx, by := g.base.X, g.base.Y
	hw, th := g.halfWidth, g.m.TrunkHeight

	outline := Path{}.
		MoveTo(bx-hw, by).
		QuadTo(bx-hw*0.35, by-th*0.5, g.top.X, g.top.Y).
		QuadTo(bx+hw*0.35, by-th*0.5, bx+hw, by).
		Close()
	bark := LinearPaint(bx-hw, 0, bx+hw, 0,
		GradientStop{0, barkDark},
		GradientStop{0.35, barkLight},
		GradientStop{0.6, barkMid},
		GradientStop{1, barkDark},
	)
	vs.FillPath(LayerTrunk, PartTrunk, outline, bark, 0)

	// Bark texture: a tiled grid of short grain strokes clipped to the
	// trunk silhouette, drawn at reduced opacity.
	const tileW, tileH = 7.0, 12.0
	for y := 6.0; y < th*0.92; y += tileH {
		w := g.trunkHalfWidthAt(y) * 0.8
		for x := -w; x <= w; x += tileW {
			px := bx + x + (r.Float64()-0.5)*2
			py := by - y
			grain := Path{}.
				MoveTo(px, py).
				QuadTo(px+1.5, py-tileH*0.4, px, py-tileH*0.7)
			vs.StrokePath(LayerTrunk, PartBark, grain, Solid(barkDark), 1, 0.25)
		}
	}

	// Cylindrical depth: a lit left edge and a shaded right edge.
	left := Path{}.
		MoveTo(bx-hw*0.7, by-4).
		QuadTo(bx-hw*0.3, by-th*0.5, g.top.X-1, g.top.Y+th*0.12)
	vs.StrokePath(LayerTrunk, PartTrunkEdge, left, Solid(barkLight.Scale(1.2)), 2, 0.5)
	right := Path{}.
		MoveTo(bx+hw*0.7, by-4).
		QuadTo(bx+hw*0.3, by-th*0.5, g.top.X+1, g.top.Y+th*0.12)
	vs.StrokePath(LayerTrunk, PartTrunkEdge, right, Solid(barkDark.Scale(0.7)), 2, 0.5)
}

func (g *treeGeometry) branches(vs *VectorScene, r *rand.Rand) {
	n := g.m.DrawnBranches()
	for i := range n {
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		h := g.m.TrunkHeight * (0.45 + 0.45*float64(i)/float64(n))
		start := Vec2{g.base.X + side*g.trunkHalfWidthAt(h)*0.5, g.base.Y - h}
		length := 30 + float64(i)*6 + g.m.TrunkWidth*0.4
		angle := 0.35 + float64(i)*0.06 + (r.Float64()-0.5)*0.1
		end := Vec2{start.X + side*math.Cos(angle)*length, start.Y - math.Sin(angle)*length}
		ctrl := Vec2{(start.X + end.X) / 2, (start.Y+end.Y)/2 - length*0.2 - r.Float64()*6}
		width := math.Max(2, g.m.TrunkWidth*0.22-float64(i)*0.9)

		shadow := Path{}.MoveTo(start.X+2, start.Y+2).QuadTo(ctrl.X+2, ctrl.Y+2, end.X+2, end.Y+2)
		vs.StrokePath(LayerBranches, PartBranchShadow, shadow, Solid(barkDark.Scale(0.5)), width, 0.35)
		limb := Path{}.MoveTo(start.X, start.Y).QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
		vs.StrokePath(LayerBranches, PartBranch, limb, Solid(barkMid), width, 0)

		if i >= 8 && i%2 == 0 {
			// Quadratic point at t = 0.6 along the parent limb.
			t := 0.6
			fork := Vec2{
				(1-t)*(1-t)*start.X + 2*(1-t)*t*ctrl.X + t*t*end.X,
				(1-t)*(1-t)*start.Y + 2*(1-t)*t*ctrl.Y + t*t*end.Y,
			}
			subLen := length * 0.45
			subAngle := angle + 0.5
			subEnd := Vec2{fork.X + side*math.Cos(subAngle)*subLen, fork.Y - math.Sin(subAngle)*subLen}
			sub := Path{}.
				MoveTo(fork.X, fork.Y).
				QuadTo((fork.X+subEnd.X)/2, (fork.Y+subEnd.Y)/2-subLen*0.15, subEnd.X, subEnd.Y)
			vs.StrokePath(LayerBranches, PartSubBranch, sub, Solid(barkMid), width*0.6, 0)
		}
	}
}

// clusterCount is how many foliage clusters ring the canopy.
func clusterCount(m TreeMorphology) int {
	return min(3+m.LeafCount/2, maxClusters)
}

// leafSpeckCount is how many small leaf ellipses texture the canopy.
func leafSpeckCount(m TreeMorphology) int {
	return min(10+m.LeafCount*3, maxLeafSpecks)
}

// flowerCount is how many flowers bloom once flowers are enabled.
func flowerCount(m TreeMorphology) int {
	if !m.FlowersEnabled {
		return 0
	}
	return min(m.LeafCount-5, maxFlowers)
}

func (g *treeGeometry) clusters(vs *VectorScene, r *rand.Rand) {
	n := clusterCount(g.m)
	R := g.canopyRadius
	for i := range n {
		a := float64(i)*2*math.Pi/float64(n) + (r.Float64()-0.5)*0.3
		c := g.ringPoint(a, R*0.55)
		radius := R*0.45 + (r.Float64()-0.5)*R*0.1
		base := foliagePalette[paletteIndex(a, len(foliagePalette))]

		vs.Circle(LayerFoliage, PartClusterShadow, Vec2{c.X + 4, c.Y + 5}, radius, Solid(foliageShadow), 0.3)

		lx, ly := c.X+lightDir.X*radius*0.4, c.Y+lightDir.Y*radius*0.4
		fill := RadialPaint(lx, ly, radius*0.1, c.X, c.Y, radius,
			GradientStop{0, base.Scale(1.25)},
			GradientStop{0.7, base},
			GradientStop{1, base.Scale(0.8)},
		)
		vs.Circle(LayerFoliage, PartCluster, c, radius, fill, 0.95)
		vs.Circle(LayerFoliage, PartClusterHighlight,
			Vec2{c.X + lightDir.X*radius*0.3, c.Y + lightDir.Y*radius*0.3},
			radius*0.45, Solid(foliagePalette[4].Scale(1.15)), 0.35)
	}
}

// paletteIndex maps angle a onto one of n palette steps. Angles near the
// top-left (toward the light) pick brighter steps.
func paletteIndex(a float64, n int) int {
	lightAngle := math.Atan2(lightDir.Y, lightDir.X)
	d := math.Abs(math.Remainder(a-lightAngle, 2*math.Pi)) // 0 toward light, π away
	idx := n - 1 - int(d/math.Pi*float64(n))
	return max(0, min(idx, n-1))
}

func (g *treeGeometry) leaves(vs *VectorScene, r *rand.Rand) {
	n := leafSpeckCount(g.m)
	R := g.canopyRadius
	for range n {
		a := r.Float64() * 2 * math.Pi
		c := g.ringPoint(a, R*(0.3+r.Float64()*0.7))
		rx := 4 + r.Float64()*3
		ry := 2 + r.Float64()*1.5
		col := leafPalette[r.IntN(len(leafPalette))]
		vs.Ellipse(LayerLeaves, PartLeaf, c, rx, ry, r.Float64()*math.Pi, Solid(col), 0.85)
	}
}

func (g *treeGeometry) flowers(vs *VectorScene, r *rand.Rand) {
	n := flowerCount(g.m)
	R := g.canopyRadius
	const goldenAngle = 2.399963229728653
	for i := range n {
		a := float64(i)*goldenAngle + (r.Float64()-0.5)*0.2
		c := g.ringPoint(a, R*(0.55+r.Float64()*0.35))
		petalR := 3.5 + r.Float64()*1.5
		col := flowerPalette[i%len(flowerPalette)]
		spin := r.Float64() * math.Pi / 3
		for k := range flowerPetals {
			theta := spin + float64(k)*math.Pi/3
			pc := Vec2{c.X + math.Cos(theta)*petalR, c.Y + math.Sin(theta)*petalR}
			vs.Ellipse(LayerFlowers, PartPetal, pc, petalR, petalR*0.55, theta, Solid(col), 0.95)
		}
		vs.Circle(LayerFlowers, PartFlowerCenter, c, petalR*0.6, Solid(RGB8(255, 200, 60)), 0)
		vs.Circle(LayerFlowers, PartFlowerCenter, c, petalR*0.3, Solid(RGB8(230, 130, 40)), 0)
	}
}

func (g *treeGeometry) grass(vs *VectorScene, r *rand.Rand) {
	span := g.m.TrunkWidth + 80
	step := 2 * span / (grassBlades - 1)
	for i := range grassBlades {
		x := g.base.X - span + float64(i)*step
		h := 8 + float64(i%3)*3 + r.Float64()*4
		sway := math.Sin(float64(i)*0.7) * 4
		blade := Path{}.
			MoveTo(x, g.base.Y+2).
			QuadTo(x+sway*0.5, g.base.Y-h*0.6, x+sway, g.base.Y-h)
		vs.StrokePath(LayerGrass, PartGrass, blade, Solid(grassShades[i%3]), 1.5, 0.9)
	}
}
