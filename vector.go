package sanctuary

import (
	"math"

	"github.com/tfriedel6/canvas"
)

// Layer orders primitives within a VectorScene. Lower layers draw first.
type Layer uint8

const (
	LayerGroundShadow Layer = iota
	LayerRoots
	LayerTrunk
	LayerBranches
	LayerFoliage
	LayerLeaves
	LayerFlowers
	LayerGrass
	LayerStones
	LayerConstellation
	LayerStars
	LayerBadge
)

// Part tags what a primitive depicts, for inspection and counting.
type Part uint8

const (
	PartGroundShadow Part = iota
	PartRoot
	PartTrunk
	PartBark
	PartTrunkEdge
	PartBranchShadow
	PartBranch
	PartSubBranch
	PartClusterShadow
	PartCluster
	PartClusterHighlight
	PartLeaf
	PartPetal
	PartFlowerCenter
	PartGrass
	PartStoneShadow
	PartStone
	PartStoneHighlight
	PartStarGlow
	PartStar
	PartConstellationLine
	PartBadge
)

// PrimitiveKind selects the geometry of a Primitive.
type PrimitiveKind uint8

const (
	PrimEllipse PrimitiveKind = iota // Center, RX, RY, Rotation
	PrimPath                         // Path ops
	PrimRect                         // Rect
)

// PaintKind selects how a Paint colors pixels.
type PaintKind uint8

const (
	PaintNone PaintKind = iota
	PaintSolid
	PaintLinear
	PaintRadial
)

// GradientStop is one color stop of a gradient paint.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Paint is a fill or stroke style. The zero value paints nothing.
type Paint struct {
	Kind  PaintKind
	Color Color
	// Gradient geometry. Linear uses (X0,Y0)->(X1,Y1); radial additionally
	// uses R0 and R1.
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
}

// Solid returns a single-color paint.
func Solid(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// LinearPaint returns a linear gradient from (x0, y0) to (x1, y1).
func LinearPaint(x0, y0, x1, y1 float64, stops ...GradientStop) Paint {
	return Paint{Kind: PaintLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// RadialPaint returns a radial gradient between two circles.
func RadialPaint(x0, y0, r0, x1, y1, r1 float64, stops ...GradientStop) Paint {
	return Paint{Kind: PaintRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}
}

// PathOpType identifies a path segment command.
type PathOpType uint8

const (
	OpMoveTo PathOpType = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// PathOp is one path command. Pts holds up to three points: the end point
// for move/line, control+end for quad, two controls+end for cubic.
type PathOp struct {
	Op  PathOpType
	Pts [3]Vec2
}

// Path accumulates path commands.
type Path []PathOp

// MoveTo starts a new sub-path.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, PathOp{Op: OpMoveTo, Pts: [3]Vec2{{x, y}}})
}

// LineTo adds a straight segment.
func (p Path) LineTo(x, y float64) Path {
	return append(p, PathOp{Op: OpLineTo, Pts: [3]Vec2{{x, y}}})
}

// QuadTo adds a quadratic curve through control (cx, cy).
func (p Path) QuadTo(cx, cy, x, y float64) Path {
	return append(p, PathOp{Op: OpQuadTo, Pts: [3]Vec2{{cx, cy}, {x, y}}})
}

// CubicTo adds a cubic bezier curve.
func (p Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, PathOp{Op: OpCubicTo, Pts: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current sub-path.
func (p Path) Close() Path {
	return append(p, PathOp{Op: OpClose})
}

// End returns the last point of the path, or the zero vector for an empty path.
func (p Path) End() Vec2 {
	for i := len(p) - 1; i >= 0; i-- {
		switch p[i].Op {
		case OpMoveTo, OpLineTo:
			return p[i].Pts[0]
		case OpQuadTo:
			return p[i].Pts[1]
		case OpCubicTo:
			return p[i].Pts[2]
		}
	}
	return Vec2{}
}

// Primitive is a single drawable emitted by a renderer.
type Primitive struct {
	Kind  PrimitiveKind
	Layer Layer
	Part  Part

	Center   Vec2
	RX, RY   float64
	Rotation float64
	Rect     Rect
	Path     Path

	Fill      Paint
	Stroke    Paint
	LineWidth float64
	// Opacity multiplies the alpha of both fill and stroke. Zero is treated
	// as fully opaque.
	Opacity float64

	order int // insertion order, for a stable sort within a layer
}

// Anchor returns a representative point of the primitive: the center for
// ellipses, the top-left for rects, and the end point for paths.
func (p *Primitive) Anchor() Vec2 {
	switch p.Kind {
	case PrimRect:
		return Vec2{p.Rect.X, p.Rect.Y}
	case PrimPath:
		return p.Path.End()
	default:
		return p.Center
	}
}

// VectorScene is an ordered set of primitives, drawn bottom-up by layer and,
// within a layer, in insertion order.
type VectorScene struct {
	prims  []Primitive
	sorted bool
	buf    []Primitive
}

// NewVectorScene returns an empty scene with room for n primitives.
func NewVectorScene(n int) *VectorScene {
	return &VectorScene{prims: make([]Primitive, 0, n), sorted: true}
}

// Add appends p to the scene.
func (vs *VectorScene) Add(p Primitive) {
	p.order = len(vs.prims)
	if n := len(vs.prims); n > 0 && vs.prims[n-1].Layer > p.Layer {
		vs.sorted = false
	}
	vs.prims = append(vs.prims, p)
}

// Ellipse adds a filled ellipse.
func (vs *VectorScene) Ellipse(layer Layer, part Part, c Vec2, rx, ry, rotation float64, fill Paint, opacity float64) {
	vs.Add(Primitive{
		Kind: PrimEllipse, Layer: layer, Part: part,
		Center: c, RX: rx, RY: ry, Rotation: rotation,
		Fill: fill, Opacity: opacity,
	})
}

// Circle adds a filled circle.
func (vs *VectorScene) Circle(layer Layer, part Part, c Vec2, r float64, fill Paint, opacity float64) {
	vs.Ellipse(layer, part, c, r, r, 0, fill, opacity)
}

// StrokePath adds a stroked, unfilled path.
func (vs *VectorScene) StrokePath(layer Layer, part Part, path Path, stroke Paint, width, opacity float64) {
	vs.Add(Primitive{
		Kind: PrimPath, Layer: layer, Part: part,
		Path: path, Stroke: stroke, LineWidth: width, Opacity: opacity,
	})
}

// FillPath adds a filled path.
func (vs *VectorScene) FillPath(layer Layer, part Part, path Path, fill Paint, opacity float64) {
	vs.Add(Primitive{
		Kind: PrimPath, Layer: layer, Part: part,
		Path: path, Fill: fill, Opacity: opacity,
	})
}

// Reset empties the scene, keeping its storage.
func (vs *VectorScene) Reset() {
	vs.prims = vs.prims[:0]
	vs.sorted = true
}

// Len returns the number of primitives.
func (vs *VectorScene) Len() int {
	return len(vs.prims)
}

// Count returns how many primitives depict part.
func (vs *VectorScene) Count(part Part) int {
	n := 0
	for i := range vs.prims {
		if vs.prims[i].Part == part {
			n++
		}
	}
	return n
}

// Primitives returns the primitives in draw order. The returned slice MUST
// NOT be mutated.
func (vs *VectorScene) Primitives() []Primitive {
	vs.Sort()
	return vs.prims
}

// Append adds every primitive of other after the primitives already present.
func (vs *VectorScene) Append(other *VectorScene) {
	for _, p := range other.prims {
		vs.Add(p)
	}
}

// Sort orders primitives by layer, keeping insertion order within a layer.
// Bottom-up merge sort; stable and allocation-free after the first call.
func (vs *VectorScene) Sort() {
	if vs.sorted {
		return
	}
	n := len(vs.prims)
	if cap(vs.buf) < n {
		vs.buf = make([]Primitive, n)
	}
	vs.buf = vs.buf[:n]

	a, b := vs.prims, vs.buf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			mid := min(i+width, n)
			hi := min(i+2*width, n)
			mergePrims(a, b, i, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(vs.prims, vs.buf)
	}
	vs.sorted = true
}

func mergePrims(src, dst []Primitive, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if primLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

func primLessOrEqual(a, b *Primitive) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	return a.order <= b.order
}

// Draw rasterizes the scene onto s.
func (vs *VectorScene) Draw(s *Surface) {
	mustSurface(s, "VectorScene.Draw")
	vs.Sort()
	cv := s.cv
	for i := range vs.prims {
		drawPrimitive(cv, &vs.prims[i])
	}
}

func drawPrimitive(cv *canvas.Canvas, p *Primitive) {
	cv.Save()
	defer cv.Restore()

	cv.BeginPath()
	switch p.Kind {
	case PrimEllipse:
		cv.Ellipse(p.Center.X, p.Center.Y, p.RX, p.RY, p.Rotation, 0, 2*math.Pi, false)
	case PrimRect:
		cv.Rect(p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height)
	case PrimPath:
		for _, op := range p.Path {
			switch op.Op {
			case OpMoveTo:
				cv.MoveTo(op.Pts[0].X, op.Pts[0].Y)
			case OpLineTo:
				cv.LineTo(op.Pts[0].X, op.Pts[0].Y)
			case OpQuadTo:
				cv.QuadraticCurveTo(op.Pts[0].X, op.Pts[0].Y, op.Pts[1].X, op.Pts[1].Y)
			case OpCubicTo:
				cv.BezierCurveTo(op.Pts[0].X, op.Pts[0].Y, op.Pts[1].X, op.Pts[1].Y, op.Pts[2].X, op.Pts[2].Y)
			case OpClose:
				cv.ClosePath()
			}
		}
	}

	if p.Fill.Kind != PaintNone {
		applyPaint(cv, p.Fill, p.alpha(), cv.SetFillStyle)
		cv.Fill()
	}
	if p.Stroke.Kind != PaintNone && p.LineWidth > 0 {
		applyPaint(cv, p.Stroke, p.alpha(), cv.SetStrokeStyle)
		cv.SetLineWidth(p.LineWidth)
		cv.SetLineCap(canvas.Round)
		cv.SetLineJoin(canvas.Round)
		cv.Stroke()
	}
}

// alpha is the primitive's opacity multiplier. Zero means fully opaque.
func (p *Primitive) alpha() float64 {
	if p.Opacity <= 0 {
		return 1
	}
	return clamp01(p.Opacity)
}

// applyPaint resolves a Paint into a canvas style and hands it to set. The
// opacity is folded into every color since the software backend applies
// global alpha to solid colors only.
func applyPaint(cv *canvas.Canvas, pt Paint, opacity float64, set func(...interface{})) {
	switch pt.Kind {
	case PaintSolid:
		set(fade(pt.Color, opacity).canvasColor())
	case PaintLinear:
		g := cv.CreateLinearGradient(pt.X0, pt.Y0, pt.X1, pt.Y1)
		for _, st := range pt.Stops {
			g.AddColorStop(st.Offset, fade(st.Color, opacity).canvasColor())
		}
		set(g)
	case PaintRadial:
		g := cv.CreateRadialGradient(pt.X0, pt.Y0, pt.R0, pt.X1, pt.Y1, pt.R1)
		for _, st := range pt.Stops {
			g.AddColorStop(st.Offset, fade(st.Color, opacity).canvasColor())
		}
		set(g)
	}
}

func fade(c Color, opacity float64) Color {
	c.A *= opacity
	return c
}
