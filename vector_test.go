package sanctuary

import "testing"

// --- Sort ---

func TestVectorSceneSortStable(t *testing.T) {
	vs := NewVectorScene(8)
	red := Solid(RGB8(255, 0, 0))
	vs.Circle(LayerStars, PartStar, Vec2{1, 0}, 1, red, 0)
	vs.Circle(LayerTrunk, PartTrunk, Vec2{2, 0}, 1, red, 0)
	vs.Circle(LayerStars, PartStar, Vec2{3, 0}, 1, red, 0)
	vs.Circle(LayerGroundShadow, PartGroundShadow, Vec2{4, 0}, 1, red, 0)
	vs.Circle(LayerTrunk, PartTrunk, Vec2{5, 0}, 1, red, 0)

	got := vs.Primitives()
	want := []float64{4, 2, 5, 1, 3}
	for i, x := range want {
		if got[i].Center.X != x {
			t.Errorf("position %d: X = %v, want %v", i, got[i].Center.X, x)
		}
	}
}

func TestVectorSceneSortLarge(t *testing.T) {
	vs := NewVectorScene(0)
	for i := range 1000 {
		vs.Circle(Layer(i%5), PartLeaf, Vec2{float64(i), 0}, 1, Solid(ColorWhite), 0)
	}
	prims := vs.Primitives()
	for i := 1; i < len(prims); i++ {
		a, b := prims[i-1], prims[i]
		if a.Layer > b.Layer || a.Layer == b.Layer && a.Center.X > b.Center.X {
			t.Fatalf("order broken at %d", i)
		}
	}
}

func TestVectorSceneCountAndReset(t *testing.T) {
	vs := NewVectorScene(4)
	vs.Circle(LayerLeaves, PartLeaf, Vec2{}, 1, Solid(ColorWhite), 0)
	vs.Circle(LayerLeaves, PartLeaf, Vec2{}, 1, Solid(ColorWhite), 0)
	vs.StrokePath(LayerGrass, PartGrass, Path{}.MoveTo(0, 0).LineTo(1, 1), Solid(ColorWhite), 1, 0)
	if vs.Len() != 3 || vs.Count(PartLeaf) != 2 || vs.Count(PartGrass) != 1 {
		t.Errorf("Len = %d, leaves = %d, grass = %d", vs.Len(), vs.Count(PartLeaf), vs.Count(PartGrass))
	}
	vs.Reset()
	if vs.Len() != 0 {
		t.Errorf("Len after Reset = %d", vs.Len())
	}
}

func TestVectorSceneAppend(t *testing.T) {
	a := NewVectorScene(2)
	a.Circle(LayerStars, PartStar, Vec2{1, 0}, 1, Solid(ColorWhite), 0)
	b := NewVectorScene(2)
	b.Circle(LayerTrunk, PartTrunk, Vec2{2, 0}, 1, Solid(ColorWhite), 0)
	a.Append(b)
	prims := a.Primitives()
	if len(prims) != 2 || prims[0].Part != PartTrunk {
		t.Errorf("Append did not re-sort: %+v", prims)
	}
}

// --- Path ---

func TestPathEnd(t *testing.T) {
	p := Path{}.MoveTo(0, 0).QuadTo(5, 5, 10, 2).CubicTo(1, 1, 2, 2, 7, 8)
	if end := p.End(); end != (Vec2{7, 8}) {
		t.Errorf("End = %v", end)
	}
	if len(p.Close()) != len(p)+1 {
		t.Error("Close did not append an op")
	}
}

// --- Draw ---

func TestVectorSceneDrawPaints(t *testing.T) {
	s := NewSurface(40, 40)
	vs := NewVectorScene(2)
	vs.Circle(LayerStones, PartStone, Vec2{20, 20}, 10, Solid(RGB8(255, 0, 0)), 0)
	vs.Ellipse(LayerStars, PartStar, Vec2{20, 20}, 3, 3, 0, Solid(RGB8(0, 0, 255)), 0)
	vs.Draw(s)

	if c := s.At(20, 20); c.B < 200 || c.R > 50 {
		t.Errorf("center = %+v, want blue on top", c)
	}
	if c := s.At(20, 13); c.R < 200 {
		t.Errorf("ring = %+v, want red", c)
	}
	if c := s.At(1, 1); c.A != 0 {
		t.Errorf("corner = %+v, want untouched", c)
	}
}

func TestVectorSceneDrawGradientsAndOpacity(t *testing.T) {
	s := NewSurface(40, 40)
	vs := NewVectorScene(2)
	vs.FillPath(LayerTrunk, PartTrunk, Path{}.MoveTo(0, 0).LineTo(40, 0).LineTo(40, 20).LineTo(0, 20).Close(),
		LinearPaint(0, 0, 40, 0, GradientStop{0, RGB8(0, 0, 0)}, GradientStop{1, RGB8(255, 255, 255)}), 0)
	vs.Circle(LayerStars, PartStarGlow, Vec2{20, 30}, 8,
		RadialPaint(20, 30, 0, 20, 30, 8, GradientStop{0, ColorWhite}, GradientStop{1, ColorWhite.WithAlpha(0)}), 0.5)
	vs.Draw(s)

	left, right := s.At(2, 10), s.At(37, 10)
	if left.R >= right.R {
		t.Errorf("linear gradient not increasing: %v -> %v", left.R, right.R)
	}
	if c := s.At(20, 30); c.A == 0 || c.A > 200 {
		t.Errorf("half-opacity glow alpha = %d", c.A)
	}
}

func TestVectorSceneOpacityAppliesToEveryPaint(t *testing.T) {
	white := []GradientStop{{0, ColorWhite}, {1, ColorWhite}}
	tests := []struct {
		name  string
		paint Paint
	}{
		{"solid", Solid(ColorWhite)},
		{"linear", LinearPaint(0, 0, 20, 0, white...)},
		{"radial", RadialPaint(10, 10, 0, 10, 10, 10, white...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(20, 20)
			s.Fill(RGB8(0, 0, 0))
			vs := NewVectorScene(1)
			vs.Circle(LayerStars, PartStarGlow, Vec2{10, 10}, 8, tt.paint, 0.25)
			vs.Draw(s)
			if r := s.At(10, 10).R; r < 62 || r > 66 {
				t.Errorf("quarter-opacity white over black: R = %d, want ~64", r)
			}
		})
	}
}

func TestVectorSceneDrawNilSurfacePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	NewVectorScene(0).Draw(nil)
}
