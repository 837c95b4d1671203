package sanctuary

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func renderTestTree(count int) *VectorScene {
	return RenderTree(MorphologyFor(count), Vec2{400, 450}, rand.New(rand.NewPCG(3, 4)))
}

// --- Part counts ---

func TestRenderTreePartCounts(t *testing.T) {
	tests := []struct {
		count    int
		roots    int
		branches int
		subs     int
		clusters int
		leaves   int
		flowers  int
	}{
		{0, 0, 0, 0, 3, 10, 0},
		{4, 0, 2, 0, 5, 22, 0},
		{12, 2, 6, 0, 9, 46, 7},
		{20, 3, 10, 1, 12, 60, 15},
		{40, 3, 10, 1, 12, 60, 20},
	}
	for _, tt := range tests {
		t.Run(MorphologyFor(tt.count).Stage.String(), func(t *testing.T) {
			vs := renderTestTree(tt.count)
			checks := []struct {
				part Part
				want int
			}{
				{PartGroundShadow, 1},
				{PartRoot, tt.roots},
				{PartTrunk, 1},
				{PartTrunkEdge, 2},
				{PartBranch, tt.branches},
				{PartBranchShadow, tt.branches},
				{PartSubBranch, tt.subs},
				{PartCluster, tt.clusters},
				{PartClusterShadow, tt.clusters},
				{PartClusterHighlight, tt.clusters},
				{PartLeaf, tt.leaves},
				{PartPetal, tt.flowers * 6},
				{PartFlowerCenter, tt.flowers * 2},
				{PartGrass, 30},
			}
			for _, c := range checks {
				if got := vs.Count(c.part); got != c.want {
					t.Errorf("count %d: part %d = %d, want %d", tt.count, c.part, got, c.want)
				}
			}
			if vs.Count(PartBark) == 0 {
				t.Error("trunk has no bark texture")
			}
		})
	}
}

func TestRenderTreeBarkIsTranslucent(t *testing.T) {
	for _, p := range renderTestTree(8).Primitives() {
		if p.Part == PartBark && (p.Opacity <= 0 || p.Opacity >= 1) {
			t.Fatalf("bark opacity = %v, want reduced", p.Opacity)
		}
	}
}

// --- Ordering and determinism ---

func TestRenderTreeLayerOrder(t *testing.T) {
	prims := renderTestTree(20).Primitives()
	for i := 1; i < len(prims); i++ {
		if prims[i].Layer < prims[i-1].Layer {
			t.Fatalf("primitive %d on layer %d drawn after layer %d", i, prims[i].Layer, prims[i-1].Layer)
		}
	}
	if prims[0].Part != PartGroundShadow {
		t.Errorf("first primitive = part %d, want ground shadow", prims[0].Part)
	}
}

func TestRenderTreeDeterministic(t *testing.T) {
	a := renderTestTree(17).Primitives()
	b := renderTestTree(17).Primitives()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and morphology produced different trees")
	}
}

func TestRenderTreeStructureIndependentOfSeed(t *testing.T) {
	m := MorphologyFor(14)
	a := RenderTree(m, Vec2{100, 300}, rand.New(rand.NewPCG(1, 1)))
	b := RenderTree(m, Vec2{100, 300}, rand.New(rand.NewPCG(2, 2)))
	if a.Len() != b.Len() {
		t.Errorf("primitive count depends on seed: %d vs %d", a.Len(), b.Len())
	}
}

func TestRenderTreeGrowsWithLeaves(t *testing.T) {
	prev := renderTestTree(0).Len()
	for _, n := range []int{5, 10, 15, 20} {
		cur := renderTestTree(n).Len()
		if cur <= prev {
			t.Errorf("count %d: %d primitives, not more than %d", n, cur, prev)
		}
		prev = cur
	}
}

func TestPaletteIndexBounds(t *testing.T) {
	for a := -7.0; a < 7; a += 0.1 {
		if i := paletteIndex(a, 5); i < 0 || i > 4 {
			t.Fatalf("paletteIndex(%v) = %d", a, i)
		}
	}
}

func TestAppendTreeAfterExisting(t *testing.T) {
	m := MorphologyFor(12)
	want := RenderTree(m, Vec2{100, 300}, rand.New(rand.NewPCG(5, 5)))

	vs := NewVectorScene(8)
	vs.Circle(LayerStars, PartStar, Vec2{1, 1}, 1, Solid(ColorWhite), 0)
	AppendTree(vs, m, Vec2{100, 300}, rand.New(rand.NewPCG(5, 5)))

	if vs.Len() != want.Len()+1 {
		t.Fatalf("Len = %d, want %d", vs.Len(), want.Len()+1)
	}
	if vs.Count(PartLeaf) != want.Count(PartLeaf) {
		t.Errorf("leaves = %d, want %d", vs.Count(PartLeaf), want.Count(PartLeaf))
	}
}
