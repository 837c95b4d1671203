package sanctuary

import (
	"math/rand/v2"
	"testing"
)

func TestRandomPaletteRanges(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seenEmotion := map[Emotion]bool{}
	seenStone := map[StoneSize]bool{}
	for range 500 {
		e := RandomEmotion(r)
		if e > EmotionLove {
			t.Fatalf("emotion out of range: %d", e)
		}
		seenEmotion[e] = true

		s := RandomStarSize(r)
		if s < 0.8 || s > 1.6 {
			t.Fatalf("star size %v out of [0.8, 1.6]", s)
		}

		st := RandomStoneSize(r)
		if st > StoneLarge {
			t.Fatalf("stone size out of range: %d", st)
		}
		seenStone[st] = true
	}
	if len(seenEmotion) != 5 {
		t.Errorf("saw %d emotions, want 5", len(seenEmotion))
	}
	if len(seenStone) != 3 {
		t.Errorf("saw %d stone sizes, want 3", len(seenStone))
	}
}

func TestEmotionColorAndName(t *testing.T) {
	for _, e := range Emotions {
		if EmotionColor(e) == ColorWhite {
			t.Errorf("%v has no color", e)
		}
		if e.String() == "unknown" {
			t.Errorf("emotion %d has no name", e)
		}
	}
	if EmotionColor(Emotion(42)) != ColorWhite {
		t.Error("unknown emotion should fall back to white")
	}
}

func TestStoneRadiusOrdered(t *testing.T) {
	if !(StoneSmall.Radius() < StoneMedium.Radius() && StoneMedium.Radius() < StoneLarge.Radius()) {
		t.Error("stone radii not ordered by size class")
	}
}

func TestRandomPaletteDeterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for range 20 {
		if RandomEmotion(a) != RandomEmotion(b) || RandomStarSize(a) != RandomStarSize(b) {
			t.Fatal("same seed produced different palette picks")
		}
	}
}

// --- Color helpers ---

func TestColorHelpers(t *testing.T) {
	c := RGB8(255, 0, 128)
	if n := c.NRGBA(); n.R != 255 || n.G != 0 || n.B != 128 || n.A != 255 {
		t.Errorf("NRGBA = %+v", n)
	}
	if got := c.WithAlpha(0.5).A; got != 0.5 {
		t.Errorf("WithAlpha = %v", got)
	}
	if got := c.Scale(2).R; got != 1 {
		t.Errorf("Scale clamps: R = %v", got)
	}
	mid := Color{0, 0, 0, 0}.Lerp(Color{1, 1, 1, 1}, 0.5)
	if mid.R != 0.5 || mid.A != 0.5 {
		t.Errorf("Lerp = %+v", mid)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSand, ModeStar, ModeStone} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("water"); ok {
		t.Error("ParseMode accepted unknown mode")
	}
}
