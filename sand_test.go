package sanctuary

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestDeformer() (*Surface, *SandDeformer) {
	s := composeSeeded(200, 120, 2)
	return s, NewSandDeformer(s, rand.New(rand.NewPCG(7, 7)))
}

func TestSandDeformerSingleActiveStroke(t *testing.T) {
	_, d := newTestDeformer()
	if !d.Begin(50, 90) {
		t.Fatal("Begin failed")
	}
	if d.Begin(60, 90) {
		t.Error("second Begin while active should be rejected")
	}
	if d.Strokes() != 1 {
		t.Errorf("Strokes = %d, want 1", d.Strokes())
	}
	d.End()
	if d.Active() {
		t.Error("still active after End")
	}
	d.End() // no-op
	if !d.Begin(60, 90) || d.Strokes() != 2 {
		t.Error("Begin after End should start a new stroke")
	}
}

func TestSandDeformerRejectsOutOfBounds(t *testing.T) {
	_, d := newTestDeformer()
	if d.Begin(-1, 50) || d.Begin(50, 500) {
		t.Error("Begin accepted an off-surface point")
	}
	d.Begin(50, 90)
	if d.Extend(300, 90) {
		t.Error("Extend accepted an off-surface point")
	}
}

func TestSandDeformerExtendRequiresActive(t *testing.T) {
	s, d := newTestDeformer()
	before := s.Snapshot()
	if d.Extend(80, 90) {
		t.Error("Extend without Begin should do nothing")
	}
	if !bytes.Equal(before.Pix, s.Image().Pix) {
		t.Error("inactive Extend changed pixels")
	}
}

func TestSandDeformerPaintsGroove(t *testing.T) {
	s, d := newTestDeformer()
	before := s.Snapshot()

	d.Begin(40, 90)
	for i := 1; i <= 10; i++ {
		if !d.Extend(40+float64(i)*10, 90) {
			t.Fatalf("Extend %d rejected", i)
		}
	}
	d.End()

	if before.RGBAAt(90, 90) == s.At(90, 90) {
		t.Error("groove center unchanged")
	}
	changed := 0
	for i := 0; i < len(before.Pix); i += 4 {
		if !bytes.Equal(before.Pix[i:i+4], s.Image().Pix[i:i+4]) {
			changed++
		}
	}
	// A 100px segment with a 28px rim covers well over 2000 pixels.
	if changed < 2000 {
		t.Errorf("only %d pixels changed", changed)
	}
	// Far from the stroke nothing changed.
	if before.RGBAAt(5, 5) != s.At(5, 5) {
		t.Error("stroke touched the sky corner")
	}
}

func TestSandDeformerGroovePassBlend(t *testing.T) {
	s := NewSurface(200, 60)
	s.Fill(RGB8(0, 0, 0))
	d := NewSandDeformer(s, rand.New(rand.NewPCG(7, 7)))
	d.Begin(10, 30)
	d.Extend(190, 30)

	// Grains scatter around the segment's end point only, so the middle of
	// the groove shows the five passes alone, blended in order.
	var want [3]float64
	for _, p := range groovePasses {
		a := math.Round(p.opacity*255) / 255
		want[0] += (p.color.R*255 - want[0]) * a
		want[1] += (p.color.G*255 - want[1]) * a
		want[2] += (p.color.B*255 - want[2]) * a
	}
	got := s.At(100, 30)
	for i, ch := range []uint8{got.R, got.G, got.B} {
		if math.Abs(float64(ch)-want[i]) > 3 {
			t.Errorf("groove center = %v, want ~%.0f", got, want)
			break
		}
	}
}
