package sanctuary

import (
	"errors"
	"strings"
)

// Star is an emotion star placed on the sky. X and Y are percentages of the
// canvas size in [0, 100].
type Star struct {
	X, Y    float64
	Emotion Emotion
	Color   Color
	Size    float64
}

// Stone is a shaded stone placed in the garden. X and Y are percentages.
type Stone struct {
	X, Y float64
	Size StoneSize
}

// GratitudeLeaf is one logged gratitude entry. Only the count of leaves
// shapes the tree; the text is for display.
type GratitudeLeaf struct {
	Text string
}

// ErrEmptyLeaf is returned when a gratitude entry is blank after trimming.
var ErrEmptyLeaf = errors.New("sanctuary: empty gratitude entry")

// GardenState owns the star, stone and leaf collections. Collections only
// grow, except through the explicit Clear methods; leaves have no clear.
type GardenState struct {
	stars  []Star
	stones []Stone
	leaves []GratitudeLeaf
}

// Stars returns the placed stars in insertion order. The returned slice MUST
// NOT be mutated.
func (g *GardenState) Stars() []Star { return g.stars }

// Stones returns the placed stones in insertion order. The returned slice
// MUST NOT be mutated.
func (g *GardenState) Stones() []Stone { return g.stones }

// Leaves returns the gratitude leaves in insertion order. The returned slice
// MUST NOT be mutated.
func (g *GardenState) Leaves() []GratitudeLeaf { return g.leaves }

// StarCount returns the number of placed stars.
func (g *GardenState) StarCount() int { return len(g.stars) }

// StoneCount returns the number of placed stones.
func (g *GardenState) StoneCount() int { return len(g.stones) }

// LeafCount returns the number of gratitude leaves.
func (g *GardenState) LeafCount() int { return len(g.leaves) }

// AddStar appends s with its coordinates clamped to [0, 100].
func (g *GardenState) AddStar(s Star) {
	s.X, s.Y = clampPercent(s.X), clampPercent(s.Y)
	g.stars = append(g.stars, s)
}

// AddStone appends s with its coordinates clamped to [0, 100].
func (g *GardenState) AddStone(s Stone) {
	s.X, s.Y = clampPercent(s.X), clampPercent(s.Y)
	g.stones = append(g.stones, s)
}

// AddLeaf appends a gratitude leaf. Blank text is rejected.
func (g *GardenState) AddLeaf(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyLeaf
	}
	g.leaves = append(g.leaves, GratitudeLeaf{Text: text})
	return nil
}

// ClearStars removes every star.
func (g *GardenState) ClearStars() {
	g.stars = g.stars[:0:0]
}

// ClearStones removes every stone.
func (g *GardenState) ClearStones() {
	g.stones = g.stones[:0:0]
}

func clampPercent(v float64) float64 {
	return clamp(v, 0, 100)
}
