package sanctuary

import "math/rand/v2"

// Emotion tags a placed star.
type Emotion uint8

const (
	EmotionHope Emotion = iota
	EmotionPeace
	EmotionJoy
	EmotionCalm
	EmotionLove
)

var emotionNames = [...]string{"hope", "peace", "joy", "calm", "love"}

// Emotions lists every emotion in declaration order.
var Emotions = []Emotion{EmotionHope, EmotionPeace, EmotionJoy, EmotionCalm, EmotionLove}

// String returns the emotion name.
func (e Emotion) String() string {
	if int(e) < len(emotionNames) {
		return emotionNames[e]
	}
	return "unknown"
}

var emotionColors = [...]Color{
	EmotionHope:  RGB8(255, 215, 0),
	EmotionPeace: RGB8(0, 255, 255),
	EmotionJoy:   RGB8(255, 105, 180),
	EmotionCalm:  RGB8(186, 160, 255),
	EmotionLove:  RGB8(255, 99, 132),
}

// EmotionColor returns the glow color associated with e.
func EmotionColor(e Emotion) Color {
	if int(e) < len(emotionColors) {
		return emotionColors[e]
	}
	return ColorWhite
}

// StoneSize is the size class of a placed stone.
type StoneSize uint8

const (
	StoneSmall StoneSize = iota
	StoneMedium
	StoneLarge
)

// String returns the size class name.
func (s StoneSize) String() string {
	switch s {
	case StoneSmall:
		return "small"
	case StoneMedium:
		return "medium"
	case StoneLarge:
		return "large"
	}
	return "unknown"
}

// Radius returns the drawn half-width of the stone in pixels.
func (s StoneSize) Radius() float64 {
	switch s {
	case StoneSmall:
		return 10
	case StoneLarge:
		return 26
	default:
		return 17
	}
}

// starSizeRange bounds the size multiplier of a random star.
var starSizeRange = Range{Min: 0.8, Max: 1.6}

// RandomEmotion picks one of the five emotions uniformly.
func RandomEmotion(r *rand.Rand) Emotion {
	return Emotions[r.IntN(len(Emotions))]
}

// RandomStarSize returns a size multiplier in starSizeRange.
func RandomStarSize(r *rand.Rand) float64 {
	return randRange(r, starSizeRange)
}

// RandomStoneSize picks a stone size class uniformly.
func RandomStoneSize(r *rand.Rand) StoneSize {
	return StoneSize(r.IntN(3))
}

// RandomEarthTone returns a warm sand/brown tone used for displaced grains.
func RandomEarthTone(r *rand.Rand) Color {
	base := RGB8(194, 160, 112)
	return base.Scale(0.7 + r.Float64()*0.5)
}

// randRange returns a uniform value in [rg.Min, rg.Max).
func randRange(r *rand.Rand, rg Range) float64 {
	return rg.Min + r.Float64()*(rg.Max-rg.Min)
}
