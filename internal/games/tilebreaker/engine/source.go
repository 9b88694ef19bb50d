package engine

import "math/rand"

// ColorSource supplies colors for freshly generated tiles.
type ColorSource interface {
	NextColor() Color
}

// RandomSource draws uniformly from colors 1..K.
type RandomSource struct {
	rng    *rand.Rand
	colors int
}

// NewRandomSource creates a source over k colors seeded with seed.
func NewRandomSource(seed int64, k int) *RandomSource {
	return &RandomSource{
		rng:    rand.New(rand.NewSource(seed)),
		colors: k,
	}
}

// NextColor returns a random color in [1, k].
func (s *RandomSource) NextColor() Color {
	return Color(s.rng.Intn(s.colors) + 1)
}

// SequenceSource replays a fixed list of colors, wrapping around at the end.
// Useful for tests and reproducible boards.
type SequenceSource struct {
	colors []Color
	next   int
	drawn  int
}

// NewSequenceSource creates a source cycling through colors.
// An empty list yields color 1 forever.
func NewSequenceSource(colors ...Color) *SequenceSource {
	return &SequenceSource{colors: colors}
}

// NextColor returns the next color in the sequence.
func (s *SequenceSource) NextColor() Color {
	if len(s.colors) == 0 {
		s.drawn++
		return 1
	}
	c := s.colors[s.next]
	s.next = (s.next + 1) % len(s.colors)
	s.drawn++
	return c
}

// Drawn returns how many colors have been handed out so far.
func (s *SequenceSource) Drawn() int {
	return s.drawn
}
