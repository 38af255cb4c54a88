package search

import (
	"github.com/notnil/chess"
	"lukechampine.com/frand"
)

// Source is a source of uniformly distributed integers in [0, n).
// *math/rand.Rand and *frand.RNG both satisfy it.
type Source interface {
	Intn(n int) int
}

// Selector picks the move to play from a ranked list.
type Selector struct {
	src Source
}

// NewSelector returns a selector drawing from src. A nil src uses a fresh
// unseeded frand generator.
func NewSelector(src Source) *Selector {
	if src == nil {
		src = frand.New()
	}
	return &Selector{src: src}
}

// Select returns one of the moves sharing the highest weight, uniformly at
// random. l must not be empty.
func (s *Selector) Select(l []MoveWeight) *chess.Move {
	if len(l) == 0 {
		panic("search: select from an empty move list")
	}
	best := l[0].Weight
	tied := []*chess.Move{l[0].Move}
	for _, mw := range l[1:] {
		switch {
		case mw.Weight > best:
			best = mw.Weight
			tied = append(tied[:0], mw.Move)
		case mw.Weight == best:
			tied = append(tied, mw.Move)
		}
	}
	return tied[s.src.Intn(len(tied))]
}
