package search

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"
)

// MoveWeight is a move paired with its weight. Weights are relative to the
// side to move at the node where they were computed; more positive is better.
type MoveWeight struct {
	Move   *chess.Move
	Weight int
}

func (mw MoveWeight) String() string { return fmt.Sprintf("%v:%d", mw.Move, mw.Weight) }

// byWeight sorts best weight first.
type byWeight []MoveWeight

func (l byWeight) Len() int           { return len(l) }
func (l byWeight) Less(i, j int) bool { return l[i].Weight > l[j].Weight }
func (l byWeight) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// sortWeights sorts l in place, keeping generation order among equal weights.
func sortWeights(l []MoveWeight) { sort.Stable(byWeight(l)) }

// maxWeight returns the highest weight in l, or 0 if l is empty.
func maxWeight(l []MoveWeight) int {
	if len(l) == 0 {
		return 0
	}
	retVal := l[0].Weight
	for _, mw := range l[1:] {
		if mw.Weight > retVal {
			retVal = mw.Weight
		}
	}
	return retVal
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
