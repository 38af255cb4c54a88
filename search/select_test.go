package search

import (
	"math/rand"
	"testing"

	"github.com/chessbot/game"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func startMoves(t *testing.T, n int) []*chess.Move {
	t.Helper()
	moves := game.NewChess().LegalMoves()
	require.GreaterOrEqual(t, len(moves), n)
	return moves[:n]
}

func TestSelectBest(t *testing.T) {
	moves := startMoves(t, 3)
	s := NewSelector(rand.New(rand.NewSource(1)))

	l := []MoveWeight{{moves[0], 5}, {moves[1], 40}, {moves[2], -3}}
	for i := 0; i < 10; i++ {
		assert.Equal(t, moves[1], s.Select(l))
	}
}

func TestSelectSingle(t *testing.T) {
	moves := startMoves(t, 1)
	s := NewSelector(nil)
	assert.Equal(t, moves[0], s.Select([]MoveWeight{{moves[0], -7}}))
}

func TestSelectEmptyPanics(t *testing.T) {
	s := NewSelector(nil)
	assert.Panics(t, func() { s.Select(nil) })
}

func TestSelectTiesUniform(t *testing.T) {
	moves := startMoves(t, 4)
	s := NewSelector(rand.New(rand.NewSource(99)))

	// the best weight appears twice, and later than a lower one
	l := []MoveWeight{{moves[0], 1}, {moves[1], 10}, {moves[2], 3}, {moves[3], 10}}
	const draws = 4000
	counts := make(map[*chess.Move]int)
	for i := 0; i < draws; i++ {
		counts[s.Select(l)]++
	}

	require.Len(t, counts, 2)
	obs := []float64{float64(counts[moves[1]]), float64(counts[moves[3]])}
	exp := []float64{draws / 2, draws / 2}
	// 10.83 is the 0.001 critical value of chi-square with one degree of
	// freedom.
	assert.Less(t, stat.ChiSquare(obs, exp), 10.83)
	assert.InDelta(t, 0.5, obs[0]/draws, 0.05)
}

func TestSelectDeterministicWithSeed(t *testing.T) {
	moves := startMoves(t, 6)
	var l []MoveWeight
	for _, m := range moves {
		l = append(l, MoveWeight{m, 0})
	}

	a := NewSelector(rand.New(rand.NewSource(7)))
	b := NewSelector(rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Select(l), b.Select(l))
	}
}
