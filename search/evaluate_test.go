package search

import (
	"testing"

	"github.com/chessbot/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFEN(t *testing.T, fen string) *game.Chess {
	t.Helper()
	c, err := game.FromFEN(fen)
	require.NoError(t, err)
	return c
}

func TestEvaluate(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	cases := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"double pawn push", game.StartFEN, "e2e4", 20},
		{"quiet knight", game.StartFEN, "g1f3", 0},
		{"early queen", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", "d1h5", -50},
		{"pawn takes pawn", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", 100 + 10 - 5},
		{"promotion", "8/4P3/8/8/8/8/k7/4K3 w - - 0 30", "e7e8q", 10 + 800},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 10", "e1g1", 50},
		{"king forfeits castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 10", "e1f1", -40},
		{"kingside rook forfeits castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 10", "h1h2", -40},
		{"rook without its right", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 10", "a1a2", 0},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 20", "a1a8", 50 + 1000000},
		{"stalemate", "7k/8/8/6Q1/8/8/8/K7 w - - 0 30", "g5g6", -500},
		{"fifty-move drag", "7k/8/8/6Q1/8/8/8/K7 w - - 12 30", "g5g4", -12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustFEN(t, tc.fen)
			m, err := c.ParseMove(tc.move)
			require.NoError(t, err)

			fen, id := c.FEN(), c.Identity()
			assert.Equal(t, tc.want, e.Evaluate(c, m))
			assert.Equal(t, fen, c.FEN())
			assert.Equal(t, id, c.Identity())
			assert.Equal(t, 0, c.Depth())
		})
	}
}

func TestPieceValue(t *testing.T) {
	e := NewEvaluator(DefaultWeights())
	c := mustFEN(t, "4k3/8/8/8/8/2n1q3/3P4/K7 w - - 0 20")

	takeKnight, err := c.ParseMove("d2c3")
	require.NoError(t, err)
	takeQueen, err := c.ParseMove("d2e3")
	require.NoError(t, err)

	assert.Equal(t, 900-300, e.Evaluate(c, takeQueen)-e.Evaluate(c, takeKnight))
}
