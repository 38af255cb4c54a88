package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	moves := startMoves(t, 3)
	l := []MoveWeight{{moves[0], 20}, {moves[1], 20}, {moves[2], -4}}

	dot, err := Graph("start", l)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph analysis"))
	assert.Contains(t, dot, `"start"`)
	for _, mw := range l {
		assert.Contains(t, dot, `"`+mw.Move.String()+`"`)
	}
	assert.Contains(t, dot, `"-4"`)
	assert.Equal(t, 2, strings.Count(dot, "color=red"))
	assert.Equal(t, 3, strings.Count(dot, "->"))
}
