package chessbot

import (
	"time"

	"github.com/chessbot/game"
	"github.com/chessbot/search"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// An Agent is a Player backed by the search engine.
type Agent struct {
	Engine *search.Engine
	Stats

	name string
}

// NewAgent creates an agent searching with conf.
func NewAgent(name string, conf search.Config, opts ...search.Option) *Agent {
	return &Agent{
		Engine: search.New(conf, opts...),
		name:   name,
	}
}

func (a *Agent) Name() string { return a.name }

// Move searches the current position of g and returns the move to play.
func (a *Agent) Move(g *chess.Game, remaining time.Duration) (*chess.Move, error) {
	pos, err := game.FromGame(g)
	if err != nil {
		return nil, errors.WithMessage(err, a.name)
	}
	m := a.Engine.ChooseMove(pos, remaining)
	if m == nil {
		return nil, errors.Errorf("%s: no legal move in %s", a.name, pos.FEN())
	}
	return m, nil
}

// Close implements io.Closer. An agent holds no external resources.
func (a *Agent) Close() error { return nil }
