package chessbot

import (
	"path/filepath"
	"time"

	"github.com/notnil/chess"
	"github.com/notnil/chess/uci"
	"github.com/pkg/errors"
)

// UCIPlayer is a Player backed by an external UCI engine process.
type UCIPlayer struct {
	name     string
	eng      *uci.Engine
	moveTime time.Duration
}

// NewUCIPlayer starts the engine at path. Each move is given moveTime, or a
// twentieth of the remaining clock if that is shorter.
func NewUCIPlayer(path string, moveTime time.Duration) (*UCIPlayer, error) {
	eng, err := uci.New(path)
	if err != nil {
		return nil, errors.Wrapf(err, "start uci engine %s", path)
	}
	if err := eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		eng.Close()
		return nil, errors.Wrapf(err, "initialise uci engine %s", path)
	}

	return &UCIPlayer{
		name:     filepath.Base(path),
		eng:      eng,
		moveTime: moveTime,
	}, nil
}

func (p *UCIPlayer) Name() string { return p.name }

// Move asks the engine for its best move in the current position of g.
func (p *UCIPlayer) Move(g *chess.Game, remaining time.Duration) (*chess.Move, error) {
	t := p.moveTime
	if share := remaining / 20; share < t {
		t = share
	}
	if t < time.Millisecond {
		t = time.Millisecond
	}
	cmdPos := uci.CmdPosition{Position: g.Position()}
	cmdGo := uci.CmdGo{MoveTime: t}
	if err := p.eng.Run(cmdPos, cmdGo); err != nil {
		return nil, errors.Wrapf(err, "%s: search", p.name)
	}
	m := p.eng.SearchResults().BestMove
	if m == nil {
		return nil, errors.Errorf("%s: no best move in %s", p.name, g.Position())
	}
	return m, nil
}

// Close stops the engine process.
func (p *UCIPlayer) Close() error {
	return errors.WithStack(p.eng.Close())
}
