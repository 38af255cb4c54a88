package chessbot

import (
	"context"
	"time"

	"github.com/chessbot/game"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Arena plays one game between two players, each with its own clock.
type Arena struct {
	white, black Player
	clock        time.Duration
	maxPlies     int
	logger       zerolog.Logger

	game      *chess.Game
	remaining [2]time.Duration // indexed by clockIndex
}

// MakeArena makes an arena for a game starting from g. A nil g starts from
// the initial position.
func MakeArena(g *chess.Game, white, black Player, conf Config, logger zerolog.Logger) Arena {
	if g == nil {
		g = chess.NewGame()
	}
	g.AddTagPair("White", white.Name())
	g.AddTagPair("Black", black.Name())
	return Arena{
		white:     white,
		black:     black,
		clock:     conf.Clock,
		maxPlies:  conf.MaxPlies,
		logger:    logger,
		game:      g,
		remaining: [2]time.Duration{conf.Clock, conf.Clock},
	}
}

func clockIndex(c chess.Color) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// Game returns the game being played.
func (a *Arena) Game() *chess.Game { return a.game }

// Remaining returns the time left on c's clock.
func (a *Arena) Remaining(c chess.Color) time.Duration { return a.remaining[clockIndex(c)] }

// Play plays the game to its end. A player running out of time loses, a
// game reaching the ply limit is drawn, and threefold repetition and the
// fifty-move rule are claimed as soon as they apply.
func (a *Arena) Play(ctx context.Context) (Result, error) {
	a.logger.Info().
		Str("white", a.white.Name()).
		Str("black", a.black.Name()).
		Dur("clock", a.clock).
		Msg("game start")

	for ended, _ := game.Ended(a.game); !ended; ended, _ = game.Ended(a.game) {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.WithStack(err)
		}
		if a.claimDraw() {
			break
		}
		if a.maxPlies > 0 && len(a.game.Moves()) >= a.maxPlies {
			if err := a.game.Draw(chess.DrawOffer); err != nil {
				return Result{}, errors.WithStack(err)
			}
			break
		}

		turn := a.game.Position().Turn()
		player := a.white
		if turn == chess.Black {
			player = a.black
		}

		start := time.Now()
		m, err := player.Move(a.game, a.Remaining(turn))
		if err != nil {
			return Result{}, errors.WithMessage(err, "arena")
		}
		a.remaining[clockIndex(turn)] -= time.Since(start)
		if a.Remaining(turn) <= 0 {
			a.logger.Info().Str("player", player.Name()).Msg("flag fell")
			a.game.Resign(turn)
			break
		}
		if err := a.game.Move(m); err != nil {
			return Result{}, errors.Wrapf(err, "%s played %v", player.Name(), m)
		}
		a.logger.Debug().
			Str("player", player.Name()).
			Str("move", m.String()).
			Dur("remaining", a.Remaining(turn)).
			Msg("move")
	}

	r := Result{
		Game:    a.game,
		White:   a.white.Name(),
		Black:   a.black.Name(),
		Outcome: a.game.Outcome(),
		Method:  a.game.Method(),
	}
	a.logger.Info().
		Str("outcome", r.Outcome.String()).
		Str("method", r.Method.String()).
		Int("plies", len(a.game.Moves())).
		Msg("game over")
	return r, nil
}

func (a *Arena) claimDraw() bool {
	for _, method := range a.game.EligibleDraws() {
		if method == chess.DrawOffer {
			continue
		}
		if err := a.game.Draw(method); err == nil {
			return true
		}
	}
	return false
}
