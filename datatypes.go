package chessbot

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/chessbot/game"
	"github.com/chessbot/search"
	"github.com/chewxy/math32"
	"github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Config for the bot and the matches it plays.
type Config struct {
	Name       string        `json:"name"`
	SearchConf search.Config `json:"search_conf"`

	// Clock is the thinking time each side starts a game with.
	Clock time.Duration `json:"clock"`
	// MaxPlies adjudicates a game as a draw once reached. Zero means no
	// limit.
	MaxPlies int `json:"max_plies"`
	// Seed seeds the tie-break source of game i with Seed+i. Zero leaves the
	// tie-breaks unseeded.
	Seed int64 `json:"seed"`

	// Opponent is the path of a UCI engine to play against. Empty means the
	// bot plays itself.
	Opponent         string        `json:"opponent"`
	OpponentMoveTime time.Duration `json:"opponent_move_time"`
}

func DefaultConfig() Config {
	return Config{
		Name:             "chessbot",
		SearchConf:       search.DefaultConfig(),
		Clock:            5 * time.Minute,
		MaxPlies:         300,
		OpponentMoveTime: 100 * time.Millisecond,
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate returns every problem with c, including those of its search
// configuration.
func (c Config) Validate() error {
	var errs error
	if err := c.SearchConf.Validate(); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "search_conf"))
	}
	if c.Clock <= 0 {
		errs = multierror.Append(errs, errors.Errorf("clock %v must be positive", c.Clock))
	}
	if c.MaxPlies < 0 {
		errs = multierror.Append(errs, errors.Errorf("max plies %d is negative", c.MaxPlies))
	}
	if c.Opponent != "" && c.OpponentMoveTime <= 0 {
		errs = multierror.Append(errs, errors.Errorf("opponent move time %v must be positive", c.OpponentMoveTime))
	}
	return errs
}

// LoadConfig reads a JSON config from filename. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&conf); err != nil {
		return conf, errors.Wrapf(err, "decode config %s", filename)
	}
	if err := conf.Validate(); err != nil {
		return conf, errors.WithMessage(err, filename)
	}
	return conf, nil
}

// Player is anything that can pick moves in a game: the search agent or an
// external engine.
type Player interface {
	Name() string
	// Move returns the move to play in the current position of g with
	// remaining time on the player's clock.
	Move(g *chess.Game, remaining time.Duration) (*chess.Move, error)
	io.Closer
}

// Result is a finished game.
type Result struct {
	Game         *chess.Game
	White, Black string
	Outcome      chess.Outcome
	Method       chess.Method
}

// Stats counts game results from one side's point of view.
type Stats struct {
	Wins float32
	Loss float32
	Draw float32
	sync.Mutex
}

// Record counts a game played as color that ended with outcome.
func (s *Stats) Record(color chess.Color, outcome chess.Outcome) {
	s.Lock()
	defer s.Unlock()
	switch outcome {
	case chess.Draw:
		s.Draw++
	case game.Winner(color):
		s.Wins++
	case chess.WhiteWon, chess.BlackWon:
		s.Loss++
	}
}

// ScoreRate returns points per game, a draw counting half. It is 0 before
// any game is recorded.
func (s *Stats) ScoreRate() float32 {
	s.Lock()
	defer s.Unlock()
	rate := (s.Wins + s.Draw/2) / (s.Wins + s.Loss + s.Draw)
	if math32.IsNaN(rate) {
		return 0
	}
	return rate
}

// EloDiff estimates the rating difference implied by ScoreRate under the
// logistic Elo model. A perfect or a zero score gives an infinite
// difference. It is 0 before any game is recorded.
func (s *Stats) EloDiff() float32 {
	s.Lock()
	games := s.Wins + s.Loss + s.Draw
	score := s.Wins + s.Draw/2
	s.Unlock()
	if games == 0 {
		return 0
	}
	return -400 * math32.Log10(games/score-1)
}

func (s *Stats) reset() {
	s.Lock()
	s.Wins = 0
	s.Loss = 0
	s.Draw = 0
	s.Unlock()
}
