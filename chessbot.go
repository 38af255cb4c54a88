package chessbot

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/chessbot/search"
	"github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Bot is the top level structure and the entry point of the API. It plays
// matches between its search agent and an opponent, which is either a second
// agent or an external UCI engine.
type Bot struct {
	Stats // from the bot's side

	conf   Config
	logger zerolog.Logger

	mu      sync.Mutex
	results []Result
}

// New creates a bot. It panics if conf is not valid.
func New(conf Config, logger zerolog.Logger) *Bot {
	if err := conf.Validate(); err != nil {
		panic(fmt.Sprintf("config is not valid: %+v", err))
	}
	return &Bot{
		conf:   conf,
		logger: logger,
	}
}

// Config returns the bot configuration.
func (b *Bot) Config() Config { return b.conf }

// NewAgent returns a fresh agent for game i, with its tie-break source
// seeded from the config.
func (b *Bot) NewAgent(name string, i int) *Agent {
	opts := []search.Option{search.WithLogger(b.logger.With().Str("agent", name).Int("game", i).Logger())}
	if b.conf.Seed != 0 {
		opts = append(opts, search.WithSource(rand.New(rand.NewSource(b.conf.Seed+int64(i)))))
	}
	return NewAgent(name, b.conf.SearchConf, opts...)
}

func (b *Bot) newOpponent(i int) (Player, error) {
	if b.conf.Opponent == "" {
		return b.NewAgent(b.conf.Name+"-opponent", i), nil
	}
	return NewUCIPlayer(b.conf.Opponent, b.conf.OpponentMoveTime)
}

// Match plays games games, at most parallel at a time. The bot takes white
// in even games and black in odd ones. Every game gets its own players, so
// no search state is shared between goroutines.
func (b *Bot) Match(ctx context.Context, games, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	b.Stats.reset()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error { return b.playGame(ctx, i) })
	}
	return g.Wait()
}

func (b *Bot) playGame(ctx context.Context, i int) (err error) {
	agent := b.NewAgent(b.conf.Name, i)
	opponent, err := b.newOpponent(i)
	if err != nil {
		return err
	}
	defer func() {
		var errs error
		if cerr := agent.Close(); cerr != nil {
			errs = multierror.Append(errs, cerr)
		}
		if cerr := opponent.Close(); cerr != nil {
			errs = multierror.Append(errs, cerr)
		}
		if err == nil && errs != nil {
			err = errs
		}
	}()

	var white, black Player = agent, opponent
	color := chess.White
	if i%2 == 1 {
		white, black = opponent, agent
		color = chess.Black
	}

	arena := MakeArena(nil, white, black, b.conf, b.logger.With().Int("game", i).Logger())
	r, err := arena.Play(ctx)
	if err != nil {
		return errors.WithMessage(err, fmt.Sprintf("game %d", i))
	}

	agent.Record(color, r.Outcome)
	b.Stats.Record(color, r.Outcome)
	if o, ok := opponent.(*Agent); ok {
		o.Record(color.Other(), r.Outcome)
	}
	b.mu.Lock()
	b.results = append(b.results, r)
	b.mu.Unlock()
	return nil
}

// Results returns the finished games in completion order.
func (b *Bot) Results() []Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Result(nil), b.results...)
}

// SavePGN writes every finished game to filename in PGN.
func (b *Bot) SavePGN(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	for _, r := range b.Results() {
		if _, err := fmt.Fprintf(f, "%s\n\n", r.Game.String()); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(f.Close())
}
