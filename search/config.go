package search

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Weights are the constants of the static move evaluator.
type Weights struct {
	PawnAdvance      int `json:"pawn_advance"`       // per rank travelled by a pawn
	Castle           int `json:"castle"`             // castling
	Capture          int `json:"capture"`            // any capture, on top of the captured value
	EarlyQueen       int `json:"early_queen"`        // queen moves before EarlyQueenPly
	EarlyQueenPly    int `json:"early_queen_ply"`    // ply count below which queen moves are penalised
	CastleRightsLoss int `json:"castle_rights_loss"` // king or rook moves that forfeit castling
	Check            int `json:"check"`              // move gives check
	Checkmate        int `json:"checkmate"`          // move gives mate; dominates every other term
	Draw             int `json:"draw"`               // move reaches a drawn position
}

// DefaultWeights returns the stock evaluator constants.
func DefaultWeights() Weights {
	return Weights{
		PawnAdvance:      10,
		Castle:           50,
		Capture:          -5,
		EarlyQueen:       -50,
		EarlyQueenPly:    10,
		CastleRightsLoss: -40,
		Check:            50,
		Checkmate:        1000000,
		Draw:             -500,
	}
}

// Config configures the search engine.
type Config struct {
	// MinDepth is the remaining depth the root is searched at.
	MinDepth int `json:"min_depth"`
	// MaxDepth is the deepest total depth extensions may reach when time is
	// plentiful.
	MaxDepth int `json:"max_depth"`
	// TimeTiers are descending time thresholds. Every tier the remaining
	// time falls below takes TierDecrement off MaxDepth.
	TimeTiers     []time.Duration `json:"time_tiers"`
	TierDecrement int             `json:"tier_decrement"`

	// AutoAccept stops the search at a node whose best static weight is
	// above it.
	AutoAccept int `json:"auto_accept"`
	// Prune leaves moves whose static weight is below it unsearched.
	Prune int `json:"prune"`

	// Opening is played, in UCI notation, when the game has not started.
	Opening string `json:"opening"`

	// PersistCache keeps the move cache across decisions. MaxCacheEntries
	// bounds it: once exceeded the cache is emptied before the next
	// decision. Zero means unbounded.
	PersistCache    bool `json:"persist_cache"`
	MaxCacheEntries int  `json:"max_cache_entries"`

	Weights Weights `json:"weights"`
}

func DefaultConfig() Config {
	return Config{
		MinDepth:      2,
		MaxDepth:      4,
		TimeTiers:     []time.Duration{3 * time.Minute, time.Minute},
		TierDecrement: 2,
		AutoAccept:    100000,
		Prune:         -100000,
		Opening:       "e2e4",
		Weights:       DefaultWeights(),
	}
}

func (c Config) IsValid() bool { return c.Validate() == nil }

// Validate returns every problem with c.
func (c Config) Validate() error {
	var errs error
	if c.MinDepth < 1 {
		errs = multierror.Append(errs, errors.Errorf("min depth %d must be at least 1", c.MinDepth))
	}
	if c.MaxDepth < c.MinDepth {
		errs = multierror.Append(errs, errors.Errorf("max depth %d is below min depth %d", c.MaxDepth, c.MinDepth))
	}
	if c.TierDecrement <= 0 || c.TierDecrement%2 != 0 {
		errs = multierror.Append(errs, errors.Errorf("tier decrement %d must be positive and even", c.TierDecrement))
	}
	for i, t := range c.TimeTiers {
		if t <= 0 {
			errs = multierror.Append(errs, errors.Errorf("time tier %d is not positive: %v", i, t))
		}
		if i > 0 && t >= c.TimeTiers[i-1] {
			errs = multierror.Append(errs, errors.Errorf("time tiers must be descending: %v after %v", t, c.TimeTiers[i-1]))
		}
	}
	if c.AutoAccept <= c.Prune {
		errs = multierror.Append(errs, errors.Errorf("auto accept %d must be above prune %d", c.AutoAccept, c.Prune))
	}
	if c.MaxCacheEntries < 0 {
		errs = multierror.Append(errs, errors.Errorf("max cache entries %d is negative", c.MaxCacheEntries))
	}
	return errs
}
