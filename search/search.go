package search

import (
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

/*
The search is a negamax-style fold without alpha-beta: a move's search weight
is its static weight minus the best weight the opponent can answer with,
recursively. Every branch is explored down to the depth budget, which is
fixed once per decision from the remaining time. Captures and checks at the
horizon are searched one ply deeper, up to the budget.
*/

// Engine chooses moves. An Engine is not safe for concurrent use; it owns
// a move cache that lives for one decision unless Config.PersistCache is set.
type Engine struct {
	conf     Config
	eval     Evaluator
	cache    *Cache
	depth    DepthController
	selector *Selector
	log      zerolog.Logger

	// per decision
	rules    Rules
	maxDepth int
	nodes    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used to break ties.
func WithSource(src Source) Option {
	return func(e *Engine) { e.selector = NewSelector(src) }
}

// WithLogger sets the logger. Engines log nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine. It panics if conf is not valid.
func New(conf Config, opts ...Option) *Engine {
	if err := conf.Validate(); err != nil {
		panic("search config is not valid: " + err.Error())
	}
	eval := NewEvaluator(conf.Weights)
	e := &Engine{
		conf:  conf,
		eval:  eval,
		cache: NewCache(eval),
		depth: NewDepthController(conf),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.selector == nil {
		e.selector = NewSelector(nil)
	}
	return e
}

// Config returns the configuration of the engine.
func (e *Engine) Config() Config { return e.conf }

// Cache returns the move cache of the engine.
func (e *Engine) Cache() *Cache { return e.cache }

// ChooseMove returns the move to play in the current position of r with
// remaining time on the clock. Before the first move of the game it returns
// the configured opening move without searching. It returns nil when there
// is no legal move. r is unchanged on return; the returned move is a copy.
func (e *Engine) ChooseMove(r Rules, remaining time.Duration) *chess.Move {
	m, _ := e.Decide(r, remaining)
	return m
}

// Decide is ChooseMove that also returns the analyzed moves the choice was
// made from. The list is nil when the opening move was played unsearched.
func (e *Engine) Decide(r Rules, remaining time.Duration) (*chess.Move, []MoveWeight) {
	if r.PlyCount() == 0 {
		m, err := r.ParseMove(e.conf.Opening)
		if err == nil {
			e.log.Debug().Str("move", m.String()).Msg("opening")
			return copyMove(m), nil
		}
		e.log.Debug().Err(err).Msg("opening move unavailable, searching")
	}

	l := e.Analyze(r, remaining)
	if len(l) == 0 {
		return nil, l
	}
	best := e.selector.Select(l)
	e.log.Debug().
		Str("move", best.String()).
		Int("best", maxWeight(l)).
		Msg("chose move")
	return copyMove(best), l
}

// Analyze searches the current position of r and returns every legal move
// with its search weight, in static weight order.
func (e *Engine) Analyze(r Rules, remaining time.Duration) []MoveWeight {
	e.prepareCache()
	e.rules = r
	e.maxDepth = e.depth.MaxDepth(remaining)
	e.nodes = 0
	defer func() { e.rules = nil }()

	start := time.Now()
	retVal := e.analyze(e.conf.MinDepth, true, 0)

	hits, misses := e.cache.Stats()
	e.log.Debug().
		Dur("remaining", remaining).
		Int("max_depth", e.maxDepth).
		Int("nodes", e.nodes).
		Int("cache_entries", e.cache.Len()).
		Int("cache_hits", hits).
		Int("cache_misses", misses).
		Dur("took", time.Since(start)).
		Msg("analyzed")
	return retVal
}

func (e *Engine) prepareCache() {
	switch {
	case !e.conf.PersistCache:
		e.cache.Reset()
	case e.conf.MaxCacheEntries > 0 && e.cache.Len() > e.conf.MaxCacheEntries:
		e.log.Debug().Int("entries", e.cache.Len()).Msg("move cache over bound, emptying")
		e.cache.Reset()
	}
}

// analyze returns the weighted moves of the current position searched to
// depth more plies. self tells whether the side to move is the one the
// decision is made for; total is the number of plies from the root.
func (e *Engine) analyze(depth int, self bool, total int) []MoveWeight {
	e.nodes++
	cached := e.cache.Get(e.rules)
	if depth < 1 || len(cached) == 0 {
		return cached
	}
	if cached[0].Weight > e.conf.AutoAccept {
		e.log.Trace().Int("total", total).Str("move", cached[0].Move.String()).Msg("auto accept")
		return cached
	}

	retVal := make([]MoveWeight, len(cached))
	for i, mw := range cached {
		retVal[i] = mw
		if mw.Weight < e.conf.Prune {
			continue
		}
		extended := e.depth.Extend(e.rules, mw.Move, depth, total, e.maxDepth)
		withMove(e.rules, mw.Move, func() {
			if e.rules.InCheckmate() {
				return
			}
			reply := e.analyze(extended-1, !self, total+1)
			retVal[i].Weight = mw.Weight - maxWeight(reply)
		})
	}

	e.log.Trace().
		Bool("self", self).
		Int("depth", depth).
		Int("total", total).
		Int("moves", len(retVal)).
		Msg("node")
	return retVal
}

func copyMove(m *chess.Move) *chess.Move {
	retVal := *m
	return &retVal
}
