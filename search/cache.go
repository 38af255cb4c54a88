package search

// Cache memoizes, per position identity, every legal move with its static
// weight, best first. Identity collisions are served as hits.
//
// Cache is not safe for concurrent use.
type Cache struct {
	eval    Evaluator
	entries map[uint64][]MoveWeight

	hits, misses int
}

func NewCache(eval Evaluator) *Cache {
	return &Cache{
		eval:    eval,
		entries: make(map[uint64][]MoveWeight),
	}
}

// Get returns the weighted legal moves of the current position of r,
// computing and storing them on a miss. Callers must not modify the
// returned slice.
func (c *Cache) Get(r Rules) []MoveWeight {
	id := r.Identity()
	if l, ok := c.entries[id]; ok {
		c.hits++
		return l
	}
	c.misses++

	moves := r.LegalMoves()
	l := make([]MoveWeight, len(moves))
	for i, m := range moves {
		l[i] = MoveWeight{Move: m, Weight: c.eval.Evaluate(r, m)}
	}
	sortWeights(l)
	c.entries[id] = l
	return l
}

// Len returns the number of cached positions.
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns the hit and miss counts since the last Reset.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }

// Reset empties the cache.
func (c *Cache) Reset() {
	c.entries = make(map[uint64][]MoveWeight)
	c.hits, c.misses = 0, 0
}
