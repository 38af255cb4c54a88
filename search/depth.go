package search

import (
	"time"

	"github.com/notnil/chess"
)

// DepthController decides how deep a decision may search.
type DepthController struct {
	conf Config
}

func NewDepthController(conf Config) DepthController { return DepthController{conf: conf} }

// MaxDepth returns the deepest total depth allowed with remaining time on
// the clock. It steps down by TierDecrement for every time tier remaining
// falls below, and never goes under MinDepth.
func (d DepthController) MaxDepth(remaining time.Duration) int {
	depth := d.conf.MaxDepth
	for _, tier := range d.conf.TimeTiers {
		if remaining >= tier {
			break
		}
		depth -= d.conf.TierDecrement
	}
	if depth < d.conf.MinDepth {
		depth = d.conf.MinDepth
	}
	return depth
}

// Extend returns the remaining depth to search m with. Only moves at the
// search horizon (remaining <= 1) are extended, by one ply for captures and
// checks. The extended total depth stops at maxDepth; the cap never lowers
// remaining itself.
func (d DepthController) Extend(r Rules, m *chess.Move, remaining, total, maxDepth int) int {
	if remaining > 1 {
		return remaining
	}

	var ext int
	if isCapture(m) {
		ext = 1
	} else {
		withMove(r, m, func() {
			if r.InCheck() {
				ext = 1
			}
		})
	}
	if ext == 0 {
		return remaining
	}

	extended := remaining + ext
	if limit := maxDepth - total; extended > limit {
		extended = limit
	}
	if extended < remaining {
		return remaining
	}
	return extended
}
