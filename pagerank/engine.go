// Package pagerank implements damped power iteration over a core.Graph.
//
// Per iteration, the next rank of entity j is the sum over every source
// entity i of:
//
//   - previous[i] / N                                  if i is dangling,
//   - previous[i] · (1-α)/N                            if i has links, none to j,
//   - previous[i] · (α·w(i→j)/total(i) + (1-α)/N)      if i links to j.
//
// The sweep deliberately visits every (i, j) pair: the O(N²) cost is the
// contract, and no zero-contribution shortcut is taken. Iteration always
// runs at least once and stops when the squared Euclidean distance between
// successive rank vectors reaches the threshold.

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/rankgraph/core"
)

// Engine computes PageRank with a damping factor and convergence threshold
// fixed at construction. An Engine is stateless between runs and may be
// reused across graphs.
type Engine struct {
	alpha     float64
	threshold float64
}

// NewEngine constructs an Engine from the package defaults plus the given
// functional options.
//
// Returns ErrBadAlpha for a damping factor outside [0, 1] and
// ErrBadThreshold for a threshold that is not strictly positive.
// Complexity: O(1).
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Alpha < 0 || cfg.Alpha > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadAlpha, cfg.Alpha)
	}
	if cfg.Threshold <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, cfg.Threshold)
	}

	return &Engine{alpha: cfg.Alpha, threshold: cfg.Threshold}, nil
}

// Alpha returns the engine's damping factor.
func (e *Engine) Alpha() float64 { return e.alpha }

// Threshold returns the engine's convergence threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Run brings every rank value in g up to date.
//
// The iteration is seeded from the ranks currently stored in g, so a run
// following small edits resumes near the previous fixed point instead of
// restarting from scratch. On convergence the result is committed back into
// g: every entity's validity flag latches and the graph is marked up to date.
//
// An empty graph is a no-op that leaves g untouched. A single-entity graph
// runs the regular loop: both the dangling and the self-link formula are
// fixed points for N = 1, so the stored value is reproduced deterministically
// and only the flags change.
//
// Returns ErrNilGraph for a nil graph. Never returns an error for valid
// input; a threshold the iteration cannot reach makes Run loop forever.
// Complexity: O(N²) per iteration.
func (e *Engine) Run(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	n := g.EntityCount()
	if n == 0 {
		return nil
	}

	r := &runner{
		g:         g,
		alpha:     e.alpha,
		threshold: e.threshold,
		n:         n,
		ids:       g.EntityIDs(),
		current:   g.RankSnapshot(),
		previous:  make([]float64, n),
	}
	r.iterate()

	return g.CommitRanks(r.current)
}

// runner holds the mutable state of a single Run.
type runner struct {
	g         *core.Graph
	alpha     float64
	threshold float64
	n         int
	ids       []int64   // dense-order handles; ids[j] is the target of column j
	current   []float64 // rank vector being computed
	previous  []float64 // rank vector of the preceding iteration
}

// iterate advances the power iteration until the squared Euclidean distance
// between successive rank vectors reaches the threshold. The loop body runs
// at least once even when the seed is already a fixed point.
func (r *runner) iterate() {
	for {
		// 1) The just-computed vector becomes the previous one.
		copy(r.previous, r.current)

		// 2) Full O(N²) sweep: recompute every entity's rank from every
		//    entity's previous rank.
		for j := 0; j < r.n; j++ {
			sum := 0.0
			for i := 0; i < r.n; i++ {
				sum += r.contribution(i, j)
			}
			r.current[j] = sum
		}

		// 3) Converged once the vectors are close enough.
		if r.squaredDistance() <= r.threshold {
			return
		}
	}
}

// contribution computes what the entity at dense position i passes to the
// entity at dense position j from its previous rank mass.
func (r *runner) contribution(i, j int) float64 {
	p := r.previous[i]
	size := float64(r.n)

	// Dangling source: its whole mass spreads uniformly, itself included.
	if r.g.OutDegreeAt(i) == 0 {
		return p / size
	}

	teleport := (1 - r.alpha) / size
	w, ok := r.g.LinkWeightAt(i, r.ids[j])
	if !ok {
		return p * teleport
	}

	// A zero-weight link carries no link share; guarding here also keeps the
	// division safe when every outgoing weight of i is zero.
	share := 0.0
	if w > 0 {
		share = r.alpha * w / r.g.TotalWeightAt(i)
	}

	return p * (share + teleport)
}

// squaredDistance returns the squared Euclidean distance between the current
// and previous rank vectors.
func (r *runner) squaredDistance() float64 {
	sum := 0.0
	for i := 0; i < r.n; i++ {
		d := r.current[i] - r.previous[i]
		sum += d * d
	}

	return sum
}
