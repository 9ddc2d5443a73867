// Package core: entity store types, sentinel errors, and construction.
//
// This file declares the entity record, the Graph arena, GraphOption
// functional options, and the New constructor.

package core

import (
	"errors"

	"github.com/katalvlaran/rankgraph/idpool"
)

// Sentinel errors for entity store operations.
var (
	// ErrEntityNotFound indicates an operation referenced an ID that is not live.
	ErrEntityNotFound = errors.New("core: entity not found")

	// ErrNegativeWeight indicates a link weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: link weight must be non-negative")

	// ErrRankLength indicates a committed rank vector whose length does not
	// match the current entity count.
	ErrRankLength = errors.New("core: rank vector length mismatch")
)

const (
	// DefaultStartID is the smallest entity handle a default Graph issues.
	DefaultStartID int64 = 0

	// initialRank seeds every freshly created entity until a rank engine
	// first commits computed values.
	initialRank = 1.0
)

// entity is one node of the graph: its stable handle, outgoing weighted
// links, and rank bookkeeping.
type entity struct {
	id          int64             // stable handle; never reused while live
	out         map[int64]float64 // target ID → non-negative weight
	totalWeight float64           // cached sum of out; maintained by delta
	rankValue   float64           // last committed rank; initialRank until then
	rankValid   bool              // latched true once ranked; never reset while live
}

// Graph is the entity store: a dense arena of entities with an id→position
// index kept exact under swap-removal.
//
// Invariant: index[e.id] == position of e in entities, positions are exactly
// 0..n-1 with no gaps. Not safe for concurrent use; callers serialize.
type Graph struct {
	pool     *idpool.Pool  // handle allocator; owns the free/used partition
	entities []*entity     // dense, order-irrelevant
	index    map[int64]int // entity ID → position in entities
	upToDate bool          // true only immediately after a committed ranking
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	startID int64
	capHint int
}

// WithStartID sets the smallest entity handle the Graph will ever issue.
// Immutable after construction.
func WithStartID(start int64) GraphOption {
	return func(c *graphConfig) { c.startID = start }
}

// WithCapacityHint pre-sizes internal storage for an expected entity count.
// Purely an allocation hint; the Graph still grows past it on demand.
func WithCapacityHint(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capHint = n
		}
	}
}

// New creates an empty Graph with the given options.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{startID: DefaultStartID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		pool:     idpool.New(cfg.startID),
		entities: make([]*entity, 0, cfg.capHint),
		index:    make(map[int64]int, cfg.capHint),
	}
}
