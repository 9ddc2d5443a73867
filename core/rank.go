// Package core: rank bookkeeping and the dense read surface consumed by
// rank engines.
//
// The dense-index accessors (EntityIDs, OutDegreeAt, TotalWeightAt,
// LinkWeightAt) enumerate entities in arena order. That order is stable for
// as long as no mutator runs, which is exactly the contract a single-threaded
// rank computation needs: snapshot, iterate, commit.

package core

import "fmt"

// RankValue returns the entity's stored rank value. Until a rank engine has
// committed at least once for this entity, that is the initial seed 1.0.
//
// Returns ErrEntityNotFound if id is not live.
// Complexity: O(1).
func (g *Graph) RankValue(id int64) (float64, error) {
	e, err := g.liveEntity(id)
	if err != nil {
		return 0, err
	}

	return e.rankValue, nil
}

// RankValueValid reports whether the entity has ever been ranked. The latch
// is set by the first committed ranking covering this entity and never
// resets while the entity lives — even when the graph turns stale.
//
// Returns ErrEntityNotFound if id is not live.
// Complexity: O(1).
func (g *Graph) RankValueValid(id int64) (bool, error) {
	e, err := g.liveEntity(id)
	if err != nil {
		return false, err
	}

	return e.rankValid, nil
}

// RankUpToDate reports whether the last committed ranking still reflects the
// graph's current structure. Any link or entity mutation since that commit
// makes this false.
// Complexity: O(1).
func (g *Graph) RankUpToDate() bool { return g.upToDate }

// EntityIDs returns the live entity handles in dense arena order.
// The order is stable between mutations; it is the order every *At accessor
// and CommitRanks indexes by.
// Complexity: O(n).
func (g *Graph) EntityIDs() []int64 {
	ids := make([]int64, len(g.entities))
	for i, e := range g.entities {
		ids[i] = e.id
	}

	return ids
}

// RankSnapshot returns the stored rank values in dense arena order.
// Rank engines use it as their warm-start seed.
// Complexity: O(n).
func (g *Graph) RankSnapshot() []float64 {
	ranks := make([]float64, len(g.entities))
	for i, e := range g.entities {
		ranks[i] = e.rankValue
	}

	return ranks
}

// OutDegreeAt returns the number of outgoing links of the entity at dense
// position i. Zero identifies a dangling entity.
// Panics if i is out of range.
// Complexity: O(1).
func (g *Graph) OutDegreeAt(i int) int { return len(g.entities[i].out) }

// TotalWeightAt returns the cached sum of outgoing weights of the entity at
// dense position i.
// Panics if i is out of range.
// Complexity: O(1).
func (g *Graph) TotalWeightAt(i int) float64 { return g.entities[i].totalWeight }

// LinkWeightAt reports the weight of the link from the entity at dense
// position i to the entity with handle to, as (weight, true), or (0, false)
// when absent.
// Panics if i is out of range.
// Complexity: O(1).
func (g *Graph) LinkWeightAt(i int, to int64) (float64, bool) {
	w, ok := g.entities[i].out[to]

	return w, ok
}

// CommitRanks installs a computed rank vector, indexed in dense arena order.
// It latches every entity's validity flag and marks the graph up to date.
//
// Returns ErrRankLength when len(ranks) != EntityCount().
// Complexity: O(n).
func (g *Graph) CommitRanks(ranks []float64) error {
	if len(ranks) != len(g.entities) {
		return fmt.Errorf("%w: got %d values for %d entities", ErrRankLength, len(ranks), len(g.entities))
	}

	for i, e := range g.entities {
		e.rankValue = ranks[i]
		e.rankValid = true
	}
	g.upToDate = true

	return nil
}
