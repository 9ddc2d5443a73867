// Package core: entity lifecycle and link mutation.
//
// Every mutator validates its arguments first, then applies the change and
// finally downgrades the graph-wide up-to-date flag when — and only when —
// the change could alter rank values. The dense-arena invariant
// (index[e.id] == position, positions 0..n-1) is re-established before any
// mutator returns.

package core

import "fmt"

// liveEntity resolves a handle to its entity, or fails with ErrEntityNotFound.
func (g *Graph) liveEntity(id int64) (*entity, error) {
	pos, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrEntityNotFound, id)
	}

	return g.entities[pos], nil
}

// CreateEntity borrows the smallest free handle, registers a fresh entity
// under it and returns the handle.
//
// The new entity has no links, rank value 1.0 and an unranked validity latch.
// Fails (wrapping idpool.ErrExhausted) when no handles remain.
// Complexity: O(1) amortized.
func (g *Graph) CreateEntity() (int64, error) {
	id, err := g.pool.Borrow()
	if err != nil {
		return 0, fmt.Errorf("core: create entity: %w", err)
	}

	g.entities = append(g.entities, &entity{
		id:        id,
		out:       make(map[int64]float64),
		rankValue: initialRank,
	})
	g.index[id] = len(g.entities) - 1

	// The entity population changed, so any previously committed ranking no
	// longer covers the whole graph.
	g.upToDate = false

	return id, nil
}

// DestroyEntity removes the entity, erases every inbound link targeting it,
// and recycles its handle.
//
// Returns ErrEntityNotFound if id is not live.
// Complexity: O(n) over live entities for the inbound sweep.
func (g *Graph) DestroyEntity(id int64) error {
	pos, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrEntityNotFound, id)
	}

	// 1) Erase inbound links from every other entity, keeping each source's
	//    cached total consistent.
	for _, e := range g.entities {
		e.removeLink(id)
	}

	// 2) Swap-remove from the dense arena: move the tail entity into the
	//    vacated slot, fix its index entry, truncate.
	last := len(g.entities) - 1
	if pos != last {
		moved := g.entities[last]
		g.entities[pos] = moved
		g.index[moved.id] = pos
	}
	g.entities[last] = nil
	g.entities = g.entities[:last]
	delete(g.index, id)

	// 3) Recycle the handle. A live handle is by construction borrowed, so a
	//    failure here means the pool and the arena disagree about ownership.
	if err := g.pool.Return(id); err != nil {
		panic(fmt.Sprintf("core: recycling live entity id %d: %v", id, err))
	}

	g.upToDate = false

	return nil
}

// PutLink sets or updates the weighted link from→to and reports the previous
// weight (prev, true) or its absence (0, false).
//
// Returns ErrEntityNotFound if either handle is not live, ErrNegativeWeight
// for weight < 0. Re-putting the identical weight is a staleness no-op.
// Complexity: O(1).
func (g *Graph) PutLink(from, to int64, weight float64) (prev float64, existed bool, err error) {
	src, err := g.liveEntity(from)
	if err != nil {
		return 0, false, err
	}
	if _, err = g.liveEntity(to); err != nil {
		return 0, false, err
	}
	if weight < 0 {
		return 0, false, fmt.Errorf("%w: %v", ErrNegativeWeight, weight)
	}

	prev, existed = src.out[to]
	if !existed || prev != weight {
		// A real change: shift the cached total by the delta and mark the
		// last ranking stale. prev is zero for the no-previous-link case.
		src.out[to] = weight
		src.totalWeight += weight - prev
		g.upToDate = false
	}

	return prev, existed, nil
}

// RemoveLink deletes the link from→to and reports the removed weight
// (removed, true) or its absence (0, false).
//
// Returns ErrEntityNotFound if either handle is not live. Removing an absent
// link leaves staleness untouched.
// Complexity: O(1).
func (g *Graph) RemoveLink(from, to int64) (removed float64, existed bool, err error) {
	src, err := g.liveEntity(from)
	if err != nil {
		return 0, false, err
	}
	if _, err = g.liveEntity(to); err != nil {
		return 0, false, err
	}

	removed, existed = src.removeLink(to)
	if existed {
		g.upToDate = false
	}

	return removed, existed, nil
}

// Link reports the current weight of the link from→to as (weight, true), or
// (0, false) when no such link exists. No side effects.
//
// Returns ErrEntityNotFound if either handle is not live.
// Complexity: O(1).
func (g *Graph) Link(from, to int64) (weight float64, exists bool, err error) {
	src, err := g.liveEntity(from)
	if err != nil {
		return 0, false, err
	}
	if _, err = g.liveEntity(to); err != nil {
		return 0, false, err
	}

	weight, exists = src.out[to]

	return weight, exists, nil
}

// HasEntity reports whether id is a live entity handle.
// Complexity: O(1).
func (g *Graph) HasEntity(id int64) bool {
	_, ok := g.index[id]

	return ok
}

// EntityCount returns the number of live entities.
// Complexity: O(1).
func (g *Graph) EntityCount() int { return len(g.entities) }

// PoolIntervalCount exposes the handle allocator's interval count: the
// observable measure of ID-space fragmentation.
// Complexity: O(1).
func (g *Graph) PoolIntervalCount() int { return g.pool.IntervalCount() }

// removeLink drops e's outgoing link to id if present, adjusting the cached
// total, and reports the removed weight. Graph-level staleness is the
// caller's responsibility.
func (e *entity) removeLink(id int64) (float64, bool) {
	w, ok := e.out[id]
	if !ok {
		return 0, false
	}
	delete(e.out, id)
	e.totalWeight -= w

	return w, true
}
