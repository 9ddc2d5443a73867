// Package idpool: interval-set allocator implementation.
//
// The free set is a slice of closed intervals, sorted ascending by start,
// pairwise disjoint and pairwise non-adjacent (the next start is always at
// least two beyond the previous end — adjacent runs are merged eagerly on
// Return). The slice is never empty: the pool always retains a trailing
// interval that ends at the reserved maximum, so every validly borrowed ID
// has a successor interval when it comes back.

package idpool

import (
	"fmt"
	"math"
	"sort"
)

// maxID is the largest representable handle. It is reserved as the
// exhaustion sentinel and never issued to callers.
const maxID = int64(math.MaxInt64)

// interval is a closed range [start, end] of free IDs, start ≤ end.
type interval struct {
	start int64
	end   int64
}

// contains reports whether id lies inside the interval.
func (iv interval) contains(id int64) bool { return id >= iv.start && id <= iv.end }

// Pool allocates int64 handles, smallest-first, and recycles returned ones.
//
// The zero value is not usable; construct with New. Pool is not safe for
// concurrent use — callers must serialize access externally.
type Pool struct {
	start int64      // smallest ID this pool may ever issue
	free  []interval // sorted ascending; disjoint; non-adjacent; never empty
}

// New constructs a Pool whose free set is every ID in [start, math.MaxInt64).
// The maximum value itself is reserved; a pool constructed at math.MaxInt64
// is therefore born exhausted.
// Complexity: O(1).
func New(start int64) *Pool {
	return &Pool{
		start: start,
		free:  []interval{{start: start, end: maxID}},
	}
}

// Start returns the smallest ID this pool may ever issue.
func (p *Pool) Start() int64 { return p.start }

// CanBorrow reports whether any free ID remains. It is false exactly when
// the free set has shrunk to the single reserved point at math.MaxInt64.
// Complexity: O(1).
func (p *Pool) CanBorrow() bool {
	return p.free[0].start < maxID
}

// Borrow takes the smallest free ID out of the pool.
// Returns ErrExhausted — and nothing else — when no free ID remains.
// Complexity: O(1) amortized.
func (p *Pool) Borrow() (int64, error) {
	if !p.CanBorrow() {
		return 0, ErrExhausted
	}
	// The first interval holds the smallest free ID.
	first := &p.free[0]
	id := first.start
	if first.start < first.end {
		// Shrink the run from the left.
		first.start++
	} else {
		// Single-point run fully consumed; drop it.
		p.removeAt(0)
	}
	if len(p.free) == 0 {
		// The trailing interval ends at the reserved maximum and a singleton
		// there is never borrowable, so this cannot happen.
		panic("idpool: free interval list drained")
	}

	return id, nil
}

// Return puts a borrowed ID back into the pool, coalescing it with any
// adjacent free run so the interval count stays bounded by fragmentation.
//
// Returns ErrBelowStart if id is below the pool minimum, ErrDoubleReturn if
// id is already free (never borrowed, or returned twice).
// Complexity: O(log k) to locate + O(k) to splice, k = interval count.
func (p *Pool) Return(id int64) error {
	// 1) Range check against the configured minimum.
	if id < p.start {
		return fmt.Errorf("%w: id %d, pool minimum %d", ErrBelowStart, id, p.start)
	}

	// 2) Locate the first free interval whose start exceeds id. The free set
	//    is sorted by start, so this is a binary search.
	i := sort.Search(len(p.free), func(k int) bool { return p.free[k].start > id })

	// 3) If id sits inside the preceding interval it is already free.
	if i > 0 && p.free[i-1].contains(id) {
		return fmt.Errorf("%w: id %d", ErrDoubleReturn, id)
	}

	// 4) A validly borrowed id always has a successor: the pool retains a
	//    trailing interval ending at the reserved maximum. No successor means
	//    the free set itself is corrupt, not that the caller erred.
	if i == len(p.free) {
		panic(fmt.Sprintf("idpool: no free interval beyond id %d", id))
	}

	// 5) Absorb id into the successor if they touch, else insert a singleton.
	if p.free[i].start == id+1 {
		p.free[i].start = id
	} else {
		p.insertAt(i, interval{start: id, end: id})
	}

	// 6) The run now starting at id may also touch its predecessor; merge the
	//    two runs by extending the current one down and dropping the previous.
	if i > 0 && p.free[i-1].end == id-1 {
		p.free[i].start = p.free[i-1].start
		p.removeAt(i - 1)
	}

	return nil
}

// IntervalCount returns the number of free intervals. It bounds the pool's
// memory footprint and is the observable measure of compaction.
// Complexity: O(1).
func (p *Pool) IntervalCount() int { return len(p.free) }

// insertAt splices iv into the free slice at index i, shifting the tail right.
func (p *Pool) insertAt(i int, iv interval) {
	p.free = append(p.free, interval{})
	copy(p.free[i+1:], p.free[i:])
	p.free[i] = iv
}

// removeAt drops the interval at index i, shifting the tail left.
func (p *Pool) removeAt(i int) {
	copy(p.free[i:], p.free[i+1:])
	p.free = p.free[:len(p.free)-1]
}
