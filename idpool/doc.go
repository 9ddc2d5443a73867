// Package idpool hands out compact int64 handles from a recyclable pool,
// always issuing the smallest free value first.
//
// What:
//
//   - Pool tracks every currently-free ID as a sorted slice of closed,
//     pairwise non-adjacent intervals [start, end].
//   - Borrow takes the smallest free ID; Return puts one back, coalescing
//     with neighboring free runs so fragmentation stays bounded.
//   - Memory is O(number of gaps in the borrowed set), never O(address space):
//     a fresh pool is a single interval regardless of how many IDs it covers.
//
// Why:
//
//   - Entity/handle allocators: dense array indices want small, reusable IDs.
//   - Long-lived stores: IDs freed by deletions are recycled instead of
//     marching toward overflow.
//
// Complexity:
//
//   - Borrow:        O(1).
//   - Return:        O(log k) locate + O(k) splice, k = interval count.
//   - IntervalCount: O(1).
//
// Errors:
//
//   - ErrExhausted:    no free IDs remain (expected, recoverable condition).
//   - ErrBelowStart:   returned ID is below the pool's configured minimum.
//   - ErrDoubleReturn: returned ID is already free (never borrowed, or
//     returned twice).
//
// The maximum representable value (math.MaxInt64) is reserved and never
// issued; a pool whose only free interval has shrunk to that single point is
// exhausted. Pool is not safe for concurrent use; callers serialize access.
package idpool
