// Package core implements the entity store: a dense, swap-remove arena of
// integer-handled entities carrying weighted outgoing links, with honest
// staleness tracking for externally computed rank values.
//
// What:
//
//   - Graph owns a dense slice of entities plus an id→position map kept exact
//     under swap-removal, so every entity is index-addressable at all times.
//   - Entity handles are borrowed from an idpool.Pool on creation and
//     recycled on destruction; a live handle is never reused.
//   - Each entity caches the sum of its outgoing weights incrementally —
//     link mutations adjust the total by delta, never by resummation.
//   - Two staleness signals are tracked separately: a per-entity "has this
//     ever been ranked" latch and a graph-wide "does the last ranking still
//     reflect the current structure" flag.
//
// Why:
//
//   - Rank engines want dense, stable-order iteration over entities;
//     the arena gives O(1) membership, O(1) append and O(n) destroy.
//   - Handle recycling keeps IDs compact for long-lived mutable graphs.
//
// Complexity:
//
//   - CreateEntity:  O(1) amortized.
//   - DestroyEntity: O(n) (inbound-link sweep) + O(1) swap-remove.
//   - PutLink / RemoveLink / Link / HasEntity: O(1).
//
// Errors:
//
//   - ErrEntityNotFound: operation referenced an ID that is not live.
//   - ErrNegativeWeight: a link weight below zero was supplied.
//   - ErrRankLength:     a committed rank vector does not match the entity count.
//   - idpool.ErrExhausted (wrapped): no handles left for CreateEntity.
//
// Graph is deliberately lock-free and single-threaded by contract: every
// operation runs to completion on one logical thread, and callers needing
// concurrent access must serialize all calls (including whole rank
// computations) themselves.
package core
