// Package pagerank scores the entities of a core.Graph with damped power
// iteration, writing converged values back into the store.
//
// What:
//
//   - Engine holds a damping factor α and a convergence threshold, both
//     fixed at construction.
//   - Run seeds the iteration from the ranks currently stored in the graph
//     (warm start), so successive runs after small edits converge quickly.
//   - Dangling entities (no outgoing links) spread their whole rank mass
//     uniformly over all entities — including themselves — each iteration,
//     so total mass is conserved.
//   - Iteration stops once the squared Euclidean distance between successive
//     rank vectors drops to the threshold; the result is then committed,
//     latching every entity's validity flag and the graph's up-to-date flag.
//
// Why:
//
//   - Importance scoring over mutable link graphs: recompute on demand,
//     query cheap stored values between runs.
//
// Complexity:
//
//   - O(N²) per iteration — every entity contributes to every entity.
//     For dense graphs the quadratic sweep, not the iteration count,
//     dominates.
//
// Options:
//
//   - WithAlpha:     damping factor in [0, 1]; default 0.85.
//   - WithThreshold: positive convergence threshold; default 1e-6.
//
// Errors:
//
//   - ErrBadAlpha:     damping factor outside [0, 1].
//   - ErrBadThreshold: threshold not strictly positive.
//   - ErrNilGraph:     Run received a nil graph.
//
// The convergence loop has no cancellation or timeout: a pathological
// α/threshold pairing that never converges runs indefinitely. Run must not
// race with graph mutation; callers serialize externally.
package pagerank
