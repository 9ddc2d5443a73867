// Package rankgraph is an in-memory toolkit for maintaining a mutable,
// weighted directed graph of integer-handled entities and scoring them
// with damped PageRank on demand.
//
// 🚀 What is rankgraph?
//
//	A small, focused library built from three cooperating pieces:
//		• idpool/   — interval-set ID allocator: hands out the smallest free
//		              integer, recycles returned ones, and keeps memory
//		              proportional to fragmentation, not address-space size
//		• core/     — entity store: dense, swap-remove arena of entities with
//		              weighted outgoing links and staleness tracking
//		• pagerank/ — rank engine: damped power iteration with warm starts
//		              and uniform dangling-node redistribution
//
// ✨ Why choose rankgraph?
//
//   - Compact handles – entities are int64 handles drawn from a recyclable pool
//   - Honest staleness – per-entity "ever ranked" and graph-wide "up to date"
//     flags are tracked separately and never conflated
//   - Pure Go – no cgo, no hidden deps
//
// Quick sketch:
//
//	g := core.New()
//	a, _ := g.CreateEntity()
//	b, _ := g.CreateEntity()
//	g.PutLink(b, a, 1)
//
//	engine, _ := pagerank.NewEngine()
//	engine.Run(g)
//	score, _ := g.RankValue(a)
//
// All mutation and ranking is single-threaded by contract: callers that need
// concurrent access must serialize every call themselves.
//
//	go get github.com/katalvlaran/rankgraph
package rankgraph
