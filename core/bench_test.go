package core_test

import (
	"testing"

	"github.com/katalvlaran/rankgraph/core"
)

// BenchmarkGraph_CreateDestroyChurn measures entity lifecycle cost with
// constant handle recycling on a small live population.
func BenchmarkGraph_CreateDestroyChurn(b *testing.B) {
	const live = 1024
	g := core.New(core.WithCapacityHint(live))
	ids := make([]int64, live)
	for i := range ids {
		ids[i], _ = g.CreateEntity()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := i % live
		_ = g.DestroyEntity(ids[k])
		ids[k], _ = g.CreateEntity()
	}
}

// BenchmarkGraph_PutLink measures upserts across a fixed entity population.
func BenchmarkGraph_PutLink(b *testing.B) {
	const n = 256
	g := core.New(core.WithCapacityHint(n))
	ids := make([]int64, n)
	for i := range ids {
		ids[i], _ = g.CreateEntity()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		from := ids[i%n]
		to := ids[(i*7+1)%n]
		_, _, _ = g.PutLink(from, to, float64(i%5))
	}
}
