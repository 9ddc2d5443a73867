package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/rankgraph/core"
	"github.com/katalvlaran/rankgraph/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEngine_Defaults verifies the default configuration.
func TestNewEngine_Defaults(t *testing.T) {
	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, pagerank.DefaultAlpha, e.Alpha())
	assert.Equal(t, pagerank.DefaultThreshold, e.Threshold())
}

// TestNewEngine_Validation verifies rejection of out-of-range parameters.
func TestNewEngine_Validation(t *testing.T) {
	_, err := pagerank.NewEngine(pagerank.WithAlpha(-0.1))
	assert.ErrorIs(t, err, pagerank.ErrBadAlpha, "alpha below 0 must be rejected")

	_, err = pagerank.NewEngine(pagerank.WithAlpha(1.1))
	assert.ErrorIs(t, err, pagerank.ErrBadAlpha, "alpha above 1 must be rejected")

	_, err = pagerank.NewEngine(pagerank.WithThreshold(0))
	assert.ErrorIs(t, err, pagerank.ErrBadThreshold, "zero threshold must be rejected")

	_, err = pagerank.NewEngine(pagerank.WithThreshold(-1e-6))
	assert.ErrorIs(t, err, pagerank.ErrBadThreshold, "negative threshold must be rejected")

	// Boundary values are legal.
	_, err = pagerank.NewEngine(pagerank.WithAlpha(0))
	assert.NoError(t, err)
	_, err = pagerank.NewEngine(pagerank.WithAlpha(1))
	assert.NoError(t, err)
}

// TestRun_NilGraph verifies the nil guard.
func TestRun_NilGraph(t *testing.T) {
	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	assert.ErrorIs(t, e.Run(nil), pagerank.ErrNilGraph)
}

// TestRun_EmptyGraph verifies that ranking nothing is a no-op that leaves
// the store untouched.
func TestRun_EmptyGraph(t *testing.T) {
	g := core.New()
	e, err := pagerank.NewEngine()
	require.NoError(t, err)

	require.NoError(t, e.Run(g))
	assert.False(t, g.RankUpToDate(), "a no-op run must not claim an up-to-date ranking")
}

// TestRun_SingleEntity verifies that a single-entity graph ranks
// deterministically: the stored value is a fixed point, only flags change.
func TestRun_SingleEntity(t *testing.T) {
	g := core.New()
	id, _ := g.CreateEntity()
	e, err := pagerank.NewEngine()
	require.NoError(t, err)

	require.NoError(t, e.Run(g))

	rank, err := g.RankValue(id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rank, "the sole entity keeps its seed: it is already a fixed point")
	valid, _ := g.RankValueValid(id)
	assert.True(t, valid)
	assert.True(t, g.RankUpToDate())

	// With a self-loop the value is still a fixed point.
	_, _, err = g.PutLink(id, id, 3)
	require.NoError(t, err)
	require.NoError(t, e.Run(g))
	rank, _ = g.RankValue(id)
	assert.Equal(t, 1.0, rank, "a self-linked singleton is likewise a fixed point")
}

// TestRun_ConvergenceExample checks the reference four-entity graph:
// edges b→a, c→a, c→b, d→b, d→c (unit weight), α=0.84, threshold=1e-6.
func TestRun_ConvergenceExample(t *testing.T) {
	g := core.New()
	a, _ := g.CreateEntity()
	b, _ := g.CreateEntity()
	c, _ := g.CreateEntity()
	d, _ := g.CreateEntity()
	for _, link := range [][2]int64{{b, a}, {c, a}, {c, b}, {d, b}, {d, c}} {
		_, _, err := g.PutLink(link[0], link[1], 1)
		require.NoError(t, err)
	}

	e, err := pagerank.NewEngine(pagerank.WithAlpha(0.84), pagerank.WithThreshold(1e-6))
	require.NoError(t, err)
	require.NoError(t, e.Run(g))

	ra, _ := g.RankValue(a)
	rb, _ := g.RankValue(b)
	rc, _ := g.RankValue(c)
	rd, _ := g.RankValue(d)
	assert.InDelta(t, 1.70, ra, 0.1, "a collects from b and c")
	assert.InDelta(t, 1.04, rb, 0.1)
	assert.InDelta(t, 0.74, rc, 0.1)
	assert.InDelta(t, 0.52, rd, 0.1, "d has no inbound links")
	assert.True(t, g.RankUpToDate())

	// Total rank mass is conserved at N.
	assert.InDelta(t, 4.0, ra+rb+rc+rd, 1e-6, "dangling handling must conserve mass")
}

// TestRun_DanglingConservesMass verifies that entities without outgoing
// links redistribute their mass uniformly instead of losing it.
func TestRun_DanglingConservesMass(t *testing.T) {
	g := core.New()
	a, _ := g.CreateEntity()
	b, _ := g.CreateEntity()
	c, _ := g.CreateEntity() // c stays dangling; b is dangling too
	_, _, err := g.PutLink(a, b, 1)
	require.NoError(t, err)

	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	require.NoError(t, e.Run(g))

	var sum float64
	for _, id := range []int64{a, b, c} {
		r, rerr := g.RankValue(id)
		require.NoError(t, rerr)
		assert.Positive(t, r, "every entity keeps positive mass under damping")
		sum += r
	}
	assert.InDelta(t, 3.0, sum, 1e-3, "total mass must stay at N with dangling entities present")
}

// TestRun_WeightedShares verifies that heavier links attract proportionally
// more rank mass from their source.
func TestRun_WeightedShares(t *testing.T) {
	g := core.New()
	src, _ := g.CreateEntity()
	heavy, _ := g.CreateEntity()
	light, _ := g.CreateEntity()
	_, _, err := g.PutLink(src, heavy, 3)
	require.NoError(t, err)
	_, _, err = g.PutLink(src, light, 1)
	require.NoError(t, err)

	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	require.NoError(t, e.Run(g))

	rh, _ := g.RankValue(heavy)
	rl, _ := g.RankValue(light)
	assert.Greater(t, rh, rl, "the 3x-weighted target must outrank the 1x one")
}

// TestRun_ZeroWeightLinkIsInert verifies that a present link of weight zero
// ranks identically to no link at all.
func TestRun_ZeroWeightLinkIsInert(t *testing.T) {
	build := func(withZero bool) *core.Graph {
		g := core.New()
		a, _ := g.CreateEntity()
		b, _ := g.CreateEntity()
		c, _ := g.CreateEntity()
		_, _, err := g.PutLink(a, b, 2)
		require.NoError(t, err)
		if withZero {
			_, _, err = g.PutLink(a, c, 0)
			require.NoError(t, err)
		}
		return g
	}

	e, err := pagerank.NewEngine()
	require.NoError(t, err)

	gz := build(true)
	gn := build(false)
	require.NoError(t, e.Run(gz))
	require.NoError(t, e.Run(gn))

	for _, id := range gz.EntityIDs() {
		rz, _ := gz.RankValue(id)
		rn, _ := gn.RankValue(id)
		assert.InDelta(t, rn, rz, 1e-9, "a zero-weight link must carry no rank share")
	}
}

// TestRun_WarmStartAfterEdit verifies that a second run after a small edit
// restores the up-to-date flag and re-ranks correctly.
func TestRun_WarmStartAfterEdit(t *testing.T) {
	g := core.New()
	a, _ := g.CreateEntity()
	b, _ := g.CreateEntity()
	c, _ := g.CreateEntity()
	_, _, err := g.PutLink(b, a, 1)
	require.NoError(t, err)
	_, _, err = g.PutLink(c, a, 1)
	require.NoError(t, err)

	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	require.NoError(t, e.Run(g))
	require.True(t, g.RankUpToDate())
	raBefore, _ := g.RankValue(a)
	rbBefore, _ := g.RankValue(b)
	assert.Greater(t, raBefore, rbBefore, "a holds both inbound edges and must rank highest")

	// Redirect c's link: a loses an inbound edge, b gains one.
	_, _, err = g.RemoveLink(c, a)
	require.NoError(t, err)
	_, _, err = g.PutLink(c, b, 1)
	require.NoError(t, err)
	require.False(t, g.RankUpToDate())

	require.NoError(t, e.Run(g))
	assert.True(t, g.RankUpToDate(), "a rerun must restore freshness")

	raAfter, _ := g.RankValue(a)
	rbAfter, _ := g.RankValue(b)
	assert.Less(t, raAfter, raBefore, "a must lose rank after losing an inbound edge")
	assert.Greater(t, rbAfter, rbBefore, "b must gain rank after gaining an inbound edge")
}

// TestRun_RanksDestroyedEntityGraph verifies ranking after swap-removal:
// the moved entity's column must follow it to its new dense position.
func TestRun_RanksDestroyedEntityGraph(t *testing.T) {
	g := core.New()
	ids := make([]int64, 4)
	for i := range ids {
		ids[i], _ = g.CreateEntity()
	}
	// Everyone links to the tail entity.
	for _, from := range ids[:3] {
		_, _, err := g.PutLink(from, ids[3], 1)
		require.NoError(t, err)
	}
	// Destroy a middle entity: the tail swaps into its slot.
	require.NoError(t, g.DestroyEntity(ids[1]))

	e, err := pagerank.NewEngine()
	require.NoError(t, err)
	require.NoError(t, e.Run(g))

	rTail, _ := g.RankValue(ids[3])
	r0, _ := g.RankValue(ids[0])
	assert.Greater(t, rTail, r0, "the entity holding every inbound link must rank highest")
}
