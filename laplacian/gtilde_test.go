package laplacian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/laplacian"
	"github.com/LivelyCarpet87/network-locality-exploration/scalar"
)

// starGraph is the 5-vertex star with unit weights: center 0, leaves 1..4.
func starGraph() *edgelist.EdgeList {
	el := edgelist.New(false)
	for leaf := 1; leaf <= 4; leaf++ {
		el.InsertEdge(0, leaf, 1)
	}
	return el
}

func TestGTilde_Nil(t *testing.T) {
	_, err := laplacian.GTilde(nil)
	assert.ErrorIs(t, err, laplacian.ErrNilEdgeList)
}

func TestGTilde_Empty(t *testing.T) {
	gt, err := laplacian.GTilde(edgelist.New(true))
	require.NoError(t, err)
	assert.Equal(t, edgelist.NoVertex, gt.MaxVertex())
}

// TestGTilde_StarUniformWeights: on a unit-weight star the κ/μ ratios agree
// for every incident pair, so g̃ carries one uniform weight on all of them.
func TestGTilde_StarUniformWeights(t *testing.T) {
	lap, err := laplacian.NegLaplacian(starGraph())
	require.NoError(t, err)

	gt, err := laplacian.GTilde(lap, laplacian.WithTable(scalar.NewTable(scalar.WithMaxX(5))))
	require.NoError(t, err)
	assert.False(t, gt.Directional())

	// All center-leaf weights equal w(M/1) = w(4).
	first := gt.EdgeWeights(0, 1)
	require.Len(t, first, 1)
	for leaf := 2; leaf <= 4; leaf++ {
		ws := gt.EdgeWeights(0, leaf)
		require.Len(t, ws, 1, "leaf %d", leaf)
		assert.Equal(t, first[0], ws[0], "leaf %d", leaf)
	}
	assert.Greater(t, first[0], 0.0)
}

// TestGTilde_WeightsFlooredAtEpsilon: the pair carrying the global maximum
// maps through y = 1, w(1) = 0, and must be floored to ε.
func TestGTilde_WeightsFlooredAtEpsilon(t *testing.T) {
	lap, err := laplacian.NegLaplacian(starGraph())
	require.NoError(t, err)

	gt, err := laplacian.GTilde(lap, laplacian.WithTable(scalar.NewTable(scalar.WithMaxX(5))))
	require.NoError(t, err)

	// Center diagonal: |−4| is the global max, so its g̃ self-loop is ε.
	// The undirected fetch sees the physical weight and its mirror.
	center := gt.EdgeWeights(0, 0)
	require.Len(t, center, 2)
	assert.Equal(t, scalar.Epsilon, center[0])
	assert.Equal(t, scalar.Epsilon, center[1])

	for _, e := range gt.Edges() {
		assert.GreaterOrEqual(t, e.Weight, scalar.Epsilon)
	}
}

func TestGTilde_ManualNetwork(t *testing.T) {
	lap, err := laplacian.NegLaplacian(manualNetwork())
	require.NoError(t, err)

	tab := scalar.NewTable(scalar.WithMaxX(10))
	gt, err := laplacian.GTilde(lap, laplacian.WithTable(tab))
	require.NoError(t, err)

	// Each unordered pair appears exactly once.
	for _, e := range gt.Edges() {
		assert.LessOrEqual(t, e.Src, e.Dest)
	}

	// Spot-check pair (1,2): W = 1.2, M = 4 (vertex 5's diagonal), so the
	// weight is w(4/1.2) and the closed form must round-trip within the
	// interpolation error.
	ws := gt.EdgeWeights(1, 2)
	require.Len(t, ws, 1)
	v, err := tab.V(ws[0])
	require.NoError(t, err)
	assert.InDelta(t, 4.0/1.2, v, 4.0/1.2*1e-2)

	// Symmetric fetch sees the same weight from the other endpoint.
	assert.Equal(t, ws, gt.EdgeWeights(2, 1))

	// Vertex 0 never appears: its only Laplacian entry is the zero
	// diagonal, which carries no coupling.
	assert.Empty(t, gt.EdgeWeights(0, 0))
}

func TestGTilde_ParallelMatchesSequential(t *testing.T) {
	lap, err := laplacian.NegLaplacian(manualNetwork())
	require.NoError(t, err)

	tab := scalar.NewTable(scalar.WithMaxX(10))
	seq, err := laplacian.GTilde(lap, laplacian.WithTable(tab), laplacian.WithWorkers(1))
	require.NoError(t, err)
	par, err := laplacian.GTilde(lap, laplacian.WithTable(tab), laplacian.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, seq.Edges(), par.Edges())
}

func TestGTilde_WeightsFiniteWithSelfLoops(t *testing.T) {
	lap, err := laplacian.NegLaplacian(starGraph())
	require.NoError(t, err)
	gt, err := laplacian.GTilde(lap, laplacian.WithTable(scalar.NewTable(scalar.WithMaxX(5))))
	require.NoError(t, err)

	// g̃ keeps diagonal self-loops; every emitted weight, self-loops
	// included, is finite.
	for _, e := range gt.Edges() {
		assert.False(t, math.IsInf(e.Weight, 0))
		assert.False(t, math.IsNaN(e.Weight))
	}
}
