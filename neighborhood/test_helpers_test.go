package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/laplacian"
	"github.com/LivelyCarpet87/network-locality-exploration/scalar"
)

// manualNetwork is the 8-vertex undirected fixture shared by the end-to-end
// scenarios.
func manualNetwork() *edgelist.EdgeList {
	el := edgelist.New(false)
	el.InsertEdge(1, 2, 1.2)
	el.InsertEdge(2, 3, 0.7)
	el.InsertEdge(3, 4, 0.9)
	el.InsertEdge(4, 5, 0.1)
	el.InsertEdge(5, 6, 1.6)
	el.InsertEdge(6, 7, 1.3)
	el.InsertEdge(7, 1, 0.85)
	el.InsertEdge(1, 5, 0.7)
	el.InsertEdge(2, 6, 0.3)
	el.InsertEdge(3, 7, 0.8)
	el.InsertEdge(4, 1, 0.8)
	el.InsertEdge(5, 8, 1.6)
	return el
}

// derive builds the (L, g̃) pair for a graph with a private table sized for
// tests.
func derive(t *testing.T, el *edgelist.EdgeList) (lap, gt *edgelist.EdgeList, tab *scalar.Table) {
	t.Helper()
	lap, err := laplacian.NegLaplacian(el)
	require.NoError(t, err)
	tab = scalar.NewTable(scalar.WithMaxX(20))
	gt, err = laplacian.GTilde(lap, laplacian.WithTable(tab))
	require.NoError(t, err)
	return lap, gt, tab
}

// silent drops warnings during tests.
func silent(string, ...any) {}
