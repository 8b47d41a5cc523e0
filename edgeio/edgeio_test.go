package edgeio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/edgeio"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFile_Weighted(t *testing.T) {
	path := writeFile(t, "0 1 0.5\n1 2 1.25\n2 0 2.5\n")

	el, err := edgeio.FromFile(path, true)
	require.NoError(t, err)

	want := []edgelist.Edge{
		{Src: 0, Dest: 1, Weight: 0.5},
		{Src: 1, Dest: 2, Weight: 1.25},
		{Src: 2, Dest: 0, Weight: 2.5},
	}
	assert.Equal(t, want, el.Edges())
}

func TestFromFile_UnweightedDefaultsToOne(t *testing.T) {
	path := writeFile(t, "3 4\n4 5\n")

	el, err := edgeio.FromFile(path, false)
	require.NoError(t, err)

	for _, e := range el.Edges() {
		assert.Equal(t, 1.0, e.Weight)
	}
	assert.Len(t, el.Edges(), 2)
}

func TestFromFile_SkipsUnparseableLines(t *testing.T) {
	path := writeFile(t, "# comment\n0 1 0.5\nnot an edge\n\n2 3 1.5\n")

	el, err := edgeio.FromFile(path, true)
	require.NoError(t, err)
	assert.Len(t, el.Edges(), 2)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := edgeio.FromFile(filepath.Join(t.TempDir(), "absent.txt"), true)
	assert.Error(t, err)
}

func TestSaveAndReload_RoundTrip(t *testing.T) {
	el := edgelist.New(true)
	el.InsertEdge(0, 1, 1.0/3.0)
	el.InsertEdge(1, 2, 2.5e-7)
	el.InsertEdge(1, 2, -0.125)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, edgeio.Save(path, el))

	got, err := edgeio.FromFile(path, true)
	require.NoError(t, err)

	// %.10E keeps eleven significant digits: reload agrees to that precision.
	wantEdges := el.Edges()
	gotEdges := got.Edges()
	require.Len(t, gotEdges, len(wantEdges))
	for i, e := range wantEdges {
		assert.Equal(t, e.Src, gotEdges[i].Src)
		assert.Equal(t, e.Dest, gotEdges[i].Dest)
		assert.InEpsilon(t, e.Weight, gotEdges[i].Weight, 1e-9)
	}
}
