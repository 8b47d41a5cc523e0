package edgelist

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// EdgeList is a weighted multigraph with mirrored forward and reverse
// adjacency. The zero value is not usable; construct with New.
//
// Invariant: for every weight w recorded under edges[s][d], the same weight
// appears exactly once under revEdges[d][s], and vice versa.
type EdgeList struct {
	mu sync.RWMutex

	// edges[src][dest] = ordered weight bucket (forward adjacency).
	edges map[int]map[int][]float64

	// revEdges[dest][src] = mirror of edges (reverse adjacency).
	revEdges map[int]map[int][]float64

	// directional controls whether readers see the reverse side as
	// additional out-edges.
	directional bool
}

// New returns an empty EdgeList with the given directionality.
func New(directional bool) *EdgeList {
	return &EdgeList{
		edges:       make(map[int]map[int][]float64),
		revEdges:    make(map[int]map[int][]float64),
		directional: directional,
	}
}

// InsertEdge appends weight to the bucket for (src, dest) and mirrors the
// entry into the reverse adjacency. Duplicates accumulate; there is no
// deduplication.
func (l *EdgeList) InsertEdge(src, dest int, weight float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fwd, ok := l.edges[src]
	if !ok {
		fwd = make(map[int][]float64)
		l.edges[src] = fwd
	}
	fwd[dest] = append(fwd[dest], weight)

	rev, ok := l.revEdges[dest]
	if !ok {
		rev = make(map[int][]float64)
		l.revEdges[dest] = rev
	}
	rev[src] = append(rev[src], weight)
}

// RemoveEdge deletes the entire weight bucket for (src, dest) on both sides.
// No-op when the pair is absent.
func (l *EdgeList) RemoveEdge(src, dest int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if fwd, ok := l.edges[src]; ok {
		delete(fwd, dest)
	}
	if rev, ok := l.revEdges[dest]; ok {
		delete(rev, src)
	}
}

// SetDirectional flips the undirected interpretation for all readers.
func (l *EdgeList) SetDirectional(directional bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.directional = directional
}

// Directional reports whether the container is interpreted as directed.
func (l *EdgeList) Directional() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.directional
}

// Edges flattens the forward adjacency into (src, dest, weight) records in
// ascending (src, dest) order, insertion order within a bucket. Reverse-side
// records are never added here, regardless of directionality: the undirected
// interpretation is deferred to EdgesFrom and EdgeWeights.
func (l *EdgeList) Edges() []Edge {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return flatten(l.edges)
}

// EdgesDuplicateOnUndirected is Edges plus, when the container is
// undirected, one reversed record per physical weight (keyed by the original
// direction in the reverse adjacency). Each weight of an undirected graph
// therefore appears twice; intended for sinks that want both orientations
// explicit.
func (l *EdgeList) EdgesDuplicateOnUndirected() []Edge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := flatten(l.edges)
	if !l.directional {
		out = append(out, flatten(l.revEdges)...)
	}
	return out
}

// EdgesFrom yields the out-edges of src: the forward bucket rows, plus, when
// undirected, the reverse-side rows at src (edges pointing into src treated
// as outgoing). Self-loops are included; traversal callers filter them.
func (l *EdgeList) EdgesFrom(src int) []Edge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Edge
	out = appendRow(out, src, l.edges[src])
	if !l.directional {
		out = appendRow(out, src, l.revEdges[src])
	}
	return out
}

// AdjacentVertices returns the destinations reachable from src over the
// forward and, when undirected, reverse adjacency. A neighbor present on
// both sides appears twice.
func (l *EdgeList) AdjacentVertices(src int) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []int
	out = append(out, sortedKeys(l.edges[src])...)
	if !l.directional {
		out = append(out, sortedKeys(l.revEdges[src])...)
	}
	return out
}

// EdgeWeights concatenates the weights recorded under (src, dest) and, when
// undirected, the weights under revEdges[src][dest] — all weights between
// src and dest observable from src.
func (l *EdgeList) EdgeWeights(src, dest int) []float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []float64
	if fwd, ok := l.edges[src]; ok {
		out = append(out, fwd[dest]...)
	}
	if !l.directional {
		if rev, ok := l.revEdges[src]; ok {
			out = append(out, rev[dest]...)
		}
	}
	return out
}

// MaxVertex returns the largest vertex ID present as a top-level key of
// either adjacency, or NoVertex when the container is empty. Scanning both
// sides covers vertices that only ever appear as a destination.
func (l *EdgeList) MaxVertex() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	max := NoVertex
	for v := range l.edges {
		if v > max {
			max = v
		}
	}
	for v := range l.revEdges {
		if v > max {
			max = v
		}
	}
	return max
}

// String renders the forward edges one per line with weights in %.10E,
// mirroring the plaintext export format.
func (l *EdgeList) String() string {
	var b strings.Builder
	b.WriteString("Edgelist Edges:\n")
	for _, e := range l.Edges() {
		fmt.Fprintf(&b, "%d -> %d = %.10E\n", e.Src, e.Dest, e.Weight)
	}
	return b.String()
}

// flatten walks adj in ascending (outer, inner) key order and emits one Edge
// per recorded weight. Callers hold at least a read lock.
func flatten(adj map[int]map[int][]float64) []Edge {
	var out []Edge
	for _, src := range sortedOuterKeys(adj) {
		out = appendRow(out, src, adj[src])
	}
	return out
}

// appendRow emits row's weights as edges rooted at src, destinations
// ascending.
func appendRow(out []Edge, src int, row map[int][]float64) []Edge {
	for _, dest := range sortedKeys(row) {
		for _, w := range row[dest] {
			out = append(out, Edge{Src: src, Dest: dest, Weight: w})
		}
	}
	return out
}

func sortedOuterKeys(m map[int]map[int][]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedKeys(m map[int][]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
