package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
)

// Sentinel errors for graph generation.
var (
	// ErrTooFewVertices is returned when size < 1.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadDegree is returned when avgDeg is not a positive even number.
	ErrBadDegree = errors.New("builder: average degree must be positive and even")

	// ErrInvalidProbability is returned when p lies outside [0, 1].
	ErrInvalidProbability = errors.New("builder: rewiring probability not in [0,1]")

	// ErrNeedRandSource is returned when no random source is supplied.
	ErrNeedRandSource = errors.New("builder: rand source is required")
)

// WattsStrogatz samples an undirected small-world network over size
// vertices with average degree avgDeg (even) and per-edge rewiring
// probability p, drawing all randomness from rng.
func WattsStrogatz(size, avgDeg int, p float64, rng *rand.Rand) (*edgelist.EdgeList, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size=%d", ErrTooFewVertices, size)
	}
	if avgDeg < 1 || avgDeg%2 != 0 {
		return nil, fmt.Errorf("%w: avgDeg=%d", ErrBadDegree, avgDeg)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	el := edgelist.New(false)

	// Ring lattice: each vertex reaches the next avgDeg/2 neighbors; the
	// other half of the degree arrives from predecessors.
	for src := 0; src < size; src++ {
		for offset := 1; offset <= avgDeg/2; offset++ {
			dest := (src + offset) % size
			el.InsertEdge(src, dest, rng.Float64())
		}
	}

	// Rewiring pass over the same lattice positions: with probability p,
	// replace the edge with one to a fresh target, rerolling targets that
	// would duplicate an existing adjacency or close a self-loop.
	for src := 0; src < size; src++ {
		for offset := 1; offset <= avgDeg/2; offset++ {
			if rng.Float64() > p {
				continue
			}
			destOrig := (src + offset) % size

			newDest := rng.Intn(size)
			adjacent := el.AdjacentVertices(src)
			for slices.Contains(adjacent, newDest) || newDest == src {
				newDest = rng.Intn(size)
			}

			el.InsertEdge(src, newDest, rng.Float64())
			el.RemoveEdge(src, destOrig)
		}
	}

	return el, nil
}
