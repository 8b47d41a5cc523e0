package laplacian

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/scalar"
)

// ErrNilEdgeList is returned when a nil container is passed to a transform.
var ErrNilEdgeList = errors.New("laplacian: edge list is nil")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("laplacian: invalid option supplied")

// Option configures a transform run.
type Option func(*options)

type options struct {
	workers int
	table   *scalar.Table
	err     error
}

func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the worker pool for the parallel pair iteration.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithTable supplies the v/w table GTilde inverts through. Defaults to the
// shared process-wide table.
func WithTable(t *scalar.Table) Option {
	return func(o *options) {
		if t != nil {
			o.table = t
		}
	}
}

// NegLaplacian derives the negative Laplacian of el. The output is a
// directed EdgeList with exactly one weight per ordered pair present in el,
// plus one diagonal entry per vertex index in [0, MaxVertex]. An empty
// input yields an empty directed graph.
func NegLaplacian(el *edgelist.EdgeList, opts ...Option) (*edgelist.EdgeList, error) {
	if el == nil {
		return nil, ErrNilEdgeList
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	lap := edgelist.New(true)
	dim := el.MaxVertex()
	if dim < 0 {
		return lap, nil
	}

	// Off-diagonal pass: one worker per row i; inserts serialize on the
	// output container's lock. Diagonal totals accumulate per row into a
	// slot owned by the worker.
	diag := make([]float64, dim+1)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i <= dim; i++ {
		i := i
		g.Go(func() error {
			var rowSum float64
			for j := 0; j <= dim; j++ {
				if i == j {
					continue
				}
				w, ok := maxAbsWeight(el.EdgeWeights(i, j))
				if !ok {
					continue
				}
				lap.InsertEdge(i, j, w)
				rowSum += w
			}
			diag[i] = -rowSum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 0; i <= dim; i++ {
		lap.InsertEdge(i, i, diag[i])
	}
	return lap, nil
}

// GTilde derives the undirected information graph g̃ from a negative
// Laplacian (the transform is defined for any EdgeList). Every emitted
// weight is at least scalar.Epsilon.
func GTilde(lap *edgelist.EdgeList, opts ...Option) (*edgelist.EdgeList, error) {
	if lap == nil {
		return nil, ErrNilEdgeList
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	tab := o.table
	if tab == nil {
		tab = scalar.Default()
	}

	gt := edgelist.New(false)
	dim := lap.MaxVertex()
	if dim < 0 {
		return gt, nil
	}

	// Global max-absolute weight M over the recorded edges.
	m := math.Inf(-1)
	for _, e := range lap.Edges() {
		if a := math.Abs(e.Weight); a > m {
			m = a
		}
	}

	// First pass: reduce every unordered pair to its max-abs weight and the
	// resulting y = M / W(i,j), tracking the largest y so the table can be
	// warmed once before the fan-out.
	type pair struct {
		i, j int
		y    float64
	}
	var pairs []pair
	maxY := 0.0
	for i := 0; i <= dim; i++ {
		for j := i; j <= dim; j++ {
			union := append(lap.EdgeWeights(i, j), lap.EdgeWeights(j, i)...)
			w, ok := maxAbsWeight(union)
			if !ok || w == 0 {
				// A zero entry (isolated vertex's diagonal) carries no
				// coupling; M/0 has no preimage under v.
				continue
			}
			y := m / w
			if y > maxY {
				maxY = y
			}
			pairs = append(pairs, pair{i: i, j: j, y: y})
		}
	}
	tab.Warm(maxY)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, p := range pairs {
		p := p
		g.Go(func() error {
			x, err := tab.W(p.y)
			if err != nil {
				return fmt.Errorf("laplacian: g̃ pair (%d,%d): %w", p.i, p.j, err)
			}
			gt.InsertEdge(p.i, p.j, math.Max(x, scalar.Epsilon))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return gt, nil
}

// maxAbsWeight reduces a weight bucket by maximum absolute value, the
// module-wide multi-edge convention. ok is false for an empty bucket.
func maxAbsWeight(weights []float64) (float64, bool) {
	if len(weights) == 0 {
		return 0, false
	}
	max := math.Inf(-1)
	for _, w := range weights {
		if a := math.Abs(w); a > max {
			max = a
		}
	}
	return max, true
}
