package geodesic

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
)

// CrossDistanceK runs DistanceK from every vertex in [0, MaxVertex] on a
// worker pool and assembles the per-source results by index. An empty
// container yields an empty map.
func CrossDistanceK(el *edgelist.EdgeList, k int, opts ...Option) (DistanceBetweenVertices, error) {
	return cross(el, opts, func(src int) (DistanceToVertices, error) {
		return DistanceK(el, src, k)
	})
}

// CrossDistanceTau is CrossDistanceK with the info-distance bound tau.
func CrossDistanceTau(el *edgelist.EdgeList, tau float64, opts ...Option) (DistanceBetweenVertices, error) {
	return cross(el, opts, func(src int) (DistanceToVertices, error) {
		return DistanceTau(el, src, tau)
	})
}

// cross fans run out over every source on an errgroup bounded by the worker
// option. Each worker owns slot src of the result slice, so no locking is
// needed until assembly.
func cross(el *edgelist.EdgeList, opts []Option, run func(src int) (DistanceToVertices, error)) (DistanceBetweenVertices, error) {
	if el == nil {
		return nil, ErrNilEdgeList
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dim := el.MaxVertex()
	dbv := make(DistanceBetweenVertices, dim+1)
	if dim < 0 {
		return dbv, nil
	}

	res := make([]DistanceToVertices, dim+1)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for src := 0; src <= dim; src++ {
		src := src
		g.Go(func() error {
			dtv, err := run(src)
			if err != nil {
				return fmt.Errorf("geodesic: source %d: %w", src, err)
			}
			res[src] = dtv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for src := 0; src <= dim; src++ {
		dbv[src] = res[src]
	}
	return dbv, nil
}
