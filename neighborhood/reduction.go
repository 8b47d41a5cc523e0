package neighborhood

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/geodesic"
)

// ReductionRate reports κ / (v(max_distance)·μ) for src, where max_distance
// is the largest info distance among the L nearest vertices of src on gt
// (at most L-1 hops out). An isolated source returns +Inf, which averages
// treat as "undefined" and exclude; an overflowing v warns and returns 0.
func ReductionRate(lap, gt *edgelist.EdgeList, l, src int, opts ...Option) (float64, error) {
	if lap == nil || gt == nil {
		return 0, ErrNilEdgeList
	}
	if l < 1 {
		return 0, fmt.Errorf("%w: L=%d", ErrBadLimit, l)
	}
	o, err := build(opts)
	if err != nil {
		return 0, err
	}

	// Members of the L-neighborhood are at most L-1 edges away.
	dtv, err := geodesic.DistanceK(gt, src, l-1)
	if err != nil {
		return 0, err
	}

	distances := make([]float64, 0, len(dtv))
	for _, dp := range dtv {
		distances = append(distances, dp.InfoDistance)
	}
	sort.Float64s(distances)
	maxDistance := distances[min(l-1, len(distances)-1)]

	kappa, mu := kappaMu(lap, src)
	if isolated(mu) {
		return math.Inf(1), nil
	}

	v, err := o.Table.V(maxDistance)
	if err != nil {
		o.Warn("neighborhood: reduction rate for source %d: %v", src, err)
		return 0, nil
	}
	res := kappa / (v * mu)
	if math.IsInf(res, 1) {
		o.Warn("neighborhood: reduction rate for source %d overflowed (kappa=%g mu=%g v=%g)", src, kappa, mu, v)
		return 0, nil
	}
	return res, nil
}

// ReductionRateAverage is the arithmetic mean of ReductionRate over every
// source of lap, excluding +Inf contributions. It fails when the raw sum
// overflows or no source yields a finite rate.
func ReductionRateAverage(lap, gt *edgelist.EdgeList, l int, opts ...Option) (float64, error) {
	if lap == nil || gt == nil {
		return 0, ErrNilEdgeList
	}
	if l < 1 {
		return 0, fmt.Errorf("%w: L=%d", ErrBadLimit, l)
	}
	o, err := build(opts)
	if err != nil {
		return 0, err
	}
	dim := lap.MaxVertex()
	if dim < 0 {
		return 0, ErrEmptyGraph
	}

	rates := make([]float64, dim+1)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for src := 0; src <= dim; src++ {
		src := src
		g.Go(func() error {
			rate, err := ReductionRate(lap, gt, l, src, opts...)
			if err != nil {
				return err
			}
			rates[src] = rate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total float64
	count := 0
	for _, rate := range rates {
		if math.IsInf(rate, 1) {
			continue
		}
		total += rate
		count++
	}
	if math.IsInf(total, 1) {
		return 0, ErrSumOverflow
	}
	if count == 0 {
		return 0, ErrNoValidSamples
	}
	return total / float64(count), nil
}
