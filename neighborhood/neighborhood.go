package neighborhood

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
	"github.com/LivelyCarpet87/network-locality-exploration/geodesic"
)

// kappaMu scans the Laplacian's edges for the global and per-source
// max-absolute weights. Both come back as -Inf when no edge qualifies.
func kappaMu(lap *edgelist.EdgeList, src int) (kappa, mu float64) {
	kappa, mu = math.Inf(-1), math.Inf(-1)
	for _, e := range lap.Edges() {
		a := math.Abs(e.Weight)
		if a > kappa {
			kappa = a
		}
		if (e.Src == src || e.Dest == src) && a > mu {
			mu = a
		}
	}
	return kappa, mu
}

// isolated reports whether mu marks src as having no usable incident edge.
func isolated(mu float64) bool {
	return mu <= 0 || math.IsInf(mu, -1)
}

// GammaNeighborhood computes Ñ_γ(src): the constrained search on gt whose
// admission threshold is κ / v(d) > γ·μ with κ and μ taken from lap. The
// returned map's key set is the γ-neighborhood; an isolated source yields
// the singleton {src}.
func GammaNeighborhood(lap, gt *edgelist.EdgeList, src int, gamma float64, opts ...Option) (geodesic.DistanceToVertices, error) {
	if lap == nil || gt == nil {
		return nil, ErrNilEdgeList
	}
	if gamma <= 0 || gamma >= 1 {
		return nil, fmt.Errorf("%w: gamma=%g", ErrBadGamma, gamma)
	}
	o, err := build(opts)
	if err != nil {
		return nil, err
	}

	kappa, mu := kappaMu(lap, src)
	if isolated(mu) {
		return geodesic.DistanceToVertices{src: {InfoDistance: 0, NetDistance: 0}}, nil
	}

	// Distances below maxApproxX are inside the table's interpolation range
	// and pass without evaluating v.
	maxApproxX, _, err := o.Table.MaxApproximationThreshold(kappa / (gamma * mu))
	if err != nil {
		return nil, fmt.Errorf("neighborhood: threshold for source %d: %w", src, err)
	}

	threshold := gamma * mu
	admit := func(_, cand geodesic.DistancePair) bool {
		if cand.InfoDistance < maxApproxX {
			return true
		}
		v, err := o.Table.V(cand.InfoDistance)
		if err != nil {
			// v would overflow: the candidate is too distant to admit.
			o.Warn("neighborhood: rejecting distance %g: %v", cand.InfoDistance, err)
			return false
		}
		return kappa/v > threshold
	}

	return geodesic.Search(gt, src, admit), nil
}

// SAvg averages the γ-neighborhood cardinality over every source in
// [0, MaxVertex] of lap. Partial sums past 1e300 warn but still produce a
// best-effort result.
func SAvg(lap, gt *edgelist.EdgeList, gamma float64, opts ...Option) (float64, error) {
	if lap == nil || gt == nil {
		return 0, ErrNilEdgeList
	}
	o, err := build(opts)
	if err != nil {
		return 0, err
	}
	dim := lap.MaxVertex()
	if dim < 0 {
		return 0, ErrEmptyGraph
	}

	sizes := make([]float64, dim+1)
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for src := 0; src <= dim; src++ {
		src := src
		g.Go(func() error {
			dtv, err := GammaNeighborhood(lap, gt, src, gamma, opts...)
			if err != nil {
				return err
			}
			sizes[src] = float64(len(dtv))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := floats.Sum(sizes)
	if total > precisionLossLimit {
		o.Warn("neighborhood: precision loss risk: neighborhood size sum %g exceeded %g", total, precisionLossLimit)
	}
	return total / float64(dim+1), nil
}
