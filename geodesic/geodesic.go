package geodesic

import (
	"fmt"
	"math"

	"github.com/LivelyCarpet87/network-locality-exploration/edgelist"
)

// DistanceK computes (info, net) distance pairs from src to every vertex
// reachable in at most k hops. Ties on info distance resolve to the fewer
// hops. k must be non-negative; k = 0 reaches only src itself.
func DistanceK(el *edgelist.EdgeList, src, k int) (DistanceToVertices, error) {
	if el == nil {
		return nil, ErrNilEdgeList
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadLimit, k)
	}
	return Search(el, src, func(from, _ DistancePair) bool {
		return from.NetDistance < k
	}), nil
}

// DistanceTau computes (info, net) distance pairs from src to every vertex
// whose info distance stays within tau. tau must be non-negative.
func DistanceTau(el *edgelist.EdgeList, src int, tau float64) (DistanceToVertices, error) {
	if el == nil {
		return nil, ErrNilEdgeList
	}
	if tau < 0 {
		return nil, fmt.Errorf("%w: tau=%g", ErrBadLimit, tau)
	}
	return Search(el, src, func(_, cand DistancePair) bool {
		return cand.InfoDistance <= tau
	}), nil
}

// Search is the constrained relaxation kernel shared by every distance
// metric. It drains a FIFO frontier seeded with src, relaxing each out-edge
// of the popped vertex (self-loops skipped, directionality per the
// container's flag) through admit and the tolerance-based improvement test.
// A destination re-enters the frontier whenever its pair improves, so the
// reached set is exact even under non-monotone admission predicates.
func Search(el *edgelist.EdgeList, src int, admit AdmitFunc) DistanceToVertices {
	dtv := DistanceToVertices{src: {InfoDistance: 0, NetDistance: 0}}

	queue := []int{src}
	inQueue := map[int]bool{src: true}

	push := func(v int) {
		if !inQueue[v] {
			queue = append(queue, v)
			inQueue[v] = true
		}
	}

	for len(queue) > 0 {
		from := queue[0]
		queue = queue[1:]
		delete(inQueue, from)

		fu := dtv[from]

		for _, e := range el.EdgesFrom(from) {
			to := e.Dest
			if to == from {
				continue
			}

			cand := DistancePair{
				InfoDistance: fu.InfoDistance + e.Weight,
				NetDistance:  fu.NetDistance + 1,
			}
			if !admit(fu, cand) {
				continue
			}

			cur, ok := dtv[to]
			if !ok {
				cur = DistancePair{InfoDistance: math.Inf(1), NetDistance: unreachedNet}
			}

			tol := cand.InfoDistance * RelTolerance
			switch {
			case cur.InfoDistance-cand.InfoDistance > tol:
				dtv[to] = cand
				push(to)
			case math.Abs(cur.InfoDistance-cand.InfoDistance) <= tol && cur.NetDistance > cand.NetDistance:
				// Same info distance within tolerance, fewer hops: keep the
				// stored info value, take the shorter net distance.
				dtv[to] = DistancePair{InfoDistance: cur.InfoDistance, NetDistance: cand.NetDistance}
				push(to)
			}
		}
	}

	return dtv
}
