// Package geodesic computes constrained shortest-path distances over an
// edgelist.EdgeList, tracking an (info distance, net distance) pair per
// destination: info distance is the sum of edge weights along the path, net
// distance the hop count. Primary order is info distance ascending, ties
// broken by fewer hops.
//
// The kernel is not plain Dijkstra: it relaxes a FIFO frontier with
// re-enqueue, because the admission predicate prunes non-monotonically (the
// γ-bounded variant used by the neighborhood statistics admits by a
// threshold on v(candidate distance), not by the distance itself). A vertex
// may be visited several times as better paths surface; with non-negative
// weights the frontier still drains.
//
// Improvement tests use a relative tolerance of 1e-5 rather than strict
// comparison: g̃ edge weights land extremely close together after the
// inverse-v mapping, and strict float comparison oscillates under rounding.
//
// Variants:
//
//   - DistanceK:   admit while the frontier vertex is fewer than k hops out.
//   - DistanceTau: admit while the candidate info distance stays ≤ τ.
//   - Search:      caller-supplied admission predicate (the γ-neighborhood
//     in package neighborhood is built on this).
//
// CrossDistanceK and CrossDistanceTau fan the single-source variants out
// over every vertex on a worker pool; per-source results are independent and
// assembled by index.
//
// Errors (sentinel): ErrNilEdgeList, ErrBadLimit, ErrOptionViolation.
package geodesic
