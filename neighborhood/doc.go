// Package neighborhood computes the size statistics of γ-neighborhoods and
// L-neighborhoods on the derived graph pair (L, g̃).
//
// For a negative Laplacian L and a source s, two magnitudes drive every
// statistic:
//
//	κ = max over all edges of L of |weight|        (global)
//	μ = max over edges of L incident to s of |weight| (per-source)
//
// GammaNeighborhood (Ñ_γ) runs the constrained search on g̃ admitting a
// candidate distance d while κ / v(d) > γ·μ, shortcutting the test for
// distances still inside the v/w table's interpolation range. The returned
// distance map's key set is the γ-neighborhood of s.
//
// SAvg averages |Ñ_γ(s)| over all sources. ReductionRate reports
// κ / (v(max_distance)·μ) with max_distance the largest info distance among
// the L nearest vertices of s on g̃; ReductionRateAverage averages the rate
// over sources, excluding +Inf contributions from isolated vertices.
//
// Partial sums past 1e300 raise a precision-loss warning through the
// package's warn hook but still yield a best-effort result; a raw sum that
// overflows, or an average with zero finite samples, fails hard.
//
// Errors (sentinel): ErrNilEdgeList, ErrEmptyGraph, ErrBadGamma,
// ErrBadLimit, ErrNoValidSamples, ErrSumOverflow, ErrOptionViolation.
package neighborhood
