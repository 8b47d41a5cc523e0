// Package scalar provides the monotone scalar function
//
//	v(x) = exp(α·x^β) · (1+x)^q, x ≥ 0
//
// and its numerical inverse w(y) ≈ v⁻¹(y), approximated by linear
// interpolation over a precomputed lookup table.
//
// v is strictly increasing with v(0) = 1, so the table — entries (y = v(x), x)
// sampled at a fixed step Δx — stays sorted by y and supports O(log n)
// inversion, which matters because w is called inside the inner loops of the
// g̃ transform and the γ-neighborhood search.
//
// The table is built lazily on first use and only ever grows: when a query
// exceeds the tabulated range and extension is enabled (the default), the
// table extends by a fixed number of steps and retries, up to the overflow
// cap where α·x^β would exceed 705 (keeping exp(·) below the largest finite
// float64). Growth is serialized by a writer lock; lookups take a read lock,
// so a table warmed to a sufficient range serves parallel regions without
// contention.
//
// Errors (sentinel):
//
//   - ErrNegativeInput — w(y) called with y < 0.
//   - ErrOutOfRange    — y falls outside the tabulated (and extendable) range.
//   - ErrOverflow      — v(x) would overflow after exponentiation.
package scalar
