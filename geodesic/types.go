package geodesic

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// RelTolerance is the relative tolerance η of the improvement test: a
// candidate replaces the stored distance only when it is better by more than
// candidate·η. Load-bearing — relaxing it cascades re-enqueues in dense
// graphs.
const RelTolerance = 1e-5

// unreachedNet marks a destination with no recorded path yet.
const unreachedNet = math.MaxInt32

// Sentinel errors for geodesic searches.
var (
	// ErrNilEdgeList is returned when a nil container is passed.
	ErrNilEdgeList = errors.New("geodesic: edge list is nil")

	// ErrBadLimit is returned for a negative hop bound or info bound.
	ErrBadLimit = errors.New("geodesic: invalid search limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("geodesic: invalid option supplied")
)

// DistancePair is the per-destination search result: InfoDistance is the
// accumulated weight sum, NetDistance the hop count.
type DistancePair struct {
	InfoDistance float64
	NetDistance  int
}

// DistanceToVertices maps destination vertex → DistancePair relative to an
// implicit source. Its key set is the reached set of the search.
type DistanceToVertices map[int]DistancePair

// DistanceBetweenVertices maps source vertex → DistanceToVertices.
type DistanceBetweenVertices map[int]DistanceToVertices

// AdmitFunc decides whether a candidate relaxation may pass: from is the
// frontier vertex's pair, cand the pair reached by crossing the edge under
// test. Returning false prunes the edge.
type AdmitFunc func(from, cand DistancePair) bool

// Option configures the parallel cross drivers.
type Option func(*Options)

// Options holds tunables for CrossDistanceK and CrossDistanceTau.
type Options struct {
	// Workers bounds the worker pool for the per-source fan-out.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the worker pool sized to GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the fan-out worker pool.
//
//	n > 0: use n workers
//	n ≤ 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
