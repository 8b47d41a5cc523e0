package neighborhood

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/LivelyCarpet87/network-locality-exploration/scalar"
)

// precisionLossLimit is the partial-sum magnitude past which averages warn
// about precision loss.
const precisionLossLimit = 1e300

// Sentinel errors for neighborhood statistics.
var (
	// ErrNilEdgeList is returned when a nil container is passed.
	ErrNilEdgeList = errors.New("neighborhood: edge list is nil")

	// ErrEmptyGraph is returned when the Laplacian holds no vertices.
	ErrEmptyGraph = errors.New("neighborhood: empty graph")

	// ErrBadGamma is returned when gamma lies outside (0, 1).
	ErrBadGamma = errors.New("neighborhood: gamma must be in (0, 1)")

	// ErrBadLimit is returned for a non-positive neighborhood size L.
	ErrBadLimit = errors.New("neighborhood: L must be positive")

	// ErrNoValidSamples is returned when every source was excluded from an
	// average.
	ErrNoValidSamples = errors.New("neighborhood: no valid samples")

	// ErrSumOverflow is returned when a raw sum overflows to +Inf.
	ErrSumOverflow = errors.New("neighborhood: sum overflowed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("neighborhood: invalid option supplied")
)

// WarnFunc receives non-fatal diagnostics (precision loss, v overflow).
type WarnFunc func(format string, args ...any)

// Option configures a statistics run.
type Option func(*Options)

// Options holds tunables shared by the neighborhood statistics.
type Options struct {
	// Workers bounds the per-source fan-out pool.
	Workers int

	// Table is the v/w table; nil selects the shared default.
	Table *scalar.Table

	// Warn receives non-fatal diagnostics.
	Warn WarnFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions sizes the pool to GOMAXPROCS and logs warnings through the
// standard logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Warn:    log.Printf,
	}
}

// WithWorkers bounds the fan-out worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTable supplies a v/w table instead of the shared default.
func WithTable(t *scalar.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}

// WithWarnFunc redirects non-fatal diagnostics; a nil fn silences them.
func WithWarnFunc(fn WarnFunc) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(string, ...any) {}
		}
		o.Warn = fn
	}
}

// build applies opts over defaults and resolves the table.
func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Table == nil {
		o.Table = scalar.Default()
	}
	return o, nil
}
