package scalar

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Default table parameters. Alpha, Beta and Q shape v; Epsilon is the
// numerical floor shared with the g̃ transform; Step is the sampling
// interval Δx; MaxX is the default build target, capped so α·x^β ≤ 705.
const (
	DefaultAlpha = 1.0
	DefaultBeta  = 0.9
	DefaultQ     = 1.2
	DefaultStep  = 1e-3
	DefaultMaxX  = 10000.0

	// Epsilon floors g̃ weights so later distance arithmetic never sees zero.
	Epsilon = 1e-12

	// expArgLimit keeps exp(α·x^β) below ≈1e306.
	expArgLimit = 705.0

	// extendSteps is how many Δx the table grows by per out-of-range retry.
	extendSteps = 1000
)

// Sentinel errors for table lookups.
var (
	// ErrNegativeInput is returned by W for y < 0.
	ErrNegativeInput = errors.New("scalar: w of negative input")

	// ErrOutOfRange is returned when y cannot be bracketed by the table.
	ErrOutOfRange = errors.New("scalar: input beyond tabulated range")

	// ErrOverflow is returned by V when α·x^β exceeds the exp limit.
	ErrOverflow = errors.New("scalar: v argument overflows exp")
)

// Option configures a Table before first use.
type Option func(*Table)

// WithAlpha sets α.
func WithAlpha(alpha float64) Option { return func(t *Table) { t.alpha = alpha } }

// WithBeta sets β.
func WithBeta(beta float64) Option { return func(t *Table) { t.beta = beta } }

// WithQ sets q.
func WithQ(q float64) Option { return func(t *Table) { t.q = q } }

// WithStep sets the sampling interval Δx. Non-positive values are ignored.
func WithStep(step float64) Option {
	return func(t *Table) {
		if step > 0 {
			t.step = step
		}
	}
}

// WithMaxX sets the default build target for the lazy first build.
func WithMaxX(maxX float64) Option {
	return func(t *Table) {
		if maxX > 0 {
			t.buildTarget = maxX
		}
	}
}

// WithoutExtension disables on-demand growth: lookups beyond the tabulated
// range fail with ErrOutOfRange instead of extending.
func WithoutExtension() Option { return func(t *Table) { t.extend = false } }

// Table is an append-only monotone lookup table for v and its inverse.
// Construct with NewTable or share the process-wide Default.
type Table struct {
	mu sync.RWMutex

	alpha, beta, q float64
	step           float64
	buildTarget    float64
	extend         bool

	// Parallel slices sorted by y (ascending, since v is increasing).
	ys []float64
	xs []float64

	// maxX is the largest x currently tabulated.
	maxX float64
}

// NewTable returns an empty table; the first lookup builds it.
func NewTable(opts ...Option) *Table {
	t := &Table{
		alpha:       DefaultAlpha,
		beta:        DefaultBeta,
		q:           DefaultQ,
		step:        DefaultStep,
		buildTarget: DefaultMaxX,
		extend:      true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the shared process-wide table with default parameters.
// It is initialized once; callers that need different constants construct
// their own Table.
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// V evaluates v(x) directly. Returns ErrOverflow when α·x^β > 705, at which
// point exp(·) would exceed the largest finite float64.
func (t *Table) V(x float64) (float64, error) {
	arg := t.alpha * math.Pow(x, t.beta)
	if arg > expArgLimit {
		return 0, fmt.Errorf("%w: x=%g", ErrOverflow, x)
	}
	return math.Exp(arg) * math.Pow(1+x, t.q), nil
}

// MaxX reports the largest x currently tabulated (0 before the first build).
func (t *Table) MaxX() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.maxX
}

// xCap is the largest x for which v(x) stays finite.
func (t *Table) xCap() float64 {
	return math.Pow(expArgLimit/t.alpha, 1/t.beta)
}

// build extends the table up to min(target, overflow cap). Caller holds the
// write lock. Idempotent: repeated builds only ever extend.
func (t *Table) build(target float64) {
	limit := t.xCap()
	if target > limit {
		target = limit
	}
	x := 0.0
	if len(t.xs) > 0 {
		x = t.maxX + t.step
	}
	for ; x <= target; x += t.step {
		y, err := t.V(x)
		if err != nil {
			break
		}
		t.ys = append(t.ys, y)
		t.xs = append(t.xs, x)
		t.maxX = x
	}
}

// ensureBuilt performs the lazy first build. Caller holds the write lock.
func (t *Table) ensureBuilt() {
	if len(t.ys) == 0 {
		t.build(t.buildTarget)
	}
}

// Warm extends the table until y is bracketed (or the overflow cap is hit).
// Parallel regions call this up front so their lookups proceed under read
// locks only.
func (t *Table) Warm(y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureBuilt()
	for len(t.ys) > 0 && t.ys[len(t.ys)-1] < y {
		if !t.grow() {
			return
		}
	}
}

// grow extends the table by extendSteps·Δx. Reports whether any entry was
// added; false means the overflow cap has been reached. Caller holds the
// write lock.
func (t *Table) grow() bool {
	before := len(t.ys)
	t.build(t.maxX + extendSteps*t.step)
	return len(t.ys) > before
}

// W returns w(y) ≈ v⁻¹(y). Exact tabulated hits return the stored x;
// everything else linearly interpolates between the bracketing entries.
// When y exceeds the tabulated range the table extends by extendSteps·Δx and
// retries (unless extension is disabled), failing with ErrOutOfRange once
// the overflow cap is reached.
func (t *Table) W(y float64) (float64, error) {
	if y < 0 {
		return 0, fmt.Errorf("%w: y=%g", ErrNegativeInput, y)
	}

	// A built table that already reaches y is read under the read lock;
	// building and growth take the write lock.
	t.mu.RLock()
	if len(t.ys) > 0 && t.ys[len(t.ys)-1] >= y {
		defer t.mu.RUnlock()
	} else {
		t.mu.RUnlock()
		t.mu.Lock()
		defer t.mu.Unlock()
		t.ensureBuilt()
	}
	idx := sort.SearchFloat64s(t.ys, y)
	for idx == len(t.ys) {
		if !t.extend || !t.grow() {
			return 0, fmt.Errorf("%w: y=%g above v(%g)", ErrOutOfRange, y, t.maxX)
		}
		idx = sort.SearchFloat64s(t.ys, y)
	}
	upperY, upperX := t.ys[idx], t.xs[idx]
	if upperY == y {
		return upperX, nil
	}
	if idx == 0 {
		// y < v(0) = 1: no bracketing entry below.
		return 0, fmt.Errorf("%w: y=%g below v(0)", ErrOutOfRange, y)
	}
	lowerY, lowerX := t.ys[idx-1], t.xs[idx-1]

	return lowerX + (upperX-lowerX)*(y-lowerY)/(upperY-lowerY), nil
}

// MaxApproximationThreshold returns the largest tabulated (x, y') with
// y' ≤ y. Consumers use the x half to decide when to stop trusting the
// interpolated inverse and switch to direct v evaluation.
func (t *Table) MaxApproximationThreshold(y float64) (x, tabulatedY float64, err error) {
	t.mu.RLock()
	if len(t.ys) > 0 && t.ys[len(t.ys)-1] >= y {
		defer t.mu.RUnlock()
	} else {
		t.mu.RUnlock()
		t.mu.Lock()
		defer t.mu.Unlock()
		t.ensureBuilt()
	}
	idx := sort.SearchFloat64s(t.ys, y)
	for idx == len(t.ys) {
		if !t.extend || !t.grow() {
			return 0, 0, fmt.Errorf("%w: y=%g above v(%g)", ErrOutOfRange, y, t.maxX)
		}
		idx = sort.SearchFloat64s(t.ys, y)
	}
	if t.ys[idx] == y {
		return t.xs[idx], t.ys[idx], nil
	}
	if idx == 0 {
		return 0, 0, fmt.Errorf("%w: y=%g below v(0)", ErrOutOfRange, y)
	}
	return t.xs[idx-1], t.ys[idx-1], nil
}
