package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LivelyCarpet87/network-locality-exploration/scalar"
)

// v is the closed form with default constants, for cross-checking table
// lookups.
func v(x float64) float64 {
	return math.Exp(scalar.DefaultAlpha*math.Pow(x, scalar.DefaultBeta)) *
		math.Pow(1+x, scalar.DefaultQ)
}

func smallTable(opts ...scalar.Option) *scalar.Table {
	base := []scalar.Option{scalar.WithMaxX(5)}
	return scalar.NewTable(append(base, opts...)...)
}

func TestV_MatchesClosedForm(t *testing.T) {
	tab := smallTable()
	for _, x := range []float64{0, 0.5, 1, 2.5, 10} {
		got, err := tab.V(x)
		require.NoError(t, err)
		assert.InEpsilon(t, v(x), got, 1e-12, "x=%g", x)
	}

	// v(0) = 1 exactly.
	got, err := tab.V(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestV_Overflow(t *testing.T) {
	tab := smallTable()
	_, err := tab.V(1e12)
	assert.ErrorIs(t, err, scalar.ErrOverflow)
}

func TestW_NegativeInput(t *testing.T) {
	tab := smallTable()
	_, err := tab.W(-0.5)
	assert.ErrorIs(t, err, scalar.ErrNegativeInput)
}

func TestW_BelowVZero(t *testing.T) {
	// v(x) ≥ 1 for x ≥ 0, so y < 1 has no preimage.
	tab := smallTable()
	_, err := tab.W(0.5)
	assert.ErrorIs(t, err, scalar.ErrOutOfRange)
}

// TestW_InverseErrorBound checks the linear-interpolation error bound:
// w(v(x)) stays within two sampling steps of x.
func TestW_InverseErrorBound(t *testing.T) {
	tab := smallTable()
	for x := 0.05; x < 4.9; x += 0.37 {
		got, err := tab.W(v(x))
		require.NoError(t, err)
		assert.InDelta(t, x, got, 2*scalar.DefaultStep, "x=%g", x)
	}
}

func TestW_ExactHitReturnsTabulatedX(t *testing.T) {
	// v(0) = 1 is the first table entry; an exact hit skips interpolation.
	tab := smallTable()
	got, err := tab.W(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestW_ExtendsOnDemand(t *testing.T) {
	tab := smallTable() // built to x=5 lazily
	y := v(7)           // beyond the initial range

	got, err := tab.W(y)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 2*scalar.DefaultStep)
	assert.GreaterOrEqual(t, tab.MaxX(), 7.0)
}

func TestW_OutOfRangeWithoutExtension(t *testing.T) {
	tab := smallTable(scalar.WithoutExtension())
	_, err := tab.W(v(7))
	assert.ErrorIs(t, err, scalar.ErrOutOfRange)
}

func TestWarm_GrowsOnce(t *testing.T) {
	tab := smallTable()
	tab.Warm(v(9))
	require.GreaterOrEqual(t, tab.MaxX(), 9.0)

	// Lookups inside the warmed range succeed.
	got, err := tab.W(v(8.5))
	require.NoError(t, err)
	assert.InDelta(t, 8.5, got, 2*scalar.DefaultStep)
}

func TestMaxApproximationThreshold(t *testing.T) {
	tab := smallTable()
	x, y, err := tab.MaxApproximationThreshold(v(2.5))
	require.NoError(t, err)

	// The returned pair is the largest tabulated entry at or below the
	// query, so x brackets 2.5 from below within one step.
	assert.LessOrEqual(t, y, v(2.5))
	assert.InDelta(t, 2.5, x, 2*scalar.DefaultStep)
}

func TestTable_GrowthIsMonotone(t *testing.T) {
	tab := smallTable()
	_, err := tab.W(v(1))
	require.NoError(t, err)
	before := tab.MaxX()

	// A second lookup inside the range must not shrink or rebuild.
	_, err = tab.W(v(0.5))
	require.NoError(t, err)
	assert.Equal(t, before, tab.MaxX())
}

func TestDefault_SharedInstance(t *testing.T) {
	assert.Same(t, scalar.Default(), scalar.Default())
}
