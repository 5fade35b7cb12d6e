package observe_test

import (
	"math"
	"testing"

	"github.com/epiforge/sirsynth/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCasesRaw_FirstElementZeroAndNonNegative verifies the extraction
// contract: out[0] == 0 and every element is non-negative, for a
// trajectory that both rises and falls.
func TestNewCasesRaw_FirstElementZeroAndNonNegative(t *testing.T) {
	infected := []float64{10, 14, 20, 18, 11, 11, 25}

	raw := observe.NewCasesRaw(infected)
	require.Len(t, raw, len(infected))
	assert.Equal(t, 0.0, raw[0], "day zero has no predecessor")
	for i, v := range raw {
		assert.GreaterOrEqual(t, v, 0.0, "element %d", i)
	}
	assert.Equal(t, []float64{0, 4, 6, 0, 0, 0, 14}, raw, "positive deltas kept, declines clipped")
}

// TestNewCasesRaw_EmptyAndSingle covers the degenerate inputs: empty in,
// empty out; a single sample yields the lone zero.
func TestNewCasesRaw_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, observe.NewCasesRaw(nil))
	assert.Equal(t, []float64{0}, observe.NewCasesRaw([]float64{42}))
}

// TestWeekModulation_OnlySuppresses verifies out[i] <= raw[i] element-wise
// for a weekend factor inside [0,1], and that a zero factor is the
// identity.
func TestWeekModulation_OnlySuppresses(t *testing.T) {
	raw := []float64{0, 5, 10, 20, 40, 80, 160, 320}

	out := observe.WeekModulation(raw, 0.3, 5)
	require.Len(t, out, len(raw))
	for i := range raw {
		assert.LessOrEqual(t, out[i], raw[i], "suppression only reduces, day %d", i)
		assert.GreaterOrEqual(t, out[i], raw[i]*(1-0.3), "suppression bounded by f_w, day %d", i)
	}

	ident := observe.WeekModulation(raw, 0, 5)
	assert.Equal(t, raw, ident, "f_w = 0 modulates nothing")
}

// TestWeekModulation_TroughAtSundayPhase checks the phase anchoring: the
// suppression factor f(i) peaks (reported fraction bottoms out) where
// sin(π/7·i − Φ_w/2) crosses zero. For Φ_w = 0 that is exactly day 0.
func TestWeekModulation_TroughAtSundayPhase(t *testing.T) {
	raw := make([]float64, 14)
	for i := range raw {
		raw[i] = 100
	}

	out := observe.WeekModulation(raw, 0.5, 0)
	// With Φ_w = 0, f(0) = f_w·(1−|sin 0|) = f_w: maximum suppression.
	assert.InDelta(t, 50, out[0], 1e-9, "day 0 fully suppressed by f_w")
	// Quarter period later the sine magnitude peaks and suppression is
	// minimal within the cycle.
	min := out[0]
	for _, v := range out {
		if v < min {
			min = v
		}
	}
	assert.Equal(t, min, out[0], "trough sits on the anchored day")
}

// TestDelayCases_ZeroIsIdentityAndPrefixZeros verifies both delay
// properties: d = 0 copies the series, d = k zero-fills [0,k) and drops
// the last k values.
func TestDelayCases_ZeroIsIdentityAndPrefixZeros(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6}

	same, err := observe.DelayCases(series, 0)
	require.NoError(t, err)
	assert.Equal(t, series, same, "delay 0 is the identity")

	shifted, err := observe.DelayCases(series, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 2, 3, 4}, shifted)

	far, err := observe.DelayCases(series, 10)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), far, "delay past the end zeroes everything")
}

// TestDelayCases_RejectsNegativeDelay verifies the sentinel.
func TestDelayCases_RejectsNegativeDelay(t *testing.T) {
	_, err := observe.DelayCases([]float64{1}, -1)
	assert.ErrorIs(t, err, observe.ErrNegativeDelay)
}

// TestCumulative_MonotoneRollup verifies the total-cases rollup: declines
// carry the previous total forward, rises accumulate.
func TestCumulative_MonotoneRollup(t *testing.T) {
	total, err := observe.Cumulative([]float64{3, 5, 4, 8, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 5, 9, 9}, total)
	for i := 1; i < len(total); i++ {
		assert.GreaterOrEqual(t, total[i], total[i-1], "totals never shrink")
	}

	_, err = observe.Cumulative(nil)
	assert.ErrorIs(t, err, observe.ErrEmptySeries)
}

// TestWeekModulation_SevenDayPeriod verifies the folded sinusoid repeats
// weekly: the suppression factor at day i equals day i+7 up to float error.
func TestWeekModulation_SevenDayPeriod(t *testing.T) {
	raw := make([]float64, 21)
	for i := range raw {
		raw[i] = 1
	}

	out := observe.WeekModulation(raw, 0.4, 3)
	for i := 0; i+7 < len(out); i++ {
		assert.True(t, math.Abs(out[i]-out[i+7]) < 1e-12, "period break at day %d", i)
	}
}
