package timeline_test

import (
	"testing"
	"time"

	"github.com/epiforge/sirsynth/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// date is a test shorthand for midnight-UTC calendar dates.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestNew_RejectsReversedWindow verifies that an end date before the start
// date fails with ErrInvalidWindow.
func TestNew_RejectsReversedWindow(t *testing.T) {
	_, err := timeline.New(date(2020, 3, 20), date(2020, 3, 10))
	assert.ErrorIs(t, err, timeline.ErrInvalidWindow, "reversed window must be rejected")
}

// TestNew_NormalizesClockComponents verifies that sub-day precision and
// non-UTC locations are discarded on construction.
func TestNew_NormalizesClockComponents(t *testing.T) {
	loc := time.FixedZone("X", -3*3600)
	w, err := timeline.New(
		time.Date(2020, 3, 10, 17, 45, 3, 0, time.UTC),
		time.Date(2020, 3, 20, 1, 2, 3, 0, loc))
	require.NoError(t, err)

	assert.Equal(t, date(2020, 3, 10), w.Start, "start truncated to midnight UTC")
	assert.Equal(t, date(2020, 3, 20), w.End, "end truncated to midnight UTC")
}

// TestDays_InclusiveConvention pins the inclusive length convention:
// 2020-03-10..2020-03-20 spans exactly 11 days, and a single-day window
// has length 1.
func TestDays_InclusiveConvention(t *testing.T) {
	w, err := timeline.New(date(2020, 3, 10), date(2020, 3, 20))
	require.NoError(t, err)
	assert.Equal(t, 11, w.Days(), "inclusive 11-day window")

	single, err := timeline.New(date(2020, 3, 10), date(2020, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days(), "degenerate window holds one day")
}

// TestDates_MatchesDaysAndIndexRoundTrip checks that Dates() has exactly
// Days() entries and that Date/Index are inverses over the window.
func TestDates_MatchesDaysAndIndexRoundTrip(t *testing.T) {
	w, err := timeline.New(date(2020, 3, 10), date(2020, 4, 26))
	require.NoError(t, err)

	dates := w.Dates()
	require.Len(t, dates, w.Days())
	for i, d := range dates {
		assert.Equal(t, d, w.Date(i), "Date(i) matches expansion")
		assert.Equal(t, i, w.Index(d), "Index inverts Date")
		assert.True(t, w.Contains(d))
	}
	assert.False(t, w.Contains(date(2020, 4, 27)), "day past End excluded")
	assert.False(t, w.Contains(date(2020, 3, 9)), "day before Start excluded")
}

// TestSundayOffset_AnchorsOnFirstSunday verifies the count of days from the
// window start to the first Sunday: 2020-03-10 is a Tuesday, the next
// Sunday is 2020-03-15, so the offset is 5; a Sunday start has offset 0.
func TestSundayOffset_AnchorsOnFirstSunday(t *testing.T) {
	w, err := timeline.New(date(2020, 3, 10), date(2020, 3, 20))
	require.NoError(t, err)
	assert.Equal(t, 5, w.SundayOffset())

	sun, err := timeline.New(date(2020, 3, 15), date(2020, 3, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, sun.SundayOffset(), "window starting on Sunday")
}

// TestSundays_EnumeratesWeekly checks the Sunday enumeration used by the
// change-point default, including the empty case for a Sunday-free window.
func TestSundays_EnumeratesWeekly(t *testing.T) {
	w, err := timeline.New(date(2020, 3, 10), date(2020, 3, 30))
	require.NoError(t, err)
	assert.Equal(t,
		[]time.Time{date(2020, 3, 15), date(2020, 3, 22), date(2020, 3, 29)},
		w.Sundays())

	none, err := timeline.New(date(2020, 3, 16), date(2020, 3, 20))
	require.NoError(t, err)
	assert.Empty(t, none.Sundays(), "Mon..Fri window holds no Sunday")
}
