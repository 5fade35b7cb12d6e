package observe_test

import (
	"fmt"

	"github.com/epiforge/sirsynth/observe"
)

// ExampleNewCasesRaw extracts the daily observable from a prevalence
// series that rises, dips (unobservable, clipped to zero) and rises again.
func ExampleNewCasesRaw() {
	infected := []float64{10, 14, 20, 18, 25}

	fmt.Println(observe.NewCasesRaw(infected))
	// Output:
	// [0 4 6 0 7]
}

// ExampleDelayCases shifts a reported series forward by two days of
// confirmation lag: the head is zero-filled, the tail is dropped and the
// length is preserved.
func ExampleDelayCases() {
	series := []float64{5, 8, 13, 21, 34}

	delayed, err := observe.DelayCases(series, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(delayed)
	// Output:
	// [0 0 5 8 13]
}

// ExampleCumulative rolls daily counts into a running total that never
// shrinks, even where the daily series declines.
func ExampleCumulative() {
	total, err := observe.Cumulative([]float64{3, 5, 4, 8})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(total)
	// Output:
	// [3 5 5 9]
}
