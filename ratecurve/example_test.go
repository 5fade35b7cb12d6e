package ratecurve_test

import (
	"fmt"
	"time"

	"github.com/epiforge/sirsynth/ratecurve"
	"github.com/epiforge/sirsynth/timeline"
)

// ExampleBuild shows the two plateaus of a single change point: the curve
// leaves the initial rate, transitions through the logistic S-curve and
// settles on the change point's rate, held through the window end.
func ExampleBuild() {
	day := func(d int) time.Time { return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC) }
	w, _ := timeline.New(day(1), day(31))

	rates, err := ratecurve.Build(w, 0.1, []ratecurve.ChangePoint{
		{Date: day(16), Rate: 0.9},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("days:", len(rates))
	fmt.Printf("start plateau: %.3f\n", rates[0])
	fmt.Printf("end plateau:   %.3f\n", rates[len(rates)-1])
	// Output:
	// days: 31
	// start plateau: 0.102
	// end plateau:   0.900
}
