package sir_test

import (
	"fmt"

	"github.com/epiforge/sirsynth/sir"
)

// ExampleIntegrate integrates ten days with zero transmission: nobody gets
// infected, so the susceptible pool is untouched while the infected
// compartment decays into the recovered one. Population is conserved.
func ExampleIntegrate() {
	p := sir.Parameters{S0: 1_000_000, I0: 100, R0: 0, Mu: 0.1}
	rates := make([]float64, 10) // λ_t = 0 for every day

	traj, err := sir.Integrate(p, rates)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	last := traj[len(traj)-1]
	fmt.Println("states:", len(traj))
	fmt.Printf("susceptible: %.0f\n", last.S)
	fmt.Printf("population:  %.0f\n", last.N())
	fmt.Println("infected decayed:", last.I < p.I0)
	// Output:
	// states: 11
	// susceptible: 1000000
	// population:  1000100
	// infected decayed: true
}
