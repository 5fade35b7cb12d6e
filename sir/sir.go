// SPDX-License-Identifier: MIT
// Package: sirsynth/sir
//
// sir.go — fixed-step RK4 over the 3-compartment SIR vector field.
//
// Contract:
//   - Integrate validates the initial condition before touching the rates:
//     negative compartments, zero population and non-positive recovery
//     rate all fail fast with sentinels (never NaN propagation).
//   - Output length is len(rates)+1; element 0 is the initial condition.
//   - Pure and deterministic: same inputs ⇒ bit-identical trajectory.

package sir

import "errors"

// stepDays is the fixed RK4 step size. One step per rate-sequence entry.
const stepDays = 1.0

var (
	// ErrZeroPopulation indicates S0+I0+R0 == 0; the vector field divides
	// by N, so integration would immediately produce NaN.
	ErrZeroPopulation = errors.New("sir: population is zero")

	// ErrNegativeCompartment indicates a negative initial compartment count.
	ErrNegativeCompartment = errors.New("sir: negative initial compartment")

	// ErrBadRecovery indicates a non-positive recovery rate μ.
	ErrBadRecovery = errors.New("sir: recovery rate must be positive")
)

// Parameters is the initial condition and recovery rate of one run.
type Parameters struct {
	S0 float64 // initial susceptible count, >= 0
	I0 float64 // initial infected count, >= 0
	R0 float64 // initial recovered count, >= 0
	Mu float64 // recovery rate μ per day, > 0
}

// Validate checks the parameter set against the error taxonomy above.
func (p Parameters) Validate() error {
	if p.S0 < 0 || p.I0 < 0 || p.R0 < 0 {
		return ErrNegativeCompartment
	}
	if p.S0+p.I0+p.R0 == 0 {
		return ErrZeroPopulation
	}
	if p.Mu <= 0 {
		return ErrBadRecovery
	}

	return nil
}

// State is one (S, I, R) triple of the trajectory.
type State struct {
	S float64
	I float64
	R float64
}

// N returns the total population of the state.
func (s State) N() float64 { return s.S + s.I + s.R }

// Trajectory is the ordered day-by-day sequence of states, element 0 being
// the initial condition.
type Trajectory []State

// Infected projects the I compartment as a plain series, one value per
// trajectory entry. This is what the observable extraction consumes.
func (t Trajectory) Infected() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.I
	}

	return out
}

// Integrate advances the SIR system one day per rate-sequence entry using
// classical RK4. The day's rate is held constant across the four stages.
// Returns a trajectory of length len(rates)+1.
//
// Complexity: O(len(rates)) time and memory.
func Integrate(p Parameters, rates []float64) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// N is fixed for the whole run: no births, deaths or imports.
	n := p.S0 + p.I0 + p.R0

	traj := make(Trajectory, 0, len(rates)+1)
	y := State{S: p.S0, I: p.I0, R: p.R0}
	traj = append(traj, y)

	for _, lambda := range rates {
		y = rk4Step(y, lambda, p.Mu, n)
		traj = append(traj, y)
	}

	return traj, nil
}

// derive evaluates the SIR vector field at state y under rate lambda.
func derive(y State, lambda, mu, n float64) State {
	infections := lambda * y.S * y.I / n
	recoveries := mu * y.I

	return State{
		S: -infections,
		I: infections - recoveries,
		R: recoveries,
	}
}

// rk4Step performs one classical Runge-Kutta step of size stepDays:
// y_{n+1} = y_n + (dt/6)(k1 + 2k2 + 2k3 + k4).
func rk4Step(y State, lambda, mu, n float64) State {
	const dt = stepDays

	k1 := derive(y, lambda, mu, n)
	k2 := derive(shift(y, k1, dt/2), lambda, mu, n)
	k3 := derive(shift(y, k2, dt/2), lambda, mu, n)
	k4 := derive(shift(y, k3, dt), lambda, mu, n)

	return State{
		S: y.S + dt/6*(k1.S+2*k2.S+2*k3.S+k4.S),
		I: y.I + dt/6*(k1.I+2*k2.I+2*k3.I+k4.I),
		R: y.R + dt/6*(k1.R+2*k2.R+2*k3.R+k4.R),
	}
}

// shift returns y + k·h, the intermediate evaluation point of an RK4 stage.
func shift(y, k State, h float64) State {
	return State{S: y.S + k.S*h, I: y.I + k.I*h, R: y.R + k.R*h}
}
