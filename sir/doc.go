// Package sir advances the classic 3-compartment
// susceptible/infected/recovered epidemic model one day at a time with a
// fixed-step 4th-order Runge-Kutta scheme, driven by a per-day
// transmission-rate sequence.
//
// Model:
//
//	dS/dt = -λ(t)·S·I/N
//	dI/dt =  λ(t)·S·I/N − μ·I
//	dR/dt =  μ·I
//
// with N = S₀+I₀+R₀ fixed for the whole run (no births, deaths or
// imports). λ(t) is piecewise constant: the day's rate is held across the
// four RK4 stages of that day's step.
//
// Intentionally minimal: fixed step of 1 day, no adaptive control, no
// stiffness handling. Precision is bounded by the day granularity of the
// rate driver, which is all the downstream observable needs.
//
// Invariant: S+I+R stays equal to N at every step up to float error; the
// RK4 combination preserves the conservation of the vector field exactly.
//
// Usage:
//
//	traj, err := sir.Integrate(sir.Parameters{S0: 1e6, I0: 10, Mu: 0.1}, rates)
//	// len(traj) == len(rates)+1; traj[0] is the initial condition.
package sir
