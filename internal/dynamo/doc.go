// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the small set of interfaces shared by the physics
// models, the integrator and the simulation loop:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: one fixed-size numerical step
//   - [Observer] and [Metric]: per-step hooks
//
// # Errors
//
// Parameter validation returns a [*ParamError] wrapping one of the
// sentinel errors, so callers can test with errors.Is:
//
//	if err := dynamo.Positive("radius", r); errors.Is(err, dynamo.ErrParameterBounds) {
//	    // reject configuration
//	}
package dynamo
