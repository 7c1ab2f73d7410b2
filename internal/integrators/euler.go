package integrators

import "github.com/san-kum/pendsim/internal/dynamo"

// SemiImplicitEuler advances a second-order system laid out as [q..., v...].
// Velocities are updated first and the new velocities move the positions.
// No energy correction is applied, so long runs drift.
type SemiImplicitEuler struct{}

var _ dynamo.Integrator = (*SemiImplicitEuler)(nil)

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	dx := sys.Derive(x, t)
	result := make(dynamo.State, n)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*dt
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + result[half+i]*dt
	}

	return result
}
