package dynamo

import "math"

// State is a flat state vector. Second-order systems lay it out as
// positions followed by velocities: [q..., v...].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(sys System, x State, t float64, dt float64) State
}

type Observer interface {
	OnStep(x State, t float64)
}

type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}
