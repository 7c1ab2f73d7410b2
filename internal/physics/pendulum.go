package physics

import (
	"math"

	"github.com/san-kum/pendsim/internal/dynamo"
)

// Pendulum holds the equations of motion for a point mass on a rigid rod
// pivoted at the origin. Theta is measured from the positive x-axis, so the
// bob hangs at theta = -pi/2 and swings through the lower quadrants.
//
// State layout: [theta, thetaDot].
type Pendulum struct {
	Radius  float64
	Mass    float64
	Gravity float64
}

func NewPendulum(radius, mass, gravity float64) *Pendulum {
	return &Pendulum{
		Radius:  radius,
		Mass:    mass,
		Gravity: gravity,
	}
}

func (p *Pendulum) StateDim() int {
	return 2
}

func (p *Pendulum) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], p.AngularAcceleration(x[0])}
}

// AngularAcceleration follows from the Lagrangian for this angle convention.
func (p *Pendulum) AngularAcceleration(theta float64) float64 {
	return -(p.Gravity * math.Cos(theta)) / p.Radius
}

// Potential is measured from the lowest point of the swing, so it is never
// negative.
func (p *Pendulum) Potential(theta float64) float64 {
	return p.Mass * p.Gravity * (p.Radius*math.Sin(theta) + p.Radius)
}

func (p *Pendulum) Kinetic(thetaDot float64) float64 {
	v := p.Radius * thetaDot
	return 0.5 * p.Mass * v * v
}

func (p *Pendulum) Energy(x dynamo.State) float64 {
	return p.Potential(x[0]) + p.Kinetic(x[1])
}

// Position returns the bob position in simulation coordinates.
func (p *Pendulum) Position(theta float64) Vec2 {
	return Vec2{
		X: p.Radius * math.Cos(theta),
		Y: p.Radius * math.Sin(theta),
	}
}
