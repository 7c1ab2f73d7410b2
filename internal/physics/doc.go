// Package physics provides the gravity field and the pendulum model.
//
//   - [GravityField]: uniform field plus the simulation-to-display transform
//   - [Pendulum]: equations of motion, implementing [dynamo.System] and
//     [dynamo.Hamiltonian]
//
// # Coordinates
//
// Simulation space puts the pivot at the origin with y pointing up. Display
// space is pixel space with y pointing down:
//
//	field := physics.NewGravityField(surface)
//	px := field.ToDisplay(physics.Vec2{X: 0, Y: -500})
package physics
