// Package sim runs the pendulum: it owns the angular state, advances it with
// semi-implicit Euler and draws each frame through the gravity field's
// display transform.
//
// Each [Simulation.Update] first redraws the previous frame in the
// background colour, then steps, then draws the new frame, so a backend
// never needs to clear the whole surface.
//
//	field := physics.NewGravityField(surface)
//	s, err := sim.New(field, surface, sim.Params{Radius: 5, Mass: 1, FPS: 10, Theta: math.Pi + 0.5})
//	if err != nil {
//	    return err
//	}
//	s.Update()
package sim
