package sim

import (
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/integrators"
	"github.com/san-kum/pendsim/internal/physics"
)

const (
	// DisplayScale converts the configured radius into display units.
	DisplayScale = 100
	// TimeScale sets the step size: dt = TimeScale / fps.
	TimeScale = 10.0
)

// Params are the construction-time settings of a simulation.
type Params struct {
	Radius   float64
	Mass     float64
	FPS      int
	Theta    float64
	ThetaDot float64
	Palette  display.Palette
}

// Simulation integrates a single pendulum and draws it onto a surface. It
// is not safe for concurrent use; one loop owns it.
type Simulation struct {
	field      physics.Field
	surface    display.Surface
	model      *physics.Pendulum
	integrator dynamo.Integrator
	palette    display.Palette

	state     dynamo.State
	thetaDDot float64
	dt        float64
	t         float64
	steps     int

	observers []dynamo.Observer
}

func New(field physics.Field, surface display.Surface, p Params) (*Simulation, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	palette := p.Palette
	if palette == (display.Palette{}) {
		palette = display.DefaultPalette()
	}

	return &Simulation{
		field:      field,
		surface:    surface,
		model:      physics.NewPendulum(p.Radius*DisplayScale, p.Mass, field.Gravity()),
		integrator: integrators.NewSemiImplicitEuler(),
		palette:    palette,
		state:      dynamo.State{p.Theta, p.ThetaDot},
		dt:         TimeScale / float64(p.FPS),
		observers:  make([]dynamo.Observer, 0),
	}, nil
}

func validate(p Params) error {
	if err := dynamo.Positive("radius", p.Radius); err != nil {
		return err
	}
	if err := dynamo.Positive("mass", p.Mass); err != nil {
		return err
	}
	if err := dynamo.Positive("fps", float64(p.FPS)); err != nil {
		return err
	}
	if err := dynamo.Finite("theta", p.Theta); err != nil {
		return err
	}
	return dynamo.Finite("theta_dot", p.ThetaDot)
}

func (s *Simulation) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Update erases the current frame, advances one step and draws the new
// frame.
func (s *Simulation) Update() {
	s.draw(s.palette.Background)
	s.Step()
	s.draw(s.palette.Foreground)
}

// Step advances the angular state by one semi-implicit Euler step without
// drawing.
func (s *Simulation) Step() {
	s.thetaDDot = s.model.AngularAcceleration(s.state[0])
	s.state = s.integrator.Step(s.model, s.state, s.t, s.dt)
	s.t += s.dt
	s.steps++

	for _, obs := range s.observers {
		obs.OnStep(s.state, s.t)
	}
}

func (s *Simulation) Theta() float64     { return s.state[0] }
func (s *Simulation) ThetaDot() float64  { return s.state[1] }
func (s *Simulation) ThetaDDot() float64 { return s.thetaDDot }
func (s *Simulation) Radius() float64    { return s.model.Radius }
func (s *Simulation) Mass() float64      { return s.model.Mass }
func (s *Simulation) Dt() float64        { return s.dt }
func (s *Simulation) Time() float64      { return s.t }
func (s *Simulation) Steps() int         { return s.steps }

func (s *Simulation) State() dynamo.State { return s.state.Clone() }

// Model exposes the equations of motion, e.g. for energy metrics.
func (s *Simulation) Model() *physics.Pendulum { return s.model }

// Position returns the bob in simulation coordinates.
func (s *Simulation) Position() physics.Vec2 {
	return s.model.Position(s.state[0])
}

func (s *Simulation) Polar() (r, theta float64) {
	return s.model.Radius, s.state[0]
}

func (s *Simulation) PotentialEnergy() float64 { return s.model.Potential(s.state[0]) }
func (s *Simulation) KineticEnergy() float64   { return s.model.Kinetic(s.state[1]) }
func (s *Simulation) TotalEnergy() float64     { return s.model.Energy(s.state) }
