package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/san-kum/pendsim/internal/config"
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
)

// Runner owns the backend, the simulation on its surface and the loop that
// drives them.
type Runner struct {
	cfg     config.Config
	backend display.Backend
	sim     *sim.Simulation
	logger  *log.Logger
}

// NewRunner validates cfg and builds a simulation on the backend's surface.
// A nil logger discards output.
func NewRunner(cfg config.Config, backend display.Backend, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	surface := backend.Surface()
	simulation, err := sim.New(physics.NewGravityField(surface), surface, Params(cfg))
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	if sink, ok := backend.(display.TelemetrySink); ok {
		sink.AttachTelemetry(simulation)
	}

	return &Runner{
		cfg:     cfg,
		backend: backend,
		sim:     simulation,
		logger:  logger,
	}, nil
}

// Params maps a config onto simulation parameters.
func Params(cfg config.Config) sim.Params {
	return sim.Params{
		Radius:   cfg.Radius,
		Mass:     cfg.Mass,
		FPS:      cfg.FPS,
		Theta:    cfg.Theta,
		ThetaDot: cfg.ThetaDot,
		Palette:  display.DefaultPalette(),
	}
}

func (r *Runner) Simulation() *sim.Simulation { return r.sim }

// RunUntilClosed drives one Update per frame until the backend is closed or
// ctx is cancelled. Cancellation counts as a normal close.
func (r *Runner) RunUntilClosed(ctx context.Context) error {
	w, h := r.backend.Surface().Size()
	r.logger.Printf("starting: %dx%d at %d fps, theta=%.4f omega=%.4f radius=%g mass=%g",
		w, h, r.cfg.FPS, r.cfg.Theta, r.cfg.ThetaDot, r.cfg.Radius, r.cfg.Mass)

	err := r.backend.Run(ctx, r.cfg.FPS, func() error {
		r.sim.Update()
		return nil
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	r.logger.Printf("stopped after %d steps (t=%.1f)", r.sim.Steps(), r.sim.Time())
	return err
}
