package sim

import (
	"image/color"

	"github.com/san-kum/pendsim/internal/physics"
)

const (
	bobRadius = 10
	rodWidth  = 2
	barWidth  = 5
	barScale  = 0.2

	// bar anchors as fractions of the surface size, in simulation space
	potentialBarX = 0.9
	kineticBarX   = 0.8
	barBaseY      = 0.8
)

// Draw paints the current frame in the foreground colour.
func (s *Simulation) Draw() {
	s.draw(s.palette.Foreground)
}

func (s *Simulation) draw(c color.Color) {
	w, h := s.surface.Size()
	width, height := float64(w), float64(h)

	bob := s.field.ToDisplay(s.Position().Trunc())
	pivot := s.field.ToDisplay(physics.Vec2{})

	s.surface.FillCircle(bob.X, bob.Y, bobRadius, c)
	s.surface.StrokeLine(pivot.X, pivot.Y, bob.X, bob.Y, rodWidth, c)

	base := -height * barBaseY
	s.drawBar(-potentialBarX*width/2, base, s.PotentialEnergy(), c)
	s.drawBar(-kineticBarX*width/2, base, s.KineticEnergy(), c)
}

func (s *Simulation) drawBar(x, base, energy float64, c color.Color) {
	from := s.field.ToDisplay(physics.Vec2{X: x, Y: base})
	to := s.field.ToDisplay(physics.Vec2{X: x, Y: base + energy*barScale})
	s.surface.StrokeLine(from.X, from.Y, to.X, to.Y, barWidth, c)
}
