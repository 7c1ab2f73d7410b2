package sim_test

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/display/raster"
	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
)

type drawCall struct {
	kind   string
	color  color.Color
	points []float64
	size   float64
}

type recordingSurface struct {
	w, h  int
	calls []drawCall
}

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }

func (r *recordingSurface) FillCircle(cx, cy, rad float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", color: c, points: []float64{cx, cy}, size: rad})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", color: c, points: []float64{x0, y0, x1, y1}, size: width})
}

type stepCounter struct{ n int }

func (s *stepCounter) OnStep(x dynamo.State, t float64) { s.n++ }

func defaultParams() sim.Params {
	return sim.Params{
		Radius: 5,
		Mass:   1,
		FPS:    10,
		Theta:  math.Pi + 0.5,
	}
}

func newSim(surface display.Surface, p sim.Params) *sim.Simulation {
	s, err := sim.New(physics.NewGravityField(surface), surface, p)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Simulation", func() {
	var surface *recordingSurface

	BeforeEach(func() {
		surface = &recordingSurface{w: 1280, h: 900}
	})

	Describe("construction", func() {
		It("scales the radius and derives dt from the frame rate", func() {
			s := newSim(surface, defaultParams())

			Expect(s.Radius()).To(Equal(500.0))
			Expect(s.Mass()).To(Equal(1.0))
			Expect(s.Dt()).To(Equal(1.0))
			Expect(s.Time()).To(Equal(0.0))
			Expect(s.Steps()).To(Equal(0))
		})

		DescribeTable("rejects degenerate parameters",
			func(mutate func(*sim.Params), target error) {
				p := defaultParams()
				mutate(&p)

				s, err := sim.New(physics.NewGravityField(surface), surface, p)
				Expect(s).To(BeNil())
				Expect(err).To(MatchError(target))
			},
			Entry("zero radius", func(p *sim.Params) { p.Radius = 0 }, dynamo.ErrParameterBounds),
			Entry("negative radius", func(p *sim.Params) { p.Radius = -1 }, dynamo.ErrParameterBounds),
			Entry("zero mass", func(p *sim.Params) { p.Mass = 0 }, dynamo.ErrParameterBounds),
			Entry("zero fps", func(p *sim.Params) { p.FPS = 0 }, dynamo.ErrParameterBounds),
			Entry("negative fps", func(p *sim.Params) { p.FPS = -10 }, dynamo.ErrParameterBounds),
			Entry("NaN radius", func(p *sim.Params) { p.Radius = math.NaN() }, dynamo.ErrParameterBounds),
			Entry("NaN theta", func(p *sim.Params) { p.Theta = math.NaN() }, dynamo.ErrInvalidState),
			Entry("infinite omega", func(p *sim.Params) { p.ThetaDot = math.Inf(1) }, dynamo.ErrInvalidState),
		)
	})

	Describe("physics update", func() {
		It("matches the reference first step", func() {
			s := newSim(surface, defaultParams())

			s.Update()

			accel := 9.8 * math.Cos(0.5) / 500
			Expect(s.ThetaDDot()).To(BeNumerically("~", 0.01682, 1e-3))
			Expect(s.ThetaDDot()).To(BeNumerically("~", accel, 1e-12))
			Expect(s.ThetaDot()).To(BeNumerically("~", accel, 1e-12))
			Expect(s.Theta()).To(BeNumerically("~", math.Pi+0.5+accel, 1e-12))
			Expect(s.Time()).To(Equal(1.0))
			Expect(s.Steps()).To(Equal(1))
		})

		It("moves the position with the updated velocity", func() {
			p := defaultParams()
			p.Theta = 0
			s := newSim(surface, p)

			s.Step()

			// a = -9.8/500, v = a*dt, theta = v*dt
			Expect(s.ThetaDot()).To(BeNumerically("~", -9.8/500, 1e-15))
			Expect(s.Theta()).To(BeNumerically("~", -9.8/500, 1e-15))
		})

		It("is deterministic", func() {
			a := newSim(surface, defaultParams())
			b := newSim(&recordingSurface{w: 1280, h: 900}, defaultParams())

			for i := 0; i < 1000; i++ {
				a.Update()
				b.Update()
			}

			Expect(a.Theta()).To(Equal(b.Theta()))
			Expect(a.ThetaDot()).To(Equal(b.ThetaDot()))
			Expect(a.ThetaDDot()).To(Equal(b.ThetaDDot()))
		})

		It("stays at rest at the bottom of the swing", func() {
			p := defaultParams()
			p.Theta = -math.Pi / 2
			s := newSim(surface, p)

			for i := 0; i < 100; i++ {
				s.Update()
				Expect(s.ThetaDDot()).To(BeNumerically("~", 0, 1e-15))
			}

			Expect(s.Theta()).To(BeNumerically("~", -math.Pi/2, 1e-9))
			Expect(s.ThetaDot()).To(BeNumerically("~", 0, 1e-12))
		})

		It("does not wrap theta", func() {
			p := defaultParams()
			p.Theta = -math.Pi / 2
			p.ThetaDot = 0.5
			s := newSim(surface, p)

			for i := 0; i < 100; i++ {
				s.Step()
			}

			Expect(s.Theta()).To(BeNumerically(">", 2*math.Pi))
		})

		It("notifies observers once per step", func() {
			s := newSim(surface, defaultParams())
			counter := &stepCounter{}
			s.AddObserver(counter)

			for i := 0; i < 7; i++ {
				s.Update()
			}

			Expect(counter.n).To(Equal(7))
		})
	})

	Describe("derived quantities", func() {
		It("reports zero kinetic energy at rest", func() {
			for _, theta := range []float64{0, 1, math.Pi + 0.5, -math.Pi / 2, 42} {
				p := defaultParams()
				p.Theta = theta
				s := newSim(surface, p)

				Expect(s.KineticEnergy()).To(Equal(0.0))
				Expect(s.TotalEnergy()).To(Equal(s.PotentialEnergy()))
			}
		})

		It("reports non-negative potential energy", func() {
			s := newSim(surface, defaultParams())

			for i := 0; i < 500; i++ {
				s.Step()
				Expect(s.PotentialEnergy()).To(BeNumerically(">=", -1e-9))
			}
		})

		It("exposes cartesian and polar positions", func() {
			s := newSim(surface, defaultParams())

			pos := s.Position()
			r, theta := s.Polar()

			Expect(r).To(Equal(500.0))
			Expect(theta).To(Equal(math.Pi + 0.5))
			Expect(pos.X).To(BeNumerically("~", r*math.Cos(theta), 1e-12))
			Expect(pos.Y).To(BeNumerically("~", r*math.Sin(theta), 1e-12))
		})

		It("returns a copy of the state", func() {
			s := newSim(surface, defaultParams())

			st := s.State()
			st[0] = 0

			Expect(s.Theta()).To(Equal(math.Pi + 0.5))
		})
	})

	Describe("rendering", func() {
		It("erases the old frame before drawing the new one", func() {
			s := newSim(surface, defaultParams())
			palette := display.DefaultPalette()
			field := physics.NewGravityField(surface)

			oldBob := field.ToDisplay(s.Position().Trunc())
			s.Update()
			newBob := field.ToDisplay(s.Position().Trunc())

			Expect(surface.calls).To(HaveLen(8))
			for i, call := range surface.calls {
				if i < 4 {
					Expect(call.color).To(Equal(palette.Background))
				} else {
					Expect(call.color).To(Equal(palette.Foreground))
				}
			}

			Expect(surface.calls[0].kind).To(Equal("circle"))
			Expect(surface.calls[0].points).To(Equal([]float64{oldBob.X, oldBob.Y}))
			Expect(surface.calls[0].size).To(Equal(10.0))
			Expect(surface.calls[4].points).To(Equal([]float64{newBob.X, newBob.Y}))
		})

		It("draws the rod from the pivot and two anchored energy bars", func() {
			s := newSim(surface, defaultParams())
			s.Draw()

			Expect(surface.calls).To(HaveLen(4))

			rod := surface.calls[1]
			Expect(rod.kind).To(Equal("line"))
			Expect(rod.size).To(Equal(2.0))
			Expect(rod.points[:2]).To(Equal([]float64{640, 90}))

			pe, ke := surface.calls[2], surface.calls[3]
			Expect(pe.size).To(Equal(5.0))
			Expect(ke.size).To(Equal(5.0))

			// x anchors: -0.9*640 + 640 and -0.8*640 + 640
			Expect(pe.points[0]).To(BeNumerically("~", 64, 1e-9))
			Expect(ke.points[0]).To(BeNumerically("~", 128, 1e-9))

			// base at y = -0.8*900 in simulation space -> 720 + 90 on screen
			Expect(pe.points[1]).To(BeNumerically("~", 810, 1e-9))
			Expect(pe.points[3]).To(BeNumerically("~", 810-s.PotentialEnergy()*0.2, 1e-9))
			Expect(ke.points[3]).To(BeNumerically("~", 810, 1e-9))
		})

		It("places the bob at the truncated integer position", func() {
			s := newSim(surface, defaultParams())
			s.Draw()

			pos := s.Position()
			bob := surface.calls[0].points
			Expect(bob[0]).To(Equal(float64(int(pos.X)) + 640))
			Expect(bob[1]).To(Equal(-float64(int(pos.Y)) + 90))
		})

		It("follows the surface size on every frame", func() {
			s := newSim(surface, defaultParams())
			s.Draw()
			surface.w, surface.h = 640, 450
			s.Draw()

			Expect(surface.calls[1].points[:2]).To(Equal([]float64{640, 90}))
			Expect(surface.calls[5].points[:2]).To(Equal([]float64{320, 45}))
		})

		It("leaves the same image as clearing and redrawing", func() {
			palette := display.DefaultPalette()
			incremental := raster.NewSurface(1280, 900, palette.Background)
			fresh := raster.NewSurface(1280, 900, palette.Background)

			a := newSim(incremental, defaultParams())
			b := newSim(fresh, defaultParams())

			a.Draw()
			for i := 0; i < 12; i++ {
				a.Update()
				b.Step()
			}
			b.Draw()

			Expect(incremental.Image().Pix).To(Equal(fresh.Image().Pix))
		})
	})
})
