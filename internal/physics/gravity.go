package physics

// StandardGravity is the field strength used by the simulation.
const StandardGravity = 9.8

// Sizer reports the current pixel size of a drawing target.
type Sizer interface {
	Size() (width, height int)
}

// Field is what the pendulum needs from its environment: the field strength
// and the mapping from simulation space to display space.
type Field interface {
	Gravity() float64
	ToDisplay(p Vec2) Vec2
}

// GravityField is a uniform downward field. Simulation space has its origin
// at the pivot with y pointing up; display space has y pointing down and the
// pivot placed at the horizontal center, a tenth of the way down.
type GravityField struct {
	g       float64
	surface Sizer
}

func NewGravityField(surface Sizer) *GravityField {
	return &GravityField{g: StandardGravity, surface: surface}
}

func (f *GravityField) Gravity() float64 { return f.g }

// Force returns the weight of a body of the given mass at pos. The field is
// uniform, so pos is ignored.
func (f *GravityField) Force(pos Vec2, mass float64) Vec2 {
	return Vec2{0, -mass * f.g}
}

// ToDisplay maps simulation coordinates to display coordinates. The surface
// size is read on every call.
func (f *GravityField) ToDisplay(p Vec2) Vec2 {
	w, h := f.surface.Size()
	return Vec2{
		X: p.X + float64(w)/2,
		Y: -p.Y + float64(h)/10,
	}
}

// FromDisplay is the inverse of ToDisplay.
func (f *GravityField) FromDisplay(p Vec2) Vec2 {
	w, h := f.surface.Size()
	return Vec2{
		X: p.X - float64(w)/2,
		Y: -(p.Y - float64(h)/10),
	}
}
