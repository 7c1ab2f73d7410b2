package physics

// Vec2 is a point or vector in either simulation or display coordinates.
type Vec2 struct {
	X, Y float64
}

// Trunc drops the fractional part of both components, rounding toward zero.
func (v Vec2) Trunc() Vec2 {
	return Vec2{float64(int(v.X)), float64(int(v.Y))}
}
