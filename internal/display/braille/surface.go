package braille

import (
	"image/color"
	"math"

	"github.com/san-kum/pendsim/internal/display"
)

// Surface presents a logical pixel space (for example 1280x900) backed by a
// Braille canvas of a few terminal cells. Drawing in the background colour
// clears dots, anything else sets them.
type Surface struct {
	canvas     *Canvas
	width      int
	height     int
	background color.Color
}

func NewSurface(cols, rows, width, height int, bg color.Color) *Surface {
	return &Surface{
		canvas:     NewCanvas(cols, rows),
		width:      width,
		height:     height,
		background: bg,
	}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Canvas() *Canvas { return s.canvas }

// Resize swaps in a blank canvas of the given cell size. The logical size is
// unchanged.
func (s *Surface) Resize(cols, rows int) {
	if cols == s.canvas.Width && rows == s.canvas.Height {
		return
	}
	s.canvas = NewCanvas(max(cols, 1), max(rows, 1))
}

func (s *Surface) scale() (float64, float64) {
	return float64(s.canvas.Width*2) / float64(s.width), float64(s.canvas.Height*4) / float64(s.height)
}

func (s *Surface) dot(x, y float64) (int, int) {
	sx, sy := s.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	plot := s.plotter(c)
	sx, sy := s.scale()
	px, py := cx*sx, cy*sy
	rx, ry := math.Max(r*sx, 0.5), math.Max(r*sy, 0.5)

	for y := int(math.Floor(py - ry)); y <= int(math.Ceil(py+ry)); y++ {
		for x := int(math.Floor(px - rx)); x <= int(math.Ceil(px+rx)); x++ {
			dx := (float64(x) + 0.5 - px) / rx
			dy := (float64(y) + 0.5 - py) / ry
			if dx*dx+dy*dy <= 1 {
				plot(x, y)
			}
		}
	}
	plot(int(math.Floor(px)), int(math.Floor(py)))
}

// StrokeLine draws a one-dot line; terminal resolution cannot show width.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	ax, ay := s.dot(x0, y0)
	bx, by := s.dot(x1, y1)
	bresenham(ax, ay, bx, by, s.plotter(c))
}

func (s *Surface) plotter(c color.Color) func(x, y int) {
	if display.IsBackground(c, s.background) {
		return s.canvas.Unset
	}
	return s.canvas.Set
}
