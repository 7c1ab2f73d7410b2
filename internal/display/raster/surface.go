package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Surface is an in-memory RGBA drawing target. Shapes are rasterized without
// antialiasing: a pixel is painted when its center lies inside the shape, so
// drawing the same shape twice touches exactly the same pixels.
type Surface struct {
	img *image.RGBA
}

func NewSurface(width, height int, bg color.Color) *Surface {
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.Clear(bg)
	return s
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	r2 := r * r
	s.fill(cx-r, cy-r, cx+r, cy+r, c, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r2
	})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	half := math.Max(width/2, 0.5)
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy

	s.fill(math.Min(x0, x1)-half, math.Min(y0, y1)-half, math.Max(x0, x1)+half, math.Max(y0, y1)+half, c,
		func(px, py float64) bool {
			t := 0.0
			if l2 > 0 {
				t = ((px-x0)*dx + (py-y0)*dy) / l2
				t = math.Max(0, math.Min(1, t))
			}
			ex, ey := px-(x0+t*dx), py-(y0+t*dy)
			return ex*ex+ey*ey <= half*half
		})
}

// fill paints every pixel in the box whose center satisfies inside.
func (s *Surface) fill(minX, minY, maxX, maxY float64, c color.Color, inside func(px, py float64) bool) {
	b := s.img.Bounds()
	x0 := max(int(math.Floor(minX)), b.Min.X)
	y0 := max(int(math.Floor(minY)), b.Min.Y)
	x1 := min(int(math.Ceil(maxX)), b.Max.X-1)
	y1 := min(int(math.Ceil(maxY)), b.Max.Y-1)

	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				s.img.SetRGBA(x, y, rgba)
			}
		}
	}
}
