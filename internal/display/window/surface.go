package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto an offscreen ebiten image that survives between frames,
// so erased shapes stay erased until they are drawn again. Drawing before the
// image exists is a no-op.
type Surface struct {
	width, height int
	img           *ebiten.Image
}

func newSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, false)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, false)
}
