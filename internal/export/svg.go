package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/pendsim/internal/physics"
)

type canvasSize struct{ w, h int }

func (c canvasSize) Size() (int, int) { return c.w, c.h }

// WriteSVG draws the bob path of samples as a single SVG path in display
// coordinates: the pivot sits at (width/2, height/10) with y pointing down,
// the same placement the live backends use.
func WriteSVG(w io.Writer, samples []Sample, width, height int, strokeColor string) error {
	if len(samples) < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}

	field := physics.NewGravityField(canvasSize{width, height})
	pivot := field.ToDisplay(physics.Vec2{})

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, pivot.X, pivot.Y, strokeColor, strokeColor)

	for i, s := range samples {
		p := field.ToDisplay(physics.Vec2{X: s.X, Y: s.Y})
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}

	sb.WriteString(`"/>
</svg>
`)

	_, err := io.WriteString(w, sb.String())
	return err
}
