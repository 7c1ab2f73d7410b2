package display

import "image/color"

type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{100, 0, 50, 255},
	}
}

// IsBackground reports whether c is the given background colour. Monochrome
// backends use it to decide between setting and clearing pixels.
func IsBackground(c color.Color, bg color.Color) bool {
	r1, g1, b1, a1 := c.RGBA()
	r2, g2, b2, a2 := bg.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// Colors returns the palette as an indexed colour table, background first.
func (p Palette) Colors() color.Palette {
	return color.Palette{p.Background, p.Foreground}
}
