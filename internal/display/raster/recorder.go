package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
)

// Recorder collects presented frames and encodes them as an animated GIF.
type Recorder struct {
	palette color.Palette
	delay   int
	frames  []*image.Paletted
}

// NewRecorder records with the given palette; fps sets the per-frame delay.
// GIF delays are whole hundredths of a second, so the delay is rounded to
// the nearest one and playback above 100 fps is capped at 100.
func NewRecorder(palette color.Palette, fps int) *Recorder {
	delay := 10
	if fps > 0 {
		delay = max(1, int(math.Round(100/float64(fps))))
	}
	return &Recorder{palette: palette, delay: delay}
}

func (r *Recorder) Capture(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, r.palette)
	draw.Draw(frame, b, img, b.Min, draw.Src)
	r.frames = append(r.frames, frame)
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}
