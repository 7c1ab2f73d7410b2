package raster

import (
	"context"

	"github.com/san-kum/pendsim/internal/display"
)

// Backend drives a raster surface without any window. It stops after Frames
// frames, or runs until ctx is done when Frames is zero.
type Backend struct {
	surface  *Surface
	clock    *display.Clock
	recorder *Recorder
	Frames   int
	Paced    bool
}

func NewBackend(width, height int, palette display.Palette) *Backend {
	return &Backend{
		surface: NewSurface(width, height, palette.Background),
		clock:   display.NewClock(),
	}
}

func (b *Backend) Surface() display.Surface { return b.surface }

// Record captures every presented frame into r.
func (b *Backend) Record(r *Recorder) { b.recorder = r }

func (b *Backend) Run(ctx context.Context, fps int, frame display.FrameFunc) error {
	for i := 0; b.Frames == 0 || i < b.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
		b.present()
		if b.Paced {
			b.clock.Tick(fps)
		}
	}
	return nil
}

func (b *Backend) present() {
	if b.recorder != nil {
		b.recorder.Capture(b.surface.img)
	}
}
