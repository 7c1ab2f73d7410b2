package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/display/braille"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// Backend renders to a tcell screen. Logical pixels are scaled onto the
// terminal's Braille grid; the bottom row is kept for a status line when
// telemetry is attached.
type Backend struct {
	screen    tcell.Screen
	surface   *braille.Surface
	style     tcell.Style
	telemetry display.Telemetry
}

// NewBackend wraps an uninitialised screen. Run initialises and finalises it.
func NewBackend(screen tcell.Screen, width, height int, palette display.Palette) *Backend {
	fg := palette.Foreground
	return &Backend{
		screen:  screen,
		surface: braille.NewSurface(defaultCols, defaultRows, width, height, palette.Background),
		style: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))),
	}
}

func (b *Backend) Surface() display.Surface { return b.surface }

func (b *Backend) AttachTelemetry(t display.Telemetry) { b.telemetry = t }

// Run blocks until q, Escape or Ctrl-C is pressed, ctx is done or frame
// fails.
func (b *Backend) Run(ctx context.Context, fps int, frame display.FrameFunc) error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer b.screen.Fini()
	b.screen.HideCursor()
	b.resize()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !b.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if err := frame(); err != nil {
				return err
			}
			b.flush()
		}
	}
}

func (b *Backend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		b.resize()
		b.screen.Sync()
	}
	return true
}

// resize rebuilds the canvas for the current terminal size. The drawing is
// lost; the next frame redraws the pendulum and bars.
func (b *Backend) resize() {
	cols, rows := b.screen.Size()
	if b.telemetry != nil {
		rows--
	}
	b.surface.Resize(cols, rows)
	b.screen.Clear()
}

func (b *Backend) flush() {
	canvas := b.surface.Canvas()
	for y, row := range canvas.Grid {
		for x, r := range row {
			b.screen.SetContent(x, y, r, nil, b.style)
		}
	}
	if b.telemetry != nil {
		b.drawStatus(canvas.Height)
	}
	b.screen.Show()
}

func (b *Backend) drawStatus(y int) {
	t := b.telemetry
	line := fmt.Sprintf(" t=%.1f  θ=%.3f  ω=%.3f  PE=%.0f  KE=%.0f  [q] quit",
		t.Time(), t.Theta(), t.ThetaDot(), t.PotentialEnergy(), t.KineticEnergy())
	cols, _ := b.screen.Size()
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		b.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < cols; x++ {
		b.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
