package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/pendsim/internal/display"
)

// Backend opens a desktop window. ebiten owns the loop: Update advances one
// frame at the configured tick rate and Draw presents the offscreen surface.
type Backend struct {
	title     string
	palette   display.Palette
	surface   *Surface
	telemetry display.Telemetry

	ctx   context.Context
	frame display.FrameFunc
	err   error
}

func NewBackend(width, height int, title string, palette display.Palette) *Backend {
	return &Backend{
		title:   title,
		palette: palette,
		surface: newSurface(width, height),
	}
}

func (b *Backend) Surface() display.Surface { return b.surface }

func (b *Backend) AttachTelemetry(t display.Telemetry) { b.telemetry = t }

// Run blocks until the window is closed, Escape is pressed, ctx is done or
// frame fails.
func (b *Backend) Run(ctx context.Context, fps int, frame display.FrameFunc) error {
	b.ctx = ctx
	b.frame = frame

	ebiten.SetWindowSize(b.surface.width, b.surface.height)
	ebiten.SetWindowTitle(b.title)
	ebiten.SetTPS(fps)

	err := ebiten.RunGame(b)
	if b.err != nil {
		return b.err
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ctx.Err()
}

func (b *Backend) Update() error {
	if err := b.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if b.surface.img == nil {
		b.surface.img = ebiten.NewImage(b.surface.width, b.surface.height)
		b.surface.img.Fill(b.palette.Background)
	}

	if err := b.frame(); err != nil {
		b.err = err
		return ebiten.Termination
	}
	return nil
}

func (b *Backend) Draw(screen *ebiten.Image) {
	if b.surface.img == nil {
		screen.Fill(b.palette.Background)
		return
	}
	screen.DrawImage(b.surface.img, nil)

	if b.telemetry != nil {
		ebitenutil.DebugPrintAt(screen, readout(b.telemetry), 8, 8)
	}
}

// Layout pins the logical screen to the surface size so pixel coordinates
// never rescale.
func (b *Backend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return b.surface.width, b.surface.height
}

func readout(t display.Telemetry) string {
	return fmt.Sprintf("t=%.1f  theta=%.3f  omega=%.3f\nPE=%.0f  KE=%.0f",
		t.Time(), t.Theta(), t.ThetaDot(), t.PotentialEnergy(), t.KineticEnergy())
}
