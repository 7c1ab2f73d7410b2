package viz

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/display/braille"
)

const (
	defaultCols = 36
	defaultRows = 22
)

// Backend runs the dashboard as a Bubble Tea program.
type Backend struct {
	surface   *braille.Surface
	telemetry display.Telemetry
	theme     Theme

	// ProgramOptions are passed to tea.NewProgram. NewBackend sets the
	// alternate screen.
	ProgramOptions []tea.ProgramOption
}

func NewBackend(width, height int, palette display.Palette, theme Theme) *Backend {
	return &Backend{
		surface:        braille.NewSurface(defaultCols, defaultRows, width, height, palette.Background),
		theme:          theme,
		ProgramOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

func (b *Backend) Surface() display.Surface { return b.surface }

func (b *Backend) AttachTelemetry(t display.Telemetry) { b.telemetry = t }

func (b *Backend) Run(ctx context.Context, fps int, frame display.FrameFunc) error {
	model := NewModel(b.surface, fps, frame, b.telemetry, b.theme)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, b.ProgramOptions...)

	final, err := tea.NewProgram(model, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
