package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/display/braille"
)

const historyCapacity = 120

type TickMsg time.Time

// Model advances the simulation once per tick and renders the canvas next to
// the stats panel.
type Model struct {
	surface   *braille.Surface
	telemetry display.Telemetry
	frame     display.FrameFunc
	fps       int

	running       bool
	showHelp      bool
	theme         Theme
	styles        styles
	frames        int
	energyHistory []float64
	err           error
}

func NewModel(surface *braille.Surface, fps int, frame display.FrameFunc, telemetry display.Telemetry, theme Theme) Model {
	return Model{
		surface:       surface,
		telemetry:     telemetry,
		frame:         frame,
		fps:           max(fps, 1),
		running:       true,
		theme:         theme,
		styles:        newStyles(theme),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Err is the frame error that stopped the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Frames() int { return m.frames }

func (m Model) Running() bool { return m.running }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = nextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth-8, 10)
		rows := max(msg.Height-2, 5)
		m.surface.Resize(cols, rows)

	case TickMsg:
		if m.running {
			if err := m.frame(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.frames++
			m.recordEnergy()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) recordEnergy() {
	if m.telemetry == nil {
		return
	}
	e := m.telemetry.PotentialEnergy() + m.telemetry.KineticEnergy()
	if len(m.energyHistory) == historyCapacity {
		copy(m.energyHistory, m.energyHistory[1:])
		m.energyHistory = m.energyHistory[:historyCapacity-1]
	}
	m.energyHistory = append(m.energyHistory, e)
}

func (m Model) View() string {
	if m.showHelp {
		return helpView
	}

	canvasView := m.styles.canvas.Render(m.surface.Canvas().String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(m.statsView()))
}

func (m Model) statsView() string {
	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("PENDULUM") + "\n")

	if m.running {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if t := m.telemetry; t != nil {
		pe, ke := t.PotentialEnergy(), t.KineticEnergy()
		row := func(label, value string) {
			s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
		}
		row("Time", fmt.Sprintf("%.1f", t.Time()))
		row("Theta", fmt.Sprintf("%.4f rad", t.Theta()))
		row("Omega", fmt.Sprintf("%.4f rad/s", t.ThetaDot()))
		row("PE", fmt.Sprintf("%.1f %s", pe, shareBar(pe, pe+ke, 12)))
		row("KE", fmt.Sprintf("%.1f %s", ke, shareBar(ke, pe+ke, 12)))
		row("Total", fmt.Sprintf("%.1f", pe+ke))
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("SP:Pause T:Theme ?:Help Q:Quit"))
	return s.String()
}

const helpView = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q / Esc  - Quit                     ║
╚══════════════════════════════════════╝
`
