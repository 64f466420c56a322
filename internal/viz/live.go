package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flightdyn/internal/flight"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps one engine in real time and maps keys to the control
// surfaces. Surfaces self-center a little each tick so a tapped key
// behaves like a nudged stick.
type Model struct {
	engine   *flight.Engine
	controls flight.ControlInputs
	dt       float64
	running  bool
	showHelp bool

	altHistory   []float64
	speedHistory []float64
}

func NewModel(engine *flight.Engine, dt float64) Model {
	return Model{
		engine:       engine,
		controls:     *engine.Controls(),
		dt:           dt,
		running:      true,
		altHistory:   make([]float64, 0, historyCapacity),
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.engine.Reset()
			m.controls = *m.engine.Controls()
			m.altHistory = m.altHistory[:0]
			m.speedHistory = m.speedHistory[:0]
		case "up", "w":
			m.controls.Elevator = clip(m.controls.Elevator+0.1, -1, 1)
		case "down", "s":
			m.controls.Elevator = clip(m.controls.Elevator-0.1, -1, 1)
		case "left", "a":
			m.controls.Aileron = clip(m.controls.Aileron+0.1, -1, 1)
		case "right", "d":
			m.controls.Aileron = clip(m.controls.Aileron-0.1, -1, 1)
		case ",":
			m.controls.Rudder = clip(m.controls.Rudder+0.1, -1, 1)
		case ".":
			m.controls.Rudder = clip(m.controls.Rudder-0.1, -1, 1)
		case "+", "=":
			m.controls.Throttle = clip(m.controls.Throttle+0.05, 0, 1)
		case "-", "_":
			m.controls.Throttle = clip(m.controls.Throttle-0.05, 0, 1)
		case "0":
			m.controls.Elevator, m.controls.Aileron, m.controls.Rudder = 0, 0, 0
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.engine.SetControls(m.controls)
	m.engine.Update(m.dt)

	st := m.engine.State()
	m.altHistory = append(m.altHistory, st.Position.Y)
	if len(m.altHistory) > historyCapacity {
		m.altHistory = m.altHistory[1:]
	}
	m.speedHistory = append(m.speedHistory, st.Speed)
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}

	// Surfaces drift back toward neutral like a released stick.
	m.controls.Elevator *= 0.98
	m.controls.Aileron *= 0.98
	m.controls.Rudder *= 0.98
}

func (m Model) View() string {
	st := m.engine.State()

	var s strings.Builder
	s.WriteString(headerStyle.Render("FLIGHT") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.altHistory) > 1 {
		chart := asciigraph.Plot(m.altHistory, asciigraph.Height(6), asciigraph.Width(50), asciigraph.Caption("Altitude (m)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	seconds := m.dt * float64(m.engine.Frames())
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", seconds)) + "\n")
	s.WriteString(labelStyle.Render("Altitude") + valueStyle.Render(fmt.Sprintf("%.1f m", st.Position.Y)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.1f m/s", st.Speed)) + "\n")
	s.WriteString(labelStyle.Render("Pitch") + valueStyle.Render(fmt.Sprintf("%+.1f°", deg(st.Pitch))) + "\n")
	s.WriteString(labelStyle.Render("Heading") + valueStyle.Render(fmt.Sprintf("%+.1f°", deg(st.Yaw))) + "\n")
	s.WriteString(labelStyle.Render("Roll") + valueStyle.Render(fmt.Sprintf("%+.1f°", deg(st.Roll))) + "\n")

	s.WriteString("\nCONTROLS\n")
	s.WriteString("  " + surfaceBar("elev", m.controls.Elevator) + "\n")
	s.WriteString("  " + surfaceBar("ail ", m.controls.Aileron) + "\n")
	s.WriteString("  " + surfaceBar("rud ", m.controls.Rudder) + "\n")
	s.WriteString("  " + throttleBar(m.controls.Throttle) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nW/S:Pitch A/D:Roll ,/.:Yaw\n+/-:Throttle 0:Center\nSP:Pause R:Reset Q:Quit ?:Help"))

	view := statsStyle.Render(s.String())
	if m.showHelp {
		return helpScreen + "\n\n" + view
	}
	return view
}

// surfaceBar draws a centered deflection bar for a [-1, 1] surface.
func surfaceBar(name string, v float64) string {
	const half = 8
	pos := int(math.Round(v * half))
	var b strings.Builder
	b.WriteString(name + " [")
	for i := -half; i <= half; i++ {
		switch {
		case i == pos:
			b.WriteString("#")
		case i == 0:
			b.WriteString("|")
		default:
			b.WriteString("-")
		}
	}
	b.WriteString(fmt.Sprintf("] %+.2f", v))
	return b.String()
}

func throttleBar(v float64) string {
	const width = 17
	filled := int(math.Round(v * width))
	return "thr  [" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + fmt.Sprintf("] %.2f", v)
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

const helpScreen = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  W/Up     - Elevator up (nose up)    ║
║  S/Down   - Elevator down            ║
║  A/Left   - Aileron left             ║
║  D/Right  - Aileron right            ║
║  , / .    - Rudder left/right        ║
║  + / -    - Throttle up/down         ║
║  0        - Center all surfaces      ║
║  Space    - Pause/Resume             ║
║  R        - Reset flight             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
