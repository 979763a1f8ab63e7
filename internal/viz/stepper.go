package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/growvec/internal/scenario"
)

const traceLines = 8

type TickMsg time.Time

// Stepper is a bubbletea model that walks a scenario session one step at a
// time, by key press or on a timer.
type Stepper struct {
	session  *scenario.Session
	steps    []scenario.Step
	capHist  []float64
	interval time.Duration
	autoplay bool
}

func NewStepper(session *scenario.Session, interval time.Duration) Stepper {
	return Stepper{
		session:  session,
		steps:    make([]scenario.Step, 0, session.Total()),
		capHist:  []float64{float64(session.Array().Cap())},
		interval: interval,
	}
}

func (m Stepper) Init() tea.Cmd { return nil }

func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", " ", "right":
			m.step()
		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay && !m.session.Done() {
				return m, m.tick()
			}
		}
	case TickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.step()
		if m.session.Done() {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Stepper) step() {
	step, ok := m.session.Next()
	if !ok {
		return
	}
	m.steps = append(m.steps, step)
	m.capHist = append(m.capHist, float64(step.Capacity))
}

func (m Stepper) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Steps returns the steps executed so far.
func (m Stepper) Steps() []scenario.Step { return m.steps }

// Autoplay reports whether the timer is driving the session.
func (m Stepper) Autoplay() bool { return m.autoplay }

func (m Stepper) View() string {
	var b strings.Builder

	b.WriteString(RenderState(m.session.Name(), m.session.Array()))
	b.WriteString("\n\n")
	b.WriteString(MetricLabel.Render("capacity"))
	b.WriteString(SparklineChart(m.capHist, 40))
	b.WriteString("\n")
	b.WriteString(Separator(60))
	b.WriteString("\n")

	start := 0
	if len(m.steps) > traceLines {
		start = len(m.steps) - traceLines
	}
	for _, s := range m.steps[start:] {
		b.WriteString(RenderStep(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString(KeyHint.Render("  n/space: step  a: autoplay  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Stepper) status() string {
	switch {
	case m.session.Done():
		return StatusOK.Render("done")
	case m.autoplay:
		return StatusOK.Render("playing")
	default:
		return StatusPaused.Render("paused")
	}
}

// RunStepper runs the stepper as a full-screen program.
func RunStepper(session *scenario.Session, interval time.Duration) error {
	_, err := tea.NewProgram(NewStepper(session, interval), tea.WithAltScreen()).Run()
	return err
}
