package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tmsim/internal/machine"
)

type TickMsg time.Time

// Model is the live view: it steps a machine once per frame tick and
// renders the configuration. All simulation state lives in the machine;
// the model only holds presentation context.
type Model struct {
	mach      *machine.Machine
	maxSteps  int
	fps       int
	tapeWidth int

	paused    bool
	done      bool
	failure   error
	heads     []float64
	termWidth int
}

func NewModel(m *machine.Machine, fps, tapeWidth, maxSteps int) Model {
	if fps < 1 {
		fps = 1
	}
	if maxSteps <= 0 {
		maxSteps = machine.DefaultMaxSteps
	}
	return Model{
		mach:      m,
		maxSteps:  maxSteps,
		fps:       fps,
		tapeWidth: tapeWidth,
		heads:     []float64{0},
		termWidth: 80,
	}
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick(m.fps) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.mach.Reset()
			m.heads = []float64{0}
			m.done = false
			m.failure = nil
		case "+", "=":
			if m.fps < 60 {
				m.fps++
			}
		case "-":
			if m.fps > 1 {
				m.fps--
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			m = m.advance()
		}
		return m, tick(m.fps)
	}
	return m, nil
}

func (m Model) advance() Model {
	if m.mach.Halted() {
		m.done = true
		return m
	}
	if m.mach.Steps() >= m.maxSteps {
		m.failure = &machine.StepLimitExceededError{Limit: m.maxSteps, Trace: m.mach.Trace()}
		m.done = true
		return m
	}
	if _, err := m.mach.Step(); err != nil {
		m.failure = err
		m.done = true
		return m
	}
	m.heads = append(m.heads, float64(m.mach.Head()))
	if m.mach.Halted() {
		m.done = true
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("tmsim — palindrome turing machine"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("input"))
	b.WriteString(white.Render(fmt.Sprintf("%q", m.mach.Input())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("state"))
	b.WriteString(cyan.Render(m.mach.State().String()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("step"))
	b.WriteString(white.Render(fmt.Sprintf("%d", m.mach.Steps())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("head"))
	b.WriteString(white.Render(fmt.Sprintf("%d", m.mach.Head())))
	b.WriteString("\n\n")

	b.WriteString(StyledTapeWindow(m.mach.Tape(), m.mach.Head(), m.tapeWidth))
	b.WriteString("\n\n")

	if len(m.heads) > 1 {
		graphWidth := m.termWidth - 10
		if graphWidth > 64 {
			graphWidth = 64
		}
		if graphWidth > 8 {
			b.WriteString(dim.Render(asciigraph.Plot(m.heads,
				asciigraph.Height(5),
				asciigraph.Width(graphWidth),
				asciigraph.Caption("head position"),
			)))
			b.WriteString("\n\n")
		}
	}

	switch {
	case m.failure != nil:
		b.WriteString(rejectBanner.Render("error: " + m.failure.Error()))
	case m.done:
		verdict, _ := m.mach.Verdict()
		b.WriteString(VerdictBanner(verdict))
		b.WriteString(dim.Render(fmt.Sprintf("  %d steps, tape %q", m.mach.Steps(), m.mach.Tape().Contents())))
	case m.paused:
		b.WriteString(yellow.Render("paused"))
	default:
		if v, ok := m.mach.Verdict(); ok {
			b.WriteString(dim.Render("writing verdict marker: " + v.Marker()))
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("running at %d steps/s", m.fps)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause · r reset · +/- speed · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunLive runs the live view as a standalone program.
func RunLive(m *machine.Machine, fps, tapeWidth, maxSteps int) error {
	p := tea.NewProgram(NewModel(m, fps, tapeWidth, maxSteps))
	_, err := p.Run()
	return err
}
