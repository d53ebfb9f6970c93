package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tmsim/internal/config"
	"github.com/san-kum/tmsim/internal/machine"
)

const (
	screenMenu = iota
	screenInput
	screenSim
)

type menuItem struct {
	name  string
	input string
	fps   int
	width int
}

// App is the interactive TUI: preset menu, free input entry, then the
// embedded live view.
type App struct {
	screen int
	cursor int
	items  []menuItem
	buf    string
	errMsg string

	live     Model
	fps      int
	tapeW    int
	maxSteps int
	termW    int
}

func NewApp(fps, tapeWidth, maxSteps int) App {
	items := make([]menuItem, 0, len(config.Presets)+1)
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		items = append(items, menuItem{name: name, input: p.Input, fps: p.FPS, width: p.TapeWidth})
	}
	items = append(items, menuItem{name: "custom input"})

	return App{
		items:    items,
		fps:      fps,
		tapeW:    tapeWidth,
		maxSteps: maxSteps,
		termW:    80,
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.termW = msg.Width
		if a.screen == screenSim {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
		return a, nil
	default:
		if a.screen == screenSim {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case screenMenu:
		return a.menuKey(msg)
	case screenInput:
		return a.inputKey(msg)
	case screenSim:
		if msg.String() == "esc" {
			a.screen = screenMenu
			return a, nil
		}
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
	case "enter", " ":
		item := a.items[a.cursor]
		if item.name == "custom input" {
			a.screen = screenInput
			a.buf = ""
			a.errMsg = ""
			return a, nil
		}
		return a.startSim(item.input, item.fps, item.width)
	}
	return a, nil
}

func (a App) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.screen = screenMenu
		return a, nil
	case "enter":
		return a.startSim(a.buf, a.fps, a.tapeW)
	case "backspace":
		if len(a.buf) > 0 {
			a.buf = a.buf[:len(a.buf)-1]
		}
	case "a", "b":
		// Only the machine's alphabet is accepted at entry.
		a.buf += msg.String()
	}
	return a, nil
}

func (a App) startSim(input string, fps, width int) (tea.Model, tea.Cmd) {
	m, err := machine.New(input)
	if err != nil {
		a.errMsg = err.Error()
		a.screen = screenMenu
		return a, nil
	}
	if fps < 1 {
		fps = a.fps
	}
	if width < 1 {
		width = a.tapeW
	}
	a.live = NewModel(m, fps, width, a.maxSteps)
	a.screen = screenSim
	a.errMsg = ""
	return a, a.live.Init()
}

func (a App) View() string {
	switch a.screen {
	case screenInput:
		return a.inputView()
	case screenSim:
		return a.live.View() + helpStyle.Render("esc menu") + "\n"
	}
	return a.menuView()
}

func (a App) menuView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tmsim — palindrome turing machine"))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("pick an input to simulate"))
	b.WriteString("\n\n")

	for i, item := range a.items {
		label := item.name
		if item.name != "custom input" {
			label = fmt.Sprintf("%-10s %q", item.name, item.input)
		}
		if i == a.cursor {
			b.WriteString(cyan.Render("> " + label))
		} else {
			b.WriteString(dim.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if a.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(rejectBanner.Render(a.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) inputView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("custom input"))
	b.WriteString("\n\n")
	b.WriteString(white.Render("string over {a, b}: "))
	b.WriteString(cyan.Render(a.buf))
	b.WriteString(yellow.Render("█"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type a/b · enter run · esc back"))
	b.WriteString("\n")
	return b.String()
}

// RunInteractive runs the menu-driven TUI.
func RunInteractive(fps, tapeWidth, maxSteps int) error {
	p := tea.NewProgram(NewApp(fps, tapeWidth, maxSteps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
