package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	cellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	blankCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	headCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true).Reverse(true)
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	acceptBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	rejectBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// DisableColor forces plain output, for NO_COLOR-style configs and piped
// output.
func DisableColor() {
	lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)
}
