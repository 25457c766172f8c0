package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4682B4")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC143C")).Bold(true)
	drawingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED"))

	bigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4682B4")).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#6495ED"))
	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4682B4"))
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4A4A4A")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

func button(label string, active, enabled bool) string {
	switch {
	case !enabled:
		return disabledButtonStyle.Render(label)
	case active:
		return activeButtonStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}
