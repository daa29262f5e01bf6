package tui

import "github.com/charmbracelet/lipgloss"

// Styles grouped the way bubbletea programs in the wild tend to: one value
// per visually distinct region of the view, built once at package init
// rather than re-allocated every render.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	screenBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	changedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	cursorLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// regStyle picks the plain or changed style for one register, depending on
// whether diff highlighting is on and that register differs from the prior
// snapshot.
func regStyle(changed bool) lipgloss.Style {
	if changed {
		return changedStyle
	}
	return labelStyle
}
