package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61AFEF"))

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	cursorRowStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true)

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#5C6370"))

	emptyStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Italic(true).
			Foreground(lipgloss.Color("#5C6370"))

	warningStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#E06C75")).
			Foreground(lipgloss.Color("#E06C75")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06C75"))
)
