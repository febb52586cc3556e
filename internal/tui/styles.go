package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorDim = lipgloss.Color("240") // gray

	// --MORE-- marker, reverse video like the classic pager
	styleStatus = lipgloss.NewStyle().
			Reverse(true)

	// Exit hint in the bottom-right corner
	styleHint = lipgloss.NewStyle().
			Foreground(colorDim)
)
