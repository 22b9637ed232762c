package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var styleRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B785")).Bold(true)
var styleStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1244c")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleNotSet = lipgloss.NewStyle().Foreground(lipgloss.Color("#5D689C"))

var styleStatusMainLine = lipgloss.NewStyle().Margin(1, 0)
var styleStatusDetails = lipgloss.NewStyle().PaddingLeft(2)
var styleStatusLeftColumn = lipgloss.NewStyle().Width(20)

func wrapNotSet(s string) string {
	if s == "" {
		return styleNotSet.Render("<not set>")
	}

	return styleHighlight.Render(s)
}
