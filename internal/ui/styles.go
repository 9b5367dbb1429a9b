// Package ui implements the terminal client interface.
package ui

import "github.com/charmbracelet/lipgloss"

// Icon constants
const (
	HostIcon = "👑"
	ChipIcon = "🪙"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	potStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	selfStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	promptStyle = lipgloss.NewStyle().MarginTop(1)
)
