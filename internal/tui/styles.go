package tui

import "github.com/charmbracelet/lipgloss"

var styles = struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Name    lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#7D56F4")),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F25D94")).
		Bold(true),
	Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
}
