// Package theme holds the Lip Gloss styles shared across the demo UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the reusable style set for the terminal front-end.
type Styles struct {
	Header        *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Value         *lipgloss.Style
	EditBadge     *lipgloss.Style
	Footer        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Filter        *lipgloss.Style
	Info          *lipgloss.Style
	Error         *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	EditBadge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
