// Package app hosts the terminal front-end for the menu engine: a Bubble Tea
// program that feeds key presses into the engine as edge events and shows the
// engine's rendered frames.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	Numbering  bool
	ShowFooter bool
	StackDepth int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := NewModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
