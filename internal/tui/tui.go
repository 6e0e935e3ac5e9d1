// Package tui renders the interactive table view: the live schema across the
// top, one row per task, per-column filter and sort, and huh forms for every
// mutation. All state changes go through the deck; the view only ever holds
// query state.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/deck"
)

// Run starts the table view and blocks until the user quits.
func Run(d *deck.Deck, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(d, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
