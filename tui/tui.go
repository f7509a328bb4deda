// Package tui is the full-screen terminal front end: a paginated grid of cards and a
// tabbed detail overlay.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/pokeapi"
)

// Options configures a TUI session.
type Options struct {
	Client  pokeapi.Service
	Page    int
	Density catalog.Density
}

// Run blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	bubble.setState(gridState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
