// Package mini is the prompt-driven front end: one survey menu per screen, no full-screen UI.
package mini

import (
	"context"

	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

var truncateAt = 100

type Options struct {
	Client  pokeapi.Service
	Page    int
	Density catalog.Density
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	ctx     context.Context
	client  pokeapi.Service
	grid    *catalog.Grid
	overlay *catalog.Overlay

	startPage int

	// loadedPage is the page whose entries the grid currently publishes.
	loadedPage int
}

func newMini(ctx context.Context, options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		ctx:           ctx,
		client:        options.Client,
		grid:          catalog.NewGrid(pokeapi.Uncached(options.Client), options.Density),
		overlay:       catalog.NewOverlay(options.Client),
		startPage:     max(options.Page, 1),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run blocks until the user picks Quit.
func Run(ctx context.Context, options *Options) error {
	m := newMini(ctx, options)
	m.state = pageSelectState

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case pageSelectState:
		return m.handlePageSelectState()
	case goToPageState:
		return m.handleGoToPageState()
	case entryViewState:
		return m.handleEntryViewState()
	}

	return nil
}
