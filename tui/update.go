package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/catalog"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg)}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case pageLoadedMsg:
		cmds = append(cmds, b.handlePageLoaded(msg))
	case overlayLoadedMsg:
		cmds = append(cmds, b.handleOverlayLoaded(msg))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, tea.Batch(cmds...)
		}

		switch b.state {
		case gridState:
			cmds = append(cmds, b.updateGrid(msg))
		case overlayState:
			cmds = append(cmds, b.updateOverlay(msg))
		}
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) updateGrid(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.quit):
		return tea.Quit
	case key.Matches(msg, b.keymap.up):
		b.moveCursor(0, -1)
	case key.Matches(msg, b.keymap.down):
		b.moveCursor(0, 1)
	case key.Matches(msg, b.keymap.left):
		b.moveCursor(-1, 0)
	case key.Matches(msg, b.keymap.right):
		b.moveCursor(1, 0)
	case key.Matches(msg, b.keymap.nextPage):
		return b.changePage(b.grid.Page() + 1)
	case key.Matches(msg, b.keymap.prevPage):
		return b.changePage(b.grid.Page() - 1)
	case key.Matches(msg, b.keymap.firstPage):
		return b.changePage(1)
	case key.Matches(msg, b.keymap.lastPage):
		return b.changePage(b.grid.TotalPages())
	case key.Matches(msg, b.keymap.density):
		b.grid.ToggleDensity()
	case key.Matches(msg, b.keymap.confirm):
		state := b.grid.Snapshot()
		if state.Loading || b.cursor >= len(state.Entries) {
			return nil
		}
		return b.openOverlay(state.Entries[b.cursor])
	}

	return nil
}

func (b *statefulBubble) updateOverlay(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.close):
		b.closeOverlay()
	case key.Matches(msg, b.keymap.nextTab):
		b.overlay.NextTab()
	case key.Matches(msg, b.keymap.prevTab):
		b.overlay.PrevTab()
	case key.Matches(msg, b.keymap.statsTab):
		b.overlay.SetTab(catalog.TabStats)
	case key.Matches(msg, b.keymap.movesTab):
		b.overlay.SetTab(catalog.TabMoves)
	case key.Matches(msg, b.keymap.abilitiesTab):
		b.overlay.SetTab(catalog.TabAbilities)
	case key.Matches(msg, b.keymap.openArtwork):
		return b.openArtwork()
	case key.Matches(msg, b.keymap.reload):
		return b.reloadOverlay()
	}

	return nil
}
