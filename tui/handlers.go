package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/open"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/util"
)

type pageLoadedMsg struct {
	page int
	err  error
}

type overlayLoadedMsg struct {
	entry pokeapi.Entry
	err   error
}

func (b *statefulBubble) loadPage(page int) tea.Cmd {
	b.inFlight++
	return func() tea.Msg {
		return pageLoadedMsg{page: page, err: b.grid.LoadPage(b.ctx, page)}
	}
}

func (b *statefulBubble) changePage(target int) tea.Cmd {
	if target == b.grid.Page() || !b.grid.ChangePage(target) {
		return nil
	}

	b.cursor = 0
	return b.loadPage(target)
}

func (b *statefulBubble) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	b.inFlight--

	switch {
	case msg.err == nil:
		b.cursor = util.Max(0, util.Min(b.cursor, len(b.grid.Snapshot().Entries)-1))
		return nil
	case errors.Is(msg.err, catalog.ErrSuperseded):
		return nil
	case errors.Is(msg.err, catalog.ErrPageOutOfRange):
		if last := b.grid.TotalPages(); last > 0 && msg.page > last && b.grid.ChangePage(last) {
			log.Infof("page %d is past the end, showing page %d", msg.page, last)
			return b.loadPage(last)
		}
	}

	return ui.Notify(fmt.Sprintf("%s Failed to load page %d", icon.Get(icon.Fail), msg.page))
}

func (b *statefulBubble) openOverlay(entry pokeapi.Entry) tea.Cmd {
	b.grid.Select(entry)
	b.newState(overlayState)

	return func() tea.Msg {
		return overlayLoadedMsg{entry: entry, err: b.overlay.Open(b.ctx, entry)}
	}
}

func (b *statefulBubble) closeOverlay() {
	b.overlay.Close()
	b.grid.ClearSelection()
	b.previousState()
}

// reloadOverlay drops any cached copy of the open entry and fetches it again.
func (b *statefulBubble) reloadOverlay() tea.Cmd {
	entry := b.overlay.Snapshot().Entry

	return func() tea.Msg {
		if err := b.client.Invalidate(pokeapi.ID(entry.ID)); err != nil {
			log.Warnf("invalidate %s: %v", entry.Name, err)
		}
		return overlayLoadedMsg{entry: entry, err: b.overlay.Reload(b.ctx)}
	}
}

func (b *statefulBubble) handleOverlayLoaded(msg overlayLoadedMsg) tea.Cmd {
	if msg.err == nil || errors.Is(msg.err, catalog.ErrSuperseded) {
		return nil
	}

	return ui.Notify(fmt.Sprintf("%s Failed to load %s", icon.Get(icon.Fail), util.Capitalize(msg.entry.Name)))
}

func (b *statefulBubble) openArtwork() tea.Cmd {
	entry := b.overlay.Snapshot().Entry

	return func() tea.Msg {
		if err := open.Start(pokeapi.ArtworkURL(entry.ID)); err != nil {
			log.Error(err)
			return ui.NotificationMsg(fmt.Sprintf("%s Could not open artwork: %v", icon.Get(icon.Fail), err))
		}
		return nil
	}
}

// moveCursor moves the selection by dx cards and dy rows, staying on the page.
func (b *statefulBubble) moveCursor(dx, dy int) {
	count := len(b.grid.Snapshot().Entries)
	if count == 0 {
		return
	}

	target := b.cursor + dx + dy*b.columns()
	if target < 0 || target >= count {
		return
	}
	b.cursor = target
}
