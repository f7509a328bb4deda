package mini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/inline"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/open"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

type state int

const (
	pageSelectState state = iota + 1
	goToPageState
	entryViewState
	quitState
)

type entryItem struct {
	entry   pokeapi.Entry
	density catalog.Density
}

func (e *entryItem) String() string {
	return inline.RenderEntry(e.entry, e.density)
}

type tabItem struct {
	tab    catalog.Tab
	active bool
}

func (t *tabItem) String() string {
	if t.active {
		return t.tab.Title() + " •"
	}
	return t.tab.Title()
}

// loadPage publishes page. A page past the end falls back to the last page; any other
// failure keeps the previous page on screen unless there is none yet.
func (m *mini) loadPage(page int) error {
	erase := progress(fmt.Sprintf("Loading page %d..", page))
	err := m.grid.LoadPage(m.ctx, page)
	erase()

	switch {
	case err == nil:
		m.loadedPage = page
		return nil
	case errors.Is(err, catalog.ErrPageOutOfRange):
		if last := m.grid.TotalPages(); last > 0 && page > last && m.grid.ChangePage(last) {
			return m.loadPage(last)
		}
	}

	if m.loadedPage == 0 {
		return err
	}

	fail(fmt.Sprintf("Failed to load page %d", page))
	m.grid.ChangePage(m.loadedPage)
	return nil
}

func (m *mini) handlePageSelectState() error {
	target := m.grid.Page()
	if m.loadedPage == 0 {
		target = m.startPage
	}

	if target != m.loadedPage {
		if err := m.loadPage(target); err != nil {
			return err
		}
	}

	snapshot := m.grid.Snapshot()
	title(fmt.Sprintf("Page %d of %d · %s", snapshot.Page, snapshot.TotalPages, util.Quantify(snapshot.Count, "Pokémon", "Pokémon")))

	var binds []*bind
	if snapshot.Page < snapshot.TotalPages {
		binds = append(binds, nextPage)
	}
	if snapshot.Page > 1 {
		binds = append(binds, prevPage)
	}
	binds = append(binds, goToPage, toggleDensity, quit)

	items := lo.Map(snapshot.Entries, func(e pokeapi.Entry, _ int) *entryItem {
		return &entryItem{entry: e, density: snapshot.Density}
	})

	b, item, err := menu(items, binds...)
	if err != nil {
		return err
	}

	switch {
	case b == nil:
		m.grid.Select(item.entry)
		m.newState(entryViewState)
	case quit.eq(b):
		m.newState(quitState)
	case nextPage.eq(b):
		m.grid.ChangePage(snapshot.Page + 1)
	case prevPage.eq(b):
		m.grid.ChangePage(snapshot.Page - 1)
	case goToPage.eq(b):
		m.newState(goToPageState)
	case toggleDensity.eq(b):
		m.grid.ToggleDensity()
	}

	return nil
}

func (m *mini) handleGoToPageState() error {
	total := m.grid.TotalPages()

	var answer string
	prompt := &survey.Input{Message: fmt.Sprintf("Page (1-%d)", total)}
	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
		if _, ok := parsePage(fmt.Sprint(ans), total); !ok {
			return fmt.Errorf("enter a number between 1 and %d", total)
		}
		return nil
	}))
	if err != nil {
		return err
	}

	page, _ := parsePage(answer, total)
	m.grid.ChangePage(page)
	m.previousState()
	return nil
}

func parsePage(s string, total int) (int, bool) {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || page < 1 || page > total {
		return 0, false
	}
	return page, true
}

func (m *mini) leaveEntry() {
	m.overlay.Close()
	m.grid.ClearSelection()
	m.previousState()
}

func (m *mini) handleEntryViewState() error {
	entry, ok := m.grid.Selected().Get()
	if !ok {
		m.previousState()
		return nil
	}

	if snapshot := m.overlay.Snapshot(); !snapshot.Open || snapshot.Entry.ID != entry.ID {
		erase := progress(fmt.Sprintf("Loading %s..", util.Capitalize(entry.Name)))
		err := m.overlay.Open(m.ctx, entry)
		erase()

		if err != nil {
			fail(fmt.Sprintf("Failed to load %s", util.Capitalize(entry.Name)))
			m.leaveEntry()
			return nil
		}

		snapshot = m.overlay.Snapshot()
		fmt.Println()
		fmt.Println(inline.RenderProfile(catalog.NewProfile(snapshot.Detail, snapshot.Species)))
	}

	snapshot := m.overlay.Snapshot()
	title(snapshot.Tab.Title())
	fmt.Println(inline.RenderTab(snapshot.Detail, snapshot.Tab))

	tabs := lo.Map(catalog.Tabs, func(tab catalog.Tab, _ int) *tabItem {
		return &tabItem{tab: tab, active: tab == snapshot.Tab}
	})

	b, item, err := menu(tabs, openArtwork, reload, back)
	if err != nil {
		return err
	}

	switch {
	case b == nil:
		m.overlay.SetTab(item.tab)
	case back.eq(b), quit.eq(b):
		m.leaveEntry()
	case openArtwork.eq(b):
		url := pokeapi.ArtworkURL(entry.ID)
		if err := open.Start(url); err != nil {
			fail(err.Error())
			break
		}
		fmt.Printf("%s %s\n", icon.Get(icon.Artwork), style.Faint(url))
	case reload.eq(b):
		if err := m.client.Invalidate(pokeapi.ID(entry.ID)); err != nil {
			log.Warnf("invalidate %s: %v", entry.Name, err)
		} else {
			fmt.Printf("%s %s\n", icon.Get(icon.Cache), style.Faint("cache cleared for "+entry.Name))
		}

		erase := progress(fmt.Sprintf("Reloading %s..", util.Capitalize(entry.Name)))
		err := m.overlay.Reload(m.ctx)
		erase()

		if err != nil {
			fail(fmt.Sprintf("Failed to reload %s", util.Capitalize(entry.Name)))
			m.leaveEntry()
		}
	}

	return nil
}
