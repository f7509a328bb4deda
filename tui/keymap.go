package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, close,
	up, down, left, right,
	nextPage, prevPage, firstPage, lastPage,
	density,
	nextTab, prevTab, statsTab, movesTab, abilitiesTab,
	openArtwork, reload,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("details")),
		),
		close: key.NewBinding(
			key.WithKeys("esc", "q", "backspace"),
			key.WithHelp("esc", "close"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("n", "]", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("p", "[", "pgup"),
			key.WithHelp("p", "prev page"),
		),
		firstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		lastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		density: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "density"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		statsTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "stats"),
		),
		movesTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "moves"),
		),
		abilitiesTab: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "abilities"),
		),
		openArtwork: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open artwork"),
		),
		reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case gridState:
		return h(k.confirm, k.nextPage, k.prevPage, k.density, k.showHelp, k.quit),
			h(k.confirm, k.up, k.down, k.left, k.right, k.nextPage, k.prevPage, k.firstPage, k.lastPage, k.density, k.showHelp, k.quit)
	case overlayState:
		return h(k.nextTab, k.prevTab, k.openArtwork, k.close, k.showHelp),
			h(k.nextTab, k.prevTab, k.statsTab, k.movesTab, k.abilitiesTab, k.openArtwork, k.reload, k.close, k.forceQuit)
	default:
		return h(), h()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
