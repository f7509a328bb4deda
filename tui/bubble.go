package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	ctx       context.Context
	client    pokeapi.Service
	grid      *catalog.Grid
	overlay   *catalog.Overlay
	startPage int

	// cursor indexes the published entries of the current page.
	cursor int

	// inFlight counts page loads whose result message has not arrived yet. The grid
	// only flags loading once the command runs, which is after the first View.
	inFlight int

	spinnerC spinner.Model
	helpC    help.Model
	notifier *ui.Model

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		ctx:           ctx,
		client:        options.Client,
		grid:          catalog.NewGrid(pokeapi.Uncached(options.Client), options.Density),
		overlay:       catalog.NewOverlay(options.Client),
		startPage:     max(options.Page, 1),
		notifier:      &ui.Model{},
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = style.New().Foreground(style.AccentColor)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
