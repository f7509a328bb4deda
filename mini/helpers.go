package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

// bind is a menu option that is not an item, such as "Quit".
type bind struct {
	name string
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

func (b *bind) String() string {
	return style.Fg(color.Yellow)(b.name)
}

var (
	quit          = &bind{name: "Quit"}
	back          = &bind{name: "Back"}
	nextPage      = &bind{name: "Next page"}
	prevPage      = &bind{name: "Previous page"}
	goToPage      = &bind{name: "Go to page"}
	toggleDensity = &bind{name: "Toggle density"}
	openArtwork   = &bind{name: "Open artwork"}
	reload        = &bind{name: "Reload"}
)

func title(t string) {
	fmt.Println()
	fmt.Println(style.Title(t))
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), msg))
}

func fail(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}

// menu asks to pick one of items or one of binds. Exactly one of the returned bind and
// item is set; an interrupt counts as quit.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	options := lo.Map(items, func(item T, _ int) string {
		return style.Truncate(truncateAt)(item.String())
	})
	options = append(options, lo.Map(binds, func(b *bind, _ int) string {
		return b.String()
	})...)

	var index int
	prompt := &survey.Select{
		Message:  "Choose",
		Options:  options,
		PageSize: 15,
	}

	if err := survey.AskOne(prompt, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return quit, zero, nil
		}
		return nil, zero, err
	}

	if index < len(items) {
		return nil, items[index], nil
	}
	return binds[index-len(items)], zero, nil
}
