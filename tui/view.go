package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case gridState:
		output = b.viewGrid()
	case overlayState:
		output = b.viewOverlay()
	default:
		output = "Unknown state"
	}

	return paddingStyle.Render(b.notifier.View(output))
}

func (b *statefulBubble) viewGrid() string {
	state := b.grid.Snapshot()
	loading := state.Loading || b.inFlight > 0

	var subtitle string
	if loading {
		subtitle = b.spinnerC.View() + " Loading..."
	} else {
		subtitle = style.Faint(fmt.Sprintf("%s found", util.Quantify(state.Count, "Pokémon", "Pokémon")))
	}

	header := strings.Join([]string{
		style.Title("Pokédex"),
		subtitle,
		style.Faint("· " + string(state.Density)),
	}, " ")

	var cards []string
	if loading {
		cards = lo.Times(catalog.PageSize, func(int) string {
			return renderPlaceholder(state.Density, b.spinnerC.View())
		})
	} else {
		for i, entry := range state.Entries {
			cards = append(cards, renderCard(entry, state.Density, i == b.cursor))
		}
	}

	rows := lo.Map(lo.Chunk(cards, b.columns()), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, row...)
	})

	lines := []string{header, "", lipgloss.JoinVertical(lipgloss.Left, rows...)}
	if state.TotalPages > 1 {
		lines = append(lines, "", b.viewPagination(state))
	}
	lines = append(lines, "", b.helpC.View(b.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *statefulBubble) viewPagination(state catalog.GridState) string {
	edge := func(label string, enabled bool) string {
		if enabled {
			return label
		}
		return style.Faint(label)
	}

	parts := []string{edge("‹ prev", state.Page > 1)}
	for _, item := range state.Window {
		switch {
		case item.Ellipsis:
			parts = append(parts, style.Faint("…"))
		case item.Number == state.Page:
			parts = append(parts, style.Tag(style.Base, style.AccentColor)(strconv.Itoa(item.Number)))
		default:
			parts = append(parts, strconv.Itoa(item.Number))
		}
	}
	parts = append(parts, edge("next ›", state.Page < state.TotalPages))

	return icon.Get(icon.Page) + " " + strings.Join(parts, " ")
}

func (b *statefulBubble) viewOverlay() string {
	state := b.overlay.Snapshot()
	entry := state.Entry
	accent := color.PrimaryAccent(entry.Types)

	lines := []string{
		style.Fg(accent)(strings.Repeat("━", util.Max(b.width, 1))),
		style.Bold(util.Capitalize(entry.Name)) + " " + style.Faint(catalog.Number(entry.ID)),
	}

	switch {
	case state.Loading:
		lines = append(lines, "", b.spinnerC.View()+" Loading...")
	case !state.Loaded():
		lines = append(lines, "", style.Faint("No details available. Press R to retry."))
	default:
		lines = append(lines, b.viewProfile(state, accent)...)
	}

	lines = append(lines, "", b.helpC.View(b.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *statefulBubble) viewProfile(state catalog.OverlayState, accent lipgloss.Color) []string {
	profile := catalog.NewProfile(state.Detail, state.Species)

	tags := lo.Map(profile.Types, func(t string, _ int) string {
		return style.TypeTag(t)
	})

	tabs := lo.Map(catalog.Tabs, func(tab catalog.Tab, _ int) string {
		if tab == state.Tab {
			return style.Tag(style.Base, accent)(tab.Title())
		}
		return style.Faint(" " + tab.Title() + " ")
	})

	lines := []string{
		style.Italic(profile.Genus),
		strings.Join(tags, " "),
		"",
		wrap.String(profile.Description, util.Max(b.width, 20)),
		"",
		fmt.Sprintf("%s %.1f m   %s %.1f kg", style.Faint("Height"), profile.Height, style.Faint("Weight"), profile.Weight),
		"",
		strings.Join(tabs, " "),
		"",
	}

	switch state.Tab {
	case catalog.TabStats:
		lines = append(lines, b.viewStats(state.Detail, accent)...)
	case catalog.TabMoves:
		lines = append(lines, b.viewMoves(state.Detail)...)
	case catalog.TabAbilities:
		lines = append(lines, viewAbilities(state.Detail)...)
	}

	return lines
}

func (b *statefulBubble) viewStats(detail *pokeapi.Detail, accent lipgloss.Color) []string {
	sheet := catalog.StatSheet(detail)

	bar := progress.New(
		progress.WithSolidFill(string(accent)),
		progress.WithWidth(util.Max(10, util.Min(40, b.width-20))),
		progress.WithoutPercentage(),
	)

	lines := lo.Map(sheet.Lines, func(line catalog.StatLine, _ int) string {
		return fmt.Sprintf("%-8s %3d %s", line.Label, line.Value, bar.ViewAs(line.Percent/100))
	})
	return append(lines, "", fmt.Sprintf("%-8s %3d", "Total", sheet.Total))
}

func (b *statefulBubble) viewMoves(detail *pokeapi.Detail) []string {
	names, remaining := catalog.MovePreview(detail, catalog.MovePreviewLimit)
	if len(names) == 0 {
		return []string{style.Faint("No moves")}
	}

	lines := []string{wrap.String(strings.Join(names, ", "), util.Max(b.width, 20))}
	if remaining > 0 {
		lines = append(lines, style.Faint(fmt.Sprintf("+%d more moves", remaining)))
	}
	return lines
}

func viewAbilities(detail *pokeapi.Detail) []string {
	abilities := catalog.Abilities(detail)
	if len(abilities) == 0 {
		return []string{style.Faint("No abilities")}
	}

	return lo.Map(abilities, func(a catalog.Ability, _ int) string {
		name := util.Capitalize(a.Name)
		if a.Hidden {
			return name + " " + style.Tag(style.Base, style.Overlay)(icon.Get(icon.Hidden)+" Hidden")
		}
		return name
	})
}
