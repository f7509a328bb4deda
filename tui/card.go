package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

const (
	comfortableCardWidth = 26
	compactCardWidth     = 18

	// border plus right margin
	cardChrome = 3
)

func cardWidth(density catalog.Density) int {
	if density == catalog.Compact {
		return compactCardWidth
	}
	return comfortableCardWidth
}

// columns is how many cards fit side by side.
func (b *statefulBubble) columns() int {
	return util.Max(1, b.width/(cardWidth(b.grid.Density())+cardChrome))
}

func cardStyle(width int, border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 1).
		MarginRight(1)
}

func renderCard(entry pokeapi.Entry, density catalog.Density, selected bool) string {
	width := cardWidth(density)
	accent := color.PrimaryAccent(entry.Types)

	border := style.BorderColor
	if selected {
		border = accent
	}

	name := style.Truncate(width - 2)(style.Bold(util.Capitalize(entry.Name)))
	number := style.Faint(catalog.Number(entry.ID))

	var lines []string
	switch density {
	case catalog.Compact:
		lines = []string{
			number,
			name,
			style.TypeTag(color.Primary(entry.Types)),
		}
	default:
		tags := lo.Map(entry.Types, func(t string, _ int) string {
			return style.TypeTag(t)
		})
		stat := func(label string, value int) string {
			return fmt.Sprintf("%s %d", style.Faint(label), value)
		}

		lines = []string{
			number,
			name,
			strings.Join(tags, " "),
			"",
			strings.Join([]string{stat("HP", entry.HP), stat("ATK", entry.Attack), stat("DEF", entry.Defense)}, "  "),
		}
	}

	return cardStyle(width, border).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderPlaceholder(density catalog.Density, spinner string) string {
	lines := []string{spinner, style.Faint("Loading...")}
	if density == catalog.Comfortable {
		lines = append(lines, "", "")
	}
	return cardStyle(cardWidth(density), style.BorderColor).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
