package inline

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

// textWidth is the wrap width of descriptions and move lists.
const textWidth = 72

// RenderEntry formats one grid entry on a single line.
func RenderEntry(entry pokeapi.Entry, density catalog.Density) string {
	number := style.Faint(catalog.Number(entry.ID))
	name := util.Capitalize(entry.Name)

	if density == catalog.Compact {
		return fmt.Sprintf("%s %s", number, name)
	}

	return fmt.Sprintf("%s %-14s %-18s HP %3d  ATK %3d  DEF %3d",
		number, name, strings.Join(entry.Types, "/"), entry.HP, entry.Attack, entry.Defense)
}

// RenderProfile formats the header block of an entry.
func RenderProfile(profile catalog.Profile) string {
	tags := lo.Map(profile.Types, func(t string, _ int) string {
		return style.TypeTag(t)
	})

	return strings.Join([]string{
		fmt.Sprintf("%s %s", style.Bold(util.Capitalize(profile.Name)), style.Faint(profile.Number)),
		style.Italic(profile.Genus),
		strings.Join(tags, " "),
		"",
		wrap.String(profile.Description, textWidth),
		"",
		fmt.Sprintf("Height %.1f m   Weight %.1f kg", profile.Height, profile.Weight),
	}, "\n")
}

// RenderTab formats one body section of an entry.
func RenderTab(detail *pokeapi.Detail, tab catalog.Tab) string {
	var lines []string

	switch tab {
	case catalog.TabStats:
		sheet := catalog.StatSheet(detail)
		for _, line := range sheet.Lines {
			bar := strings.Repeat("█", int(line.Percent/5))
			lines = append(lines, fmt.Sprintf("%-8s %3d %s", line.Label, line.Value, bar))
		}
		lines = append(lines, fmt.Sprintf("%-8s %3d", "Total", sheet.Total))
	case catalog.TabMoves:
		names, remaining := catalog.MovePreview(detail, catalog.MovePreviewLimit)
		if len(names) == 0 {
			return "No moves"
		}
		lines = append(lines, wrap.String(strings.Join(names, ", "), textWidth))
		if remaining > 0 {
			lines = append(lines, fmt.Sprintf("+%d more moves", remaining))
		}
	case catalog.TabAbilities:
		abilities := catalog.Abilities(detail)
		if len(abilities) == 0 {
			return "No abilities"
		}
		for _, a := range abilities {
			line := util.Capitalize(a.Name)
			if a.Hidden {
				line += " (hidden)"
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
