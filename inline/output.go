package inline

import (
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/pokeapi"
)

// PageOutput is the structured result of `inline page`.
type PageOutput struct {
	Page       int             `json:"page" yaml:"page"`
	TotalPages int             `json:"total_pages" yaml:"total_pages"`
	Count      int             `json:"count" yaml:"count"`
	Filter     string          `json:"filter,omitempty" yaml:"filter,omitempty"`
	Entries    []pokeapi.Entry `json:"entries" yaml:"entries"`
}

// Moves lists the first moves of an entry and how many were left out.
type Moves struct {
	Shown     []string `json:"shown" yaml:"shown"`
	Remaining int      `json:"remaining" yaml:"remaining"`
}

// DetailOutput is the structured result of `inline show`. When a tab is requested
// only that section is filled.
type DetailOutput struct {
	Profile   catalog.Profile   `json:"profile" yaml:"profile"`
	Artwork   string            `json:"artwork" yaml:"artwork"`
	Stats     *catalog.Stats    `json:"stats,omitempty" yaml:"stats,omitempty"`
	Moves     *Moves            `json:"moves,omitempty" yaml:"moves,omitempty"`
	Abilities []catalog.Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

func newDetailOutput(state catalog.OverlayState, tab *catalog.Tab) *DetailOutput {
	output := &DetailOutput{
		Profile: catalog.NewProfile(state.Detail, state.Species),
		Artwork: pokeapi.ArtworkURL(state.Detail.ID),
	}

	include := func(t catalog.Tab) bool {
		return tab == nil || *tab == t
	}

	if include(catalog.TabStats) {
		stats := catalog.StatSheet(state.Detail)
		output.Stats = &stats
	}

	if include(catalog.TabMoves) {
		shown, remaining := catalog.MovePreview(state.Detail, catalog.MovePreviewLimit)
		output.Moves = &Moves{Shown: shown, Remaining: remaining}
	}

	if include(catalog.TabAbilities) {
		output.Abilities = catalog.Abilities(state.Detail)
	}

	return output
}
