package pokeapi

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	english = "en"

	// NoDescription is returned when a species has no English flavor text.
	NoDescription = "No description available."

	// UnknownGenus is returned when a species has no English genus.
	UnknownGenus = "Unknown"

	artworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
)

var controlReplacer = strings.NewReplacer("\f", " ", "\n", " ")

// SelectEnglishText returns the first English flavor text with form feeds and newlines
// turned into spaces.
func SelectEnglishText(species *Species) string {
	if species == nil {
		return NoDescription
	}

	entry, ok := lo.Find(species.FlavorTextEntries, func(e FlavorText) bool {
		return e.Language.Name == english
	})
	if !ok {
		return NoDescription
	}
	return controlReplacer.Replace(entry.FlavorText)
}

// SelectEnglishGenus returns the first English genus, the category line of an entry.
func SelectEnglishGenus(species *Species) string {
	if species == nil {
		return UnknownGenus
	}

	genus, ok := lo.Find(species.Genera, func(g Genus) bool {
		return g.Language.Name == english
	})
	if !ok {
		return UnknownGenus
	}
	return genus.Genus
}

// ArtworkURL returns the official artwork image of an entry. No request is made.
func ArtworkURL(id int) string {
	return fmt.Sprintf(artworkURL, id)
}
