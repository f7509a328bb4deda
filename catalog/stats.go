package catalog

import (
	"fmt"
	"strings"

	"github.com/pokedex-cli/pokedex/pokeapi"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MaxStat is the value a full stat bar represents.
const MaxStat = 255

// MovePreviewLimit is how many moves the moves tab lists.
const MovePreviewLimit = 30

// statLabels maps stat keys to display labels in the order they are shown.
var statLabels = orderedmap.New[string, string]()

func init() {
	statLabels.Set(pokeapi.StatHP, "HP")
	statLabels.Set(pokeapi.StatAttack, "Attack")
	statLabels.Set(pokeapi.StatDefense, "Defense")
	statLabels.Set(pokeapi.StatSpecialAttack, "Sp. Atk")
	statLabels.Set(pokeapi.StatSpecialDefense, "Sp. Def")
	statLabels.Set(pokeapi.StatSpeed, "Speed")
}

// StatLine is one row of the stats tab.
type StatLine struct {
	Key     string  `json:"key" yaml:"key"`
	Label   string  `json:"label" yaml:"label"`
	Value   int     `json:"value" yaml:"value"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Stats is the stats tab: six lines in fixed order and their sum.
type Stats struct {
	Lines []StatLine `json:"lines" yaml:"lines"`
	Total int        `json:"total" yaml:"total"`
}

// StatSheet derives the stats tab. Missing stats count as 0. Percent is relative to
// MaxStat and is not clamped.
func StatSheet(detail *pokeapi.Detail) Stats {
	var sheet Stats
	for pair := statLabels.Oldest(); pair != nil; pair = pair.Next() {
		value := detail.Stat(pair.Key)
		sheet.Lines = append(sheet.Lines, StatLine{
			Key:     pair.Key,
			Label:   pair.Value,
			Value:   value,
			Percent: float64(value) / MaxStat * 100,
		})
		sheet.Total += value
	}
	return sheet
}

// DisplayName turns an upstream key such as "thunder-punch" into "thunder punch".
func DisplayName(key string) string {
	return strings.ReplaceAll(key, "-", " ")
}

// MovePreview returns the first limit move names and how many were left out.
func MovePreview(detail *pokeapi.Detail, limit int) (names []string, remaining int) {
	shown := min(limit, len(detail.Moves))
	names = make([]string, shown)
	for i, slot := range detail.Moves[:shown] {
		names[i] = DisplayName(slot.Move.Name)
	}
	return names, len(detail.Moves) - shown
}

// Ability is one row of the abilities tab.
type Ability struct {
	Name   string `json:"name" yaml:"name"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

func Abilities(detail *pokeapi.Detail) []Ability {
	abilities := make([]Ability, len(detail.Abilities))
	for i, slot := range detail.Abilities {
		abilities[i] = Ability{Name: DisplayName(slot.Ability.Name), Hidden: slot.IsHidden}
	}
	return abilities
}

// Profile is the header block of the overlay.
type Profile struct {
	Number      string   `json:"number" yaml:"number"`
	Name        string   `json:"name" yaml:"name"`
	Genus       string   `json:"genus" yaml:"genus"`
	Types       []string `json:"types" yaml:"types"`
	Description string   `json:"description" yaml:"description"`
	Height      float64  `json:"height_m" yaml:"height_m"`
	Weight      float64  `json:"weight_kg" yaml:"weight_kg"`
}

// Number pads an identifier to three digits, as in "#025".
func Number(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// NewProfile combines a detail with its species. A nil species yields the fallbacks.
func NewProfile(detail *pokeapi.Detail, species *pokeapi.Species) Profile {
	return Profile{
		Number:      Number(detail.ID),
		Name:        detail.Name,
		Genus:       pokeapi.SelectEnglishGenus(species),
		Types:       detail.TypeNames(),
		Description: pokeapi.SelectEnglishText(species),
		Height:      detail.HeightMeters(),
		Weight:      detail.WeightKilograms(),
	}
}
