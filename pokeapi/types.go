// Package pokeapi is a client for the public creature catalog REST API.
package pokeapi

import (
	"strconv"
	"strings"
)

// NamedReference points at a detail resource. The numeric identifier is the last
// path segment of URL.
type NamedReference struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"`
}

// ID extracts the numeric identifier from the reference URL, or 0 if there is none.
func (r NamedReference) ID() int {
	trimmed := strings.TrimSuffix(r.URL, "/")
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]

	id, err := strconv.Atoi(segment)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// ReferenceList is one page of the collection listing.
type ReferenceList struct {
	Count    int              `json:"count" validate:"gte=0"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []NamedReference `json:"results" validate:"dive"`
}

type Sprites struct {
	FrontDefault *string `json:"front_default"`
	Other        *struct {
		OfficialArtwork *struct {
			FrontDefault *string `json:"front_default"`
		} `json:"official-artwork,omitempty"`
	} `json:"other,omitempty"`
}

type TypeSlot struct {
	Slot int            `json:"slot"`
	Type NamedReference `json:"type"`
}

type StatEntry struct {
	BaseStat int            `json:"base_stat"`
	Effort   int            `json:"effort"`
	Stat     NamedReference `json:"stat"`
}

type AbilitySlot struct {
	Ability  NamedReference `json:"ability"`
	IsHidden bool           `json:"is_hidden"`
	Slot     int            `json:"slot"`
}

type MoveSlot struct {
	Move NamedReference `json:"move"`
}

// Detail is the full attribute set of one catalog entry.
type Detail struct {
	ID        int           `json:"id" validate:"gt=0"`
	Name      string        `json:"name" validate:"required"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types" validate:"min=1"`
	Stats     []StatEntry   `json:"stats"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Abilities []AbilitySlot `json:"abilities"`
	Moves     []MoveSlot    `json:"moves"`
}

// TypeNames returns the bare type labels in upstream order.
func (d *Detail) TypeNames() []string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = t.Type.Name
	}
	return names
}

// Stat returns the base value of the named stat, or 0 when the entry is absent.
func (d *Detail) Stat(key string) int {
	for _, s := range d.Stats {
		if s.Stat.Name == key {
			return s.BaseStat
		}
	}
	return 0
}

// HeightMeters converts the upstream decimeter height.
func (d *Detail) HeightMeters() float64 {
	return float64(d.Height) / 10
}

// WeightKilograms converts the upstream hectogram weight.
func (d *Detail) WeightKilograms() float64 {
	return float64(d.Weight) / 10
}

type FlavorText struct {
	FlavorText string         `json:"flavor_text"`
	Language   NamedReference `json:"language"`
	Version    NamedReference `json:"version"`
}

type Genus struct {
	Genus    string         `json:"genus"`
	Language NamedReference `json:"language"`
}

// Species holds the descriptive text and category of an entry.
type Species struct {
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
	Genera            []Genus      `json:"genera"`
}

// Entry is the flattened record a grid card is drawn from.
type Entry struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Types    []string `json:"types" yaml:"types"`
	HP       int      `json:"hp" yaml:"hp"`
	Attack   int      `json:"attack" yaml:"attack"`
	Defense  int      `json:"defense" yaml:"defense"`
	ImageURL string   `json:"image_url" yaml:"image_url"`
}
