package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FallbackType is used for unknown labels and entries without types.
const FallbackType = "normal"

// typeAccents maps a type label to its accent color. Every renderer reads it through
// ForType so the grid and the overlay never disagree.
var typeAccents = map[string]lipgloss.Color{
	"fire":     New("#f97316"),
	"water":    New("#3b82f6"),
	"grass":    New("#22c55e"),
	"electric": New("#facc15"),
	"psychic":  New("#ec4899"),
	"ice":      New("#67e8f9"),
	"dragon":   New("#9333ea"),
	"dark":     New("#374151"),
	"fairy":    New("#f9a8d4"),
	"normal":   New("#9ca3af"),
	"fighting": New("#b91c1c"),
	"flying":   New("#a5b4fc"),
	"poison":   New("#a855f7"),
	"ground":   New("#d97706"),
	"rock":     New("#92400e"),
	"bug":      New("#84cc16"),
	"ghost":    New("#6d28d9"),
	"steel":    New("#94a3b8"),
}

// ForType returns the accent color of a type label, falling back to the normal accent.
func ForType(label string) lipgloss.Color {
	if c, ok := typeAccents[strings.ToLower(label)]; ok {
		return c
	}
	return typeAccents[FallbackType]
}

// Primary returns the first label, which drives accent coloring, or FallbackType.
func Primary(labels []string) string {
	if len(labels) == 0 {
		return FallbackType
	}
	return labels[0]
}

// PrimaryAccent is ForType(Primary(labels)).
func PrimaryAccent(labels []string) lipgloss.Color {
	return ForType(Primary(labels))
}
