// Package icon renders the status symbols used by every front end.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on the icons.variant setting.
package icon

import (
	"github.com/pokedex-cli/pokedex/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon names one symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Hidden
	Page
	Cache
	Artwork
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Hidden: {
		emoji:   "🙈",
		nerd:    "",
		plain:   "*",
		kaomoji: "(¬_¬)",
		squares: "⬛",
	},
	Page: {
		emoji:   "📖",
		nerd:    "",
		plain:   "#",
		kaomoji: "(o_o)",
		squares: "🟦",
	},
	Cache: {
		emoji:   "💾",
		nerd:    "",
		plain:   "@",
		kaomoji: "(^_^)b",
		squares: "🟪",
	},
	Artwork: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "^",
		kaomoji: "(◕‿◕)",
		squares: "🟧",
	},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].Get()
}
