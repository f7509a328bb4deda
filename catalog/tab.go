package catalog

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Tab selects the body section of the overlay.
type Tab int

const (
	TabStats Tab = iota
	TabMoves
	TabAbilities
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabStats, TabMoves, TabAbilities}

var tabNames = map[Tab]string{
	TabStats:     "stats",
	TabMoves:     "moves",
	TabAbilities: "abilities",
}

func (t Tab) String() string {
	if name, ok := tabNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tab(%d)", int(t))
}

// Title is the capitalized tab label.
func (t Tab) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}

// ParseTab accepts a tab name in any case. Ties in the suggestion go to the earlier tab.
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if tab, ok := lo.Find(Tabs, func(t Tab) bool { return t.String() == s }); ok {
		return tab, nil
	}

	closest := lo.MinBy(Tabs, func(a, b Tab) bool {
		return levenshtein.Distance(s, a.String()) < levenshtein.Distance(s, b.String())
	})
	return TabStats, fmt.Errorf("unknown tab %q, did you mean %q?", s, closest.String())
}
