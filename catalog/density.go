package catalog

import (
	"fmt"
	"strings"
)

// Density is how much of each entry a grid card shows.
type Density string

const (
	Comfortable Density = "comfortable"
	Compact     Density = "compact"
)

// ParseDensity accepts the density names case-insensitively.
func ParseDensity(s string) (Density, error) {
	switch d := Density(strings.ToLower(strings.TrimSpace(s))); d {
	case Comfortable, Compact:
		return d, nil
	default:
		return "", fmt.Errorf("unknown density %q, expected %s or %s", s, Comfortable, Compact)
	}
}

// Toggle returns the other density.
func (d Density) Toggle() Density {
	if d == Compact {
		return Comfortable
	}
	return Compact
}
