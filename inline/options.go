package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/samber/mo"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// AvailableFormats lists the accepted --format values.
func AvailableFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q, expected one of %s", s, strings.Join(AvailableFormats(), ", "))
	}
}

type PageOptions struct {
	Out    io.Writer
	Client catalog.Fetcher
	Page   int
	// Filter keeps entries whose name fuzzy-matches it. Empty keeps everything.
	Filter  string
	Format  Format
	Density catalog.Density
}

type ShowOptions struct {
	Out    io.Writer
	Client catalog.Fetcher
	// Query is a name or a numeric id.
	Query  string
	Tab    mo.Option[catalog.Tab]
	Format Format
}
