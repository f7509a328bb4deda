// Package inline is the non-interactive front end: it loads one page or one entry,
// prints it as text, JSON or YAML, and exits.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pokedex-cli/pokedex/catalog"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/samber/lo"
)

// RunPage loads one grid page and writes its entries.
func RunPage(ctx context.Context, options *PageOptions) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	grid := catalog.NewGrid(options.Client, options.Density)
	if err := grid.LoadPage(ctx, options.Page); err != nil {
		return err
	}

	state := grid.Snapshot()
	entries := state.Entries
	if options.Filter != "" {
		entries = lo.Filter(entries, func(e pokeapi.Entry, _ int) bool {
			return fuzzy.MatchFold(options.Filter, e.Name)
		})
		log.Infof("filter %q kept %d of %d entries", options.Filter, len(entries), len(state.Entries))
	}

	output := &PageOutput{
		Page:       state.Page,
		TotalPages: state.TotalPages,
		Count:      state.Count,
		Filter:     options.Filter,
		Entries:    entries,
	}

	return write(options.Out, options.Format, output, func(w io.Writer) error {
		for _, entry := range entries {
			if _, err := fmt.Fprintln(w, RenderEntry(entry, state.Density)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintln(w, style.Faint(fmt.Sprintf("page %d of %d", state.Page, state.TotalPages)))
		return err
	})
}

// RunShow resolves one entry by name or id and writes its overlay content.
func RunShow(ctx context.Context, options *ShowOptions) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	query := strings.ToLower(strings.TrimSpace(options.Query))
	if query == "" {
		return fmt.Errorf("name or id is required")
	}

	detail, err := options.Client.FetchDetail(ctx, query)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", query, err)
	}

	overlay := catalog.NewOverlay(options.Client)
	if err := overlay.OpenDetail(ctx, detail); err != nil {
		return err
	}
	state := overlay.Snapshot()

	tabs := catalog.Tabs
	var only *catalog.Tab
	if tab, ok := options.Tab.Get(); ok {
		tabs = []catalog.Tab{tab}
		only = &tab
	}

	output := newDetailOutput(state, only)

	return write(options.Out, options.Format, output, func(w io.Writer) error {
		sections := []string{RenderProfile(output.Profile)}
		for _, tab := range tabs {
			sections = append(sections, style.Bold(tab.Title())+"\n"+RenderTab(state.Detail, tab))
		}

		_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
		return err
	})
}
