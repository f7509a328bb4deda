package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"
)

// GridState is a copy of everything a renderer needs to draw the grid.
type GridState struct {
	Loading    bool
	Entries    []pokeapi.Entry
	Page       int
	Count      int
	TotalPages int
	Window     []PageItem
	Density    Density
	Selected   mo.Option[pokeapi.Entry]
}

// Grid is the pagination controller. It is safe for concurrent use.
type Grid struct {
	fetcher Fetcher

	mu       sync.Mutex
	seq      uint64
	page     int
	count    int
	loading  bool
	entries  []pokeapi.Entry
	selected mo.Option[pokeapi.Entry]
	density  Density
}

func NewGrid(fetcher Fetcher, density Density) *Grid {
	if density != Compact {
		density = Comfortable
	}

	return &Grid{
		fetcher:  fetcher,
		page:     1,
		density:  density,
		selected: mo.None[pokeapi.Entry](),
	}
}

// LoadPage fetches the references of page, then every detail concurrently, and
// publishes the resulting entries. A single failed detail discards the whole page:
// published entries are left as they were. Only the newest load may publish or
// clear the loading flag; older ones return ErrSuperseded.
func (g *Grid) LoadPage(ctx context.Context, page int) error {
	g.mu.Lock()
	if page < 1 || (g.count > 0 && page > TotalPages(g.count)) {
		g.mu.Unlock()
		return fmt.Errorf("page %d: %w", page, ErrPageOutOfRange)
	}

	g.seq++
	token := g.seq
	g.loading = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		if token == g.seq {
			g.loading = false
		}
	}()

	log.Infof("loading page %d", page)
	list, err := g.fetcher.FetchReferenceList(ctx, PageSize, Offset(page))
	if err != nil {
		return g.failed(token, page, err)
	}

	g.mu.Lock()
	if token == g.seq {
		g.count = list.Count
	}
	g.mu.Unlock()

	if total := TotalPages(list.Count); list.Count > 0 && page > total {
		return fmt.Errorf("page %d of %d: %w", page, total, ErrPageOutOfRange)
	}

	details := make([]*pokeapi.Detail, len(list.Results))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, ref := range list.Results {
		group.Go(func() error {
			detail, err := g.fetcher.FetchDetail(groupCtx, ref.Name)
			if err != nil {
				return err
			}

			details[i] = detail
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return g.failed(token, page, err)
	}

	entries := lo.Map(details, func(d *pokeapi.Detail, _ int) pokeapi.Entry {
		return pokeapi.ToEntry(d)
	})

	g.mu.Lock()
	defer g.mu.Unlock()

	if token != g.seq {
		log.Debugf("discarding stale load of page %d", page)
		return ErrSuperseded
	}

	g.entries = entries
	g.page = page
	return nil
}

// failed reports a load error, or ErrSuperseded when a newer load has started since.
func (g *Grid) failed(token uint64, page int, err error) error {
	g.mu.Lock()
	stale := token != g.seq
	g.mu.Unlock()

	if stale {
		log.Debugf("discarding stale load of page %d: %v", page, err)
		return ErrSuperseded
	}

	log.Errorf("load page %d: %v", page, err)
	return fmt.Errorf("load page %d: %w", page, err)
}

// ChangePage moves to target when it lies within the known page range. It reports
// whether the page changed; the caller is expected to LoadPage afterwards.
func (g *Grid) ChangePage(target int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if target < 1 || target > TotalPages(g.count) {
		return false
	}

	g.page = target
	return true
}

// Page returns the current page.
func (g *Grid) Page() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.page
}

// TotalPages returns the page count implied by the last stored collection size.
func (g *Grid) TotalPages() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return TotalPages(g.count)
}

func (g *Grid) Select(entry pokeapi.Entry) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.selected = mo.Some(entry)
}

func (g *Grid) Selected() mo.Option[pokeapi.Entry] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.selected
}

func (g *Grid) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.selected = mo.None[pokeapi.Entry]()
}

func (g *Grid) Density() Density {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.density
}

// ToggleDensity switches between comfortable and compact cards and returns the new value.
func (g *Grid) ToggleDensity() Density {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.density = g.density.Toggle()
	return g.density
}

// Snapshot copies the current state.
func (g *Grid) Snapshot() GridState {
	g.mu.Lock()
	defer g.mu.Unlock()

	total := TotalPages(g.count)
	return GridState{
		Loading:    g.loading,
		Entries:    append([]pokeapi.Entry(nil), g.entries...),
		Page:       g.page,
		Count:      g.count,
		TotalPages: total,
		Window:     PageWindow(g.page, total),
		Density:    g.density,
		Selected:   g.selected,
	}
}
