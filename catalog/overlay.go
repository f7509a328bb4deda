package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"golang.org/x/sync/errgroup"
)

// OverlayState is a copy of the overlay for renderers. Detail and Species are nil
// until both fetches of the newest open have succeeded.
type OverlayState struct {
	Open    bool
	Loading bool
	Entry   pokeapi.Entry
	Detail  *pokeapi.Detail
	Species *pokeapi.Species
	Tab     Tab
}

// Loaded reports whether the body can be drawn.
func (s OverlayState) Loaded() bool {
	return s.Open && s.Detail != nil && s.Species != nil
}

// Overlay is the detail-overlay controller. It is safe for concurrent use.
type Overlay struct {
	fetcher Fetcher

	mu      sync.Mutex
	seq     uint64
	open    bool
	loading bool
	entry   pokeapi.Entry
	detail  *pokeapi.Detail
	species *pokeapi.Species
	tab     Tab
}

func NewOverlay(fetcher Fetcher) *Overlay {
	return &Overlay{fetcher: fetcher}
}

// Open shows entry on the stats tab and fetches its detail and species together.
// Anything fetched for a previous entry is dropped first.
func (o *Overlay) Open(ctx context.Context, entry pokeapi.Entry) error {
	o.mu.Lock()
	o.entry = entry
	o.tab = TabStats
	token := o.begin()
	o.mu.Unlock()

	return o.fetch(ctx, token, entry, nil)
}

// OpenDetail is Open for a detail the caller already holds. Only the species is fetched.
func (o *Overlay) OpenDetail(ctx context.Context, detail *pokeapi.Detail) error {
	entry := pokeapi.ToEntry(detail)

	o.mu.Lock()
	o.entry = entry
	o.tab = TabStats
	token := o.begin()
	o.mu.Unlock()

	return o.fetch(ctx, token, entry, detail)
}

// Reload fetches the open entry again, keeping the active tab.
func (o *Overlay) Reload(ctx context.Context) error {
	o.mu.Lock()
	if !o.open {
		o.mu.Unlock()
		return nil
	}
	entry := o.entry
	token := o.begin()
	o.mu.Unlock()

	return o.fetch(ctx, token, entry, nil)
}

// begin resets the fetched state and takes a new token. Callers hold mu.
func (o *Overlay) begin() uint64 {
	o.seq++
	o.open = true
	o.loading = true
	o.detail = nil
	o.species = nil
	return o.seq
}

// fetch loads the species of entry, and its detail unless known is set.
func (o *Overlay) fetch(ctx context.Context, token uint64, entry pokeapi.Entry, known *pokeapi.Detail) error {
	id := pokeapi.ID(entry.ID)

	var (
		detail  = known
		species *pokeapi.Species
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if known == nil {
		group.Go(func() (err error) {
			detail, err = o.fetcher.FetchDetail(groupCtx, id)
			return err
		})
	}
	group.Go(func() (err error) {
		species, err = o.fetcher.FetchSpecies(groupCtx, id)
		return err
	})
	err := group.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.seq {
		log.Debugf("discarding overlay result for %s", entry.Name)
		return ErrSuperseded
	}

	o.loading = false
	if err != nil {
		log.Errorf("open %s: %v", entry.Name, err)
		return fmt.Errorf("open %s: %w", entry.Name, err)
	}

	o.detail = detail
	o.species = species
	return nil
}

// Close discards everything fetched for the open entry. Late results are dropped.
func (o *Overlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.open = false
	o.loading = false
	o.entry = pokeapi.Entry{}
	o.detail = nil
	o.species = nil
	o.tab = TabStats
}

func (o *Overlay) SetTab(tab Tab) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tab = tab
}

func (o *Overlay) NextTab() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tab = o.tab.Next()
}

func (o *Overlay) PrevTab() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tab = o.tab.Prev()
}

func (o *Overlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.open
}

func (o *Overlay) Snapshot() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return OverlayState{
		Open:    o.open,
		Loading: o.loading,
		Entry:   o.entry,
		Detail:  o.detail,
		Species: o.species,
		Tab:     o.tab,
	}
}
