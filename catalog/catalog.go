// Package catalog holds the state behind the grid and detail views: which page is shown,
// which entries were published for it, and what the open overlay has fetched.
// Renderers read snapshots and call back into the controllers; they never mutate state.
package catalog

import (
	"context"
	"errors"

	"github.com/pokedex-cli/pokedex/pokeapi"
)

// Fetcher is the part of the API client the controllers depend on.
// Both *pokeapi.Client and *pokeapi.CachedClient satisfy it.
type Fetcher interface {
	FetchReferenceList(ctx context.Context, limit, offset int) (*pokeapi.ReferenceList, error)
	FetchDetail(ctx context.Context, nameOrID string) (*pokeapi.Detail, error)
	FetchSpecies(ctx context.Context, nameOrID string) (*pokeapi.Species, error)
}

var (
	// ErrPageOutOfRange is returned for a page below 1 or past the last page.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrSuperseded is returned by a load whose result was discarded because a newer
	// load started (or the overlay closed) before it settled.
	ErrSuperseded = errors.New("superseded by a newer request")
)
