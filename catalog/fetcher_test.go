package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pokedex-cli/pokedex/pokeapi"
)

// fakeFetcher serves a collection of count entries named mon-1..mon-count.
type fakeFetcher struct {
	count       int
	failDetail  string
	failSpecies bool

	// gates block a call until closed; keyed by listing offset and by detail identifier.
	listGates   map[int]chan struct{}
	detailGates map[string]chan struct{}

	detailCalls atomic.Int32

	mu      sync.Mutex
	offsets []int
}

func (f *fakeFetcher) FetchReferenceList(_ context.Context, limit, offset int) (*pokeapi.ReferenceList, error) {
	if gate, ok := f.listGates[offset]; ok {
		<-gate
	}

	f.mu.Lock()
	f.offsets = append(f.offsets, offset)
	f.mu.Unlock()

	list := &pokeapi.ReferenceList{Count: f.count}
	for i := offset + 1; i <= min(offset+limit, f.count); i++ {
		list.Results = append(list.Results, pokeapi.NamedReference{
			Name: fmt.Sprintf("mon-%d", i),
			URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i),
		})
	}
	return list, nil
}

func (f *fakeFetcher) FetchDetail(_ context.Context, nameOrID string) (*pokeapi.Detail, error) {
	f.detailCalls.Add(1)
	if gate, ok := f.detailGates[nameOrID]; ok {
		<-gate
	}

	id, err := strconv.Atoi(strings.TrimPrefix(nameOrID, "mon-"))
	if err != nil || nameOrID == f.failDetail || fmt.Sprintf("mon-%d", id) == f.failDetail {
		return nil, &pokeapi.FetchError{Status: 500, URL: "/pokemon/" + nameOrID}
	}

	return &pokeapi.Detail{
		ID:   id,
		Name: fmt.Sprintf("mon-%d", id),
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedReference{Name: "electric"}},
		},
		Stats: []pokeapi.StatEntry{
			{BaseStat: id, Stat: pokeapi.NamedReference{Name: pokeapi.StatHP}},
		},
	}, nil
}

func (f *fakeFetcher) FetchSpecies(_ context.Context, nameOrID string) (*pokeapi.Species, error) {
	if f.failSpecies {
		return nil, &pokeapi.FetchError{Status: 404, URL: "/pokemon-species/" + nameOrID}
	}

	return &pokeapi.Species{
		Genera: []pokeapi.Genus{{Genus: "Test Pokémon", Language: pokeapi.NamedReference{Name: "en"}}},
	}, nil
}

func (f *fakeFetcher) lastOffset() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.offsets[len(f.offsets)-1]
}
