package pokeapi

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// cacheData is the on-disk layout of one cache file.
type cacheData[T any] struct {
	Entries map[string]T `json:"entries"`
}

// cacher is a mutex-guarded map persisted through gache.
type cacher[T any] struct {
	internal *gache.Cache[*cacheData[T]]
	mu       sync.RWMutex
}

func newCacher[T any](path string, lifetime time.Duration) *cacher[T] {
	return &cacher[T]{
		internal: gache.New[*cacheData[T]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *cacher[T]) Get(key string) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Entries[key]; ok {
		return mo.Some(value)
	}
	return mo.None[T]()
}

// Set stores value under every key in one write.
func (c *cacher[T]) Set(value T, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData[T]{Entries: make(map[string]T)}
	}
	for _, key := range keys {
		data.Entries[key] = value
	}
	return c.internal.Set(data)
}

func (c *cacher[T]) Delete(keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		return nil
	}
	for _, key := range keys {
		delete(data.Entries, key)
	}
	return c.internal.Set(data)
}

// CachedClient serves details and species from a file cache and falls back to the
// wrapped Client. A detail is stored under its numeric id and its name, so both ways
// of addressing an entry share one copy. Reference lists are never cached.
type CachedClient struct {
	*Client

	details *cacher[*Detail]
	species *cacher[*Species]
}

// NewCachedClient stores cache files under dir. Entries older than lifetime are refetched.
func NewCachedClient(client *Client, dir string, lifetime time.Duration) *CachedClient {
	return &CachedClient{
		Client:  client,
		details: newCacher[*Detail](filepath.Join(dir, "pokeapi_details.json"), lifetime),
		species: newCacher[*Species](filepath.Join(dir, "pokeapi_species.json"), lifetime),
	}
}

func cacheKey(nameOrID string) string {
	return strings.ToLower(strings.TrimSpace(nameOrID))
}

// aliases lists every key detail may be looked up by, starting with requested.
func aliases(requested string, detail *Detail) []string {
	keys := []string{requested}
	if detail == nil {
		return keys
	}
	return lo.Uniq(append(keys, ID(detail.ID), cacheKey(detail.Name)))
}

func (c *CachedClient) FetchDetail(ctx context.Context, nameOrID string) (*Detail, error) {
	k := cacheKey(nameOrID)
	if detail, ok := c.details.Get(k).Get(); ok {
		log.Debugf("detail %s served from cache", k)
		return detail, nil
	}

	detail, err := c.Client.FetchDetail(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	if err := c.details.Set(detail, aliases(k, detail)...); err != nil {
		log.Warnf("cache detail %s: %v", k, err)
	}
	return detail, nil
}

func (c *CachedClient) FetchSpecies(ctx context.Context, nameOrID string) (*Species, error) {
	k := cacheKey(nameOrID)
	if species, ok := c.species.Get(k).Get(); ok {
		log.Debugf("species %s served from cache", k)
		return species, nil
	}

	species, err := c.Client.FetchSpecies(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	keys := []string{k}
	if detail, ok := c.details.Get(k).Get(); ok {
		keys = aliases(k, detail)
	}

	if err := c.species.Set(species, keys...); err != nil {
		log.Warnf("cache species %s: %v", k, err)
	}
	return species, nil
}

// Invalidate drops the cached detail and species of one entry under all of its keys.
func (c *CachedClient) Invalidate(nameOrID string) error {
	k := cacheKey(nameOrID)
	keys := aliases(k, c.details.Get(k).OrEmpty())

	if err := c.details.Delete(keys...); err != nil {
		return err
	}
	return c.species.Delete(keys...)
}
