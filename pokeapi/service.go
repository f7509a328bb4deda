package pokeapi

import (
	"context"
	"time"

	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/spf13/viper"
)

// Service is what the front ends talk to: the three fetches plus cache invalidation.
type Service interface {
	FetchReferenceList(ctx context.Context, limit, offset int) (*ReferenceList, error)
	FetchDetail(ctx context.Context, nameOrID string) (*Detail, error)
	FetchSpecies(ctx context.Context, nameOrID string) (*Species, error)
	Invalidate(nameOrID string) error
}

// Invalidate is a no-op; the plain client keeps nothing between calls.
func (c *Client) Invalidate(string) error {
	return nil
}

// FromConfig builds the service described by api.base_url, cache.details and cache.lifetime.
func FromConfig() Service {
	client := New(WithBaseURL(viper.GetString(key.APIBaseURL)))
	if !viper.GetBool(key.CacheDetails) {
		return client
	}

	lifetime := time.Duration(viper.GetInt(key.CacheLifetime)) * time.Hour
	return NewCachedClient(client, where.Cache(), lifetime)
}

// Uncached returns the client behind a CachedClient, or service itself. Page loads
// use it so that only entries opened in the overlay are cached.
func Uncached(service Service) Service {
	if cached, ok := service.(*CachedClient); ok {
		return cached.Client
	}
	return service
}
