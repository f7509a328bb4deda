package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/network"
	"github.com/pokedex-cli/pokedex/util"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client issues requests against one base URL. Calls share no mutable state, so a
// Client may be used from many goroutines at once.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at another deployment of the API.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New returns a client for DefaultBaseURL using network.Client unless overridden.
func New(options ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    network.Client,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// BaseURL returns the endpoint requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ID formats a numeric identifier for the nameOrID parameters.
func ID(n int) string {
	return strconv.Itoa(n)
}

// FetchReferenceList returns one page of references plus the collection size.
func (c *Client) FetchReferenceList(ctx context.Context, limit, offset int) (*ReferenceList, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var list ReferenceList
	if err := c.get(ctx, "/pokemon?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FetchDetail returns the full record of an entry addressed by name or numeric id.
func (c *Client) FetchDetail(ctx context.Context, nameOrID string) (*Detail, error) {
	var detail Detail
	if err := c.get(ctx, "/pokemon/"+url.PathEscape(nameOrID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FetchSpecies returns the descriptive record of an entry addressed by name or numeric id.
func (c *Client) FetchSpecies(ctx context.Context, nameOrID string) (*Species, error) {
	var species Species
	if err := c.get(ctx, "/pokemon-species/"+url.PathEscape(nameOrID), &species); err != nil {
		return nil, err
	}
	return &species, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Debugf("GET %s", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("%s returned status %d", endpoint, resp.StatusCode)
		return &FetchError{Status: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &ParseError{URL: endpoint, Err: err}
	}

	if err := validate.Struct(target); err != nil {
		return &ParseError{URL: endpoint, Err: err}
	}

	return nil
}
