// Package network provides the shared HTTP client used for upstream API communication.
package network

import (
	"net/http"
	"time"

	"github.com/pokedex-cli/pokedex/key"
	"github.com/spf13/viper"
)

// Client is the shared HTTP client. A grid page load fans out a dozen detail requests
// to one host, so the per-host limits are raised above the transport defaults.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Configure applies the configured timeout to Client. It must run after config.Setup.
func Configure() {
	Client.Timeout = time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
