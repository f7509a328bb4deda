// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Upstream API - these keys locate the catalog service.
const (
	APIBaseURL = "api.base_url"
)

// Networking - these keys tune the shared HTTP client.
const (
	NetworkTimeout = "network.timeout"
)

// Catalog browsing - these keys define how pages are presented.
const (
	CatalogDensity   = "catalog.density"
	CatalogStartPage = "catalog.start_page"
)

// Detail cache - these keys control the optional per-entry overlay cache.
const (
	CacheDetails  = "cache.details"
	CacheLifetime = "cache.lifetime"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
