package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlosandree/editor-pdf/pkg/cache"
	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// options holds the internal configuration for the editor service.
type options struct {
	api        core.API
	httpClient *http.Client
	logger     *slog.Logger
	notifier   core.Notifier
	registry   *cache.Registry
	docStale   time.Duration
	listStale  time.Duration
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		docStale:  cache.DefaultDocumentStale,
		listStale: cache.DefaultListStale,
	}
}

// WithLogger sets the logger for every component. Without it, components
// stay silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client used by the REST adapter.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithAPI injects a custom backend adapter (e.g. an in-memory fake for
// tests). If provided, the HTTP client and base URL are ignored.
func WithAPI(api core.API) Option {
	return func(o *options) {
		o.api = api
	}
}

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(n core.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithRegistry injects a shared invalidation registry, useful when several
// services must observe the same staleness flags.
func WithRegistry(r *cache.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithStaleTimes overrides how long cached document and listing lookups are
// served without re-fetching. Zero keeps the default for that kind.
func WithStaleTimes(doc, list time.Duration) Option {
	return func(o *options) {
		if doc > 0 {
			o.docStale = doc
		}
		if list > 0 {
			o.listStale = list
		}
	}
}
