// Package platform is the composition root: it wires the REST adapter, the
// cache layer and the editor state machines behind functional options.
package platform

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caarlosandree/editor-pdf/pkg/cache"
	"github.com/caarlosandree/editor-pdf/pkg/client"
	"github.com/caarlosandree/editor-pdf/pkg/core"
	"github.com/caarlosandree/editor-pdf/pkg/editor"
)

// Service bundles the wired collaborators for one backend.
type Service struct {
	API      core.API
	Registry *cache.Registry
	Store    *cache.Store
	Notifier core.Notifier
	Logger   *slog.Logger
}

// New wires a service against the backend at baseURL.
func New(baseURL string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	api := o.api
	if api == nil {
		if baseURL == "" {
			return nil, errors.New("backend base URL cannot be empty")
		}
		api = client.New(baseURL, o.httpClient, o.logger)
	}

	registry := o.registry
	if registry == nil {
		registry = cache.NewRegistry()
	}

	notifier := o.notifier
	if notifier == nil {
		notifier = editor.NewLogNotifier(o.logger)
	}

	return &Service{
		API:      api,
		Registry: registry,
		Store:    cache.NewStore(api, registry, o.docStale, o.listStale),
		Notifier: notifier,
		Logger:   o.logger,
	}, nil
}

// OpenSession loads the document and wires a session plus its preview
// controller for one editor view. The preview doubles as the session's page
// source: instructions are stamped with whatever page it currently shows.
func (s *Service) OpenSession(ctx context.Context, id string) (*editor.Session, *editor.PagePreview, error) {
	doc, err := s.Store.Document(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	preview := editor.NewPagePreview(s.API, doc, s.Logger)
	gateway := editor.NewGateway(s.API, s.Registry, s.Notifier, s.Logger)
	session := editor.NewSession(doc, preview, gateway, s.Logger)
	return session, preview, nil
}
