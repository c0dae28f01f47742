package cache

import (
	"context"
	"sync"
	"time"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// Default stale times for cached lookups.
const (
	DefaultDocumentStale = time.Minute
	DefaultListStale     = 30 * time.Second
)

// Store is a stale-aware read-through cache for documents and listing
// pages. A cached value is served only while the registry says its key is
// fresh; after an invalidation (or past the stale time) the next lookup
// goes back to the backend.
type Store struct {
	api       core.API
	registry  *Registry
	docStale  time.Duration
	listStale time.Duration

	mu    sync.RWMutex
	docs  map[string]core.Document
	lists map[string]core.DocumentList
}

// NewStore wires a store over api and registry. Zero stale times fall back
// to the defaults.
func NewStore(api core.API, registry *Registry, docStale, listStale time.Duration) *Store {
	if docStale <= 0 {
		docStale = DefaultDocumentStale
	}
	if listStale <= 0 {
		listStale = DefaultListStale
	}
	return &Store{
		api:       api,
		registry:  registry,
		docStale:  docStale,
		listStale: listStale,
		docs:      make(map[string]core.Document),
		lists:     make(map[string]core.DocumentList),
	}
}

// Document returns the cached document when fresh, fetching otherwise.
func (s *Store) Document(ctx context.Context, id string) (core.Document, error) {
	key := core.DocumentCacheKey(id)
	if s.registry.Fresh(key, s.docStale) {
		s.mu.RLock()
		doc, ok := s.docs[id]
		s.mu.RUnlock()
		if ok {
			return doc, nil
		}
	}

	doc, err := s.api.GetDocument(ctx, id)
	if err != nil {
		return core.Document{}, err
	}

	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()
	s.registry.Stamp(key)
	return doc, nil
}

// Documents returns the cached listing page when fresh, fetching otherwise.
func (s *Store) Documents(ctx context.Context, limit, offset int) (core.DocumentList, error) {
	key := core.ListCacheKey(limit, offset)
	if s.registry.Fresh(key, s.listStale) {
		s.mu.RLock()
		list, ok := s.lists[key]
		s.mu.RUnlock()
		if ok {
			return list, nil
		}
	}

	list, err := s.api.ListDocuments(ctx, limit, offset)
	if err != nil {
		return core.DocumentList{}, err
	}

	s.mu.Lock()
	s.lists[key] = list
	s.mu.Unlock()
	s.registry.Stamp(key)
	return list, nil
}
