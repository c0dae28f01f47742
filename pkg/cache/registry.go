// Package cache tracks the freshness of backend representations on the
// client side. The registry is the invalidation capability the processing
// gateway depends on; the store layers a stale-aware read-through cache for
// document and listing lookups on top of it.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	generation uint64
	storedAt   time.Time
	valid      bool
}

// Registry is an in-memory invalidation registry with per-key generations.
// Invalidation is a single atomic flag-set per key; consumers re-fetch
// independently when they observe staleness, so no further coordination is
// needed.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Stamp records that a fresh representation for key was stored just now.
func (r *Registry) Stamp(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[key]
	if e == nil {
		e = &entry{}
		r.entries[key] = e
	}
	e.storedAt = time.Now()
	e.valid = true
}

// Invalidate marks the given keys stale and bumps their generation.
func (r *Registry) Invalidate(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range keys {
		e := r.entries[key]
		if e == nil {
			e = &entry{}
			r.entries[key] = e
		}
		e.generation++
		e.valid = false
	}
}

// InvalidatePrefix marks every known key sharing the prefix stale.
func (r *Registry) InvalidatePrefix(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, e := range r.entries {
		if strings.HasPrefix(key, prefix) {
			e.generation++
			e.valid = false
		}
	}
}

// Fresh reports whether key holds a representation stored within ttl and
// not invalidated since.
func (r *Registry) Fresh(key string, ttl time.Duration) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok || !e.valid {
		return false
	}
	return time.Since(e.storedAt) < ttl
}

// Generation returns the invalidation generation for key, zero when the key
// was never invalidated.
func (r *Registry) Generation(key string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.entries[key]; ok {
		return e.generation
	}
	return 0
}

// Len returns the number of tracked keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
