package core

import (
	"context"
	"fmt"
	"io"
)

// API defines the contract with the backend document service.
// The PDF mutation engine behind ProcessDocument is opaque to this core;
// adhering to this interface keeps the state machines independent of the
// transport (HTTP, in-memory fake, etc).
type API interface {
	// ListDocuments returns one page of the document listing.
	// A limit or offset of zero is omitted from the query.
	ListDocuments(ctx context.Context, limit, offset int) (DocumentList, error)

	// GetDocument retrieves a document by its ID.
	GetDocument(ctx context.Context, id string) (Document, error)

	// UploadDocument stores a new PDF and returns the created document.
	UploadDocument(ctx context.Context, filename string, r io.Reader) (UploadResult, error)

	// ProcessDocument applies an annotation batch atomically, in order.
	ProcessDocument(ctx context.Context, id string, req ProcessRequest) (ProcessResult, error)

	// FetchPreview returns the raw raster bytes of one page. The freshness
	// token is appended to the request to defeat intermediate caching.
	FetchPreview(ctx context.Context, id string, page int, freshness int64) ([]byte, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error
}

// Invalidator marks cached backend representations stale. It is the only
// resource shared across components: the processing gateway sets flags on
// success, and consumers re-fetch independently when they observe them.
type Invalidator interface {
	// Invalidate marks the given keys stale.
	Invalidate(keys ...string)

	// InvalidatePrefix marks every key sharing the prefix stale.
	InvalidatePrefix(prefix string)
}

// Notifier surfaces transient user-facing notices. Implementations decide
// the medium (log line, terminal, toast); the core only distinguishes
// success from failure.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// PageSource reports the page currently shown to the user. Instructions are
// stamped with this page at add time, not with any page recorded by the
// tool itself.
type PageSource interface {
	Page() int
}

// Cache key conventions. Document keys and list keys are invalidated
// together after a successful submission.

// DocumentCacheKey is the cache key for a single document representation.
func DocumentCacheKey(id string) string {
	return "documents/" + id
}

// DocumentListPrefix covers every cached listing query.
const DocumentListPrefix = "documents?"

// ListCacheKey is the cache key for one page of the document listing.
func ListCacheKey(limit, offset int) string {
	return fmt.Sprintf("%slimit=%d&offset=%d", DocumentListPrefix, limit, offset)
}
