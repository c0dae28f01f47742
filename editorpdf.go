package editorpdf

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlosandree/editor-pdf/internal/platform"
	"github.com/caarlosandree/editor-pdf/pkg/cache"
	"github.com/caarlosandree/editor-pdf/pkg/core"
	"github.com/caarlosandree/editor-pdf/pkg/editor"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Document is a public alias for the backend document entity.
type Document = core.Document

// EditInstruction is a public alias for one annotation operation.
type EditInstruction = core.EditInstruction

// ProcessRequest is a public alias for a submission batch.
type ProcessRequest = core.ProcessRequest

// FieldError is a public alias for a field-path-tagged validation message.
type FieldError = core.FieldError

// Session is a public alias for the annotation session state machine.
type Session = editor.Session

// PagePreview is a public alias for the page preview controller.
type PagePreview = editor.PagePreview

// Service is a public alias for the wired service bundle.
type Service = platform.Service

// Tool kinds selectable on a session.
const (
	ToolText    = core.KindText
	ToolImage   = core.KindImage
	ToolDrawing = core.KindDrawing
)

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithHTTPClient replaces the HTTP client used by the REST adapter.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithAPI injects a custom backend adapter (e.g. an in-memory fake).
func WithAPI(api core.API) Option {
	return platform.WithAPI(api)
}

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(n core.Notifier) Option {
	return platform.WithNotifier(n)
}

// WithRegistry injects a shared invalidation registry.
func WithRegistry(r *cache.Registry) Option {
	return platform.WithRegistry(r)
}

// WithStaleTimes overrides the document and listing stale times.
func WithStaleTimes(doc, list time.Duration) Option {
	return platform.WithStaleTimes(doc, list)
}

// --- Factory ---

// New wires a service against the backend at baseURL.
func New(baseURL string, opts ...Option) (*Service, error) {
	return platform.New(baseURL, opts...)
}

// ValidateRequest schema-checks a batch before submission; an empty result
// means the batch is acceptable.
func ValidateRequest(req ProcessRequest) []FieldError {
	return core.ValidateRequest(req)
}
