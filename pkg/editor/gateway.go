package editor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// GatewayStatus tracks the submission lifecycle.
type GatewayStatus string

const (
	GatewayIdle      GatewayStatus = "idle"
	GatewayPending   GatewayStatus = "pending"
	GatewaySucceeded GatewayStatus = "succeeded"
	GatewayFailed    GatewayStatus = "failed"
)

// Fallback notices when the backend omits its own message.
const (
	DefaultSuccessNotice = "Document processed successfully"
	DefaultFailureNotice = "Failed to process document"
)

// Gateway owns the submission lifecycle for annotation batches:
// Idle -> Pending -> {Succeeded, Failed} -> Idle. At most one submission is
// pending at a time; a concurrent Submit is rejected with ErrBusy and never
// touches the network. There is no automatic retry and no cancellation; a
// pending submission runs to completion or failure.
type Gateway struct {
	api    core.API
	cache  core.Invalidator
	notify core.Notifier
	logger *slog.Logger

	mu          sync.Mutex
	status      GatewayStatus
	lastOutcome GatewayStatus
	onChange    func(GatewayStatus)
}

// NewGateway wires a gateway. cache and notify may be nil when the caller
// does not track those concerns.
func NewGateway(api core.API, cache core.Invalidator, notify core.Notifier, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		api:    api,
		cache:  cache,
		notify: notify,
		logger: logger,
		status: GatewayIdle,
	}
}

// Status reports the current lifecycle state.
func (g *Gateway) Status() GatewayStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// LastOutcome reports how the most recent submission ended, GatewayIdle when
// none has run yet.
func (g *Gateway) LastOutcome() GatewayStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastOutcome
}

// Busy reports whether a submission is currently pending.
func (g *Gateway) Busy() bool {
	return g.Status() == GatewayPending
}

// OnTransition registers a callback invoked on every lifecycle transition.
func (g *Gateway) OnTransition(fn func(GatewayStatus)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = fn
}

// Submit sends the batch verbatim, in insertion order, to the mutation
// endpoint. On success the cached representations for this document and for
// the listing queries are invalidated and a success notice is surfaced; on
// failure the caller keeps the batch for retry and an error notice is
// surfaced. A Submit while another is pending returns ErrBusy as a no-op.
func (g *Gateway) Submit(ctx context.Context, docID string, batch []core.EditInstruction) (core.ProcessResult, error) {
	// The pending check and the move to Pending happen under one lock hold;
	// two racing Submits must never both pass the guard.
	g.mu.Lock()
	if g.status == GatewayPending {
		g.mu.Unlock()
		g.logger.Debug("submit ignored, another submission is pending", "document", docID)
		return core.ProcessResult{}, core.ErrBusy
	}
	if len(batch) == 0 {
		g.mu.Unlock()
		return core.ProcessResult{}, core.ErrNoInstructions
	}
	g.status = GatewayPending
	fn := g.onChange
	g.mu.Unlock()
	if fn != nil {
		fn(GatewayPending)
	}

	res, err := g.api.ProcessDocument(ctx, docID, core.ProcessRequest{Instructions: batch})
	if err != nil {
		g.transition(GatewayFailed)
		g.logger.Error("process failed", "document", docID, "error", err)
		if g.notify != nil {
			msg := err.Error()
			if msg == "" {
				msg = DefaultFailureNotice
			}
			g.notify.Error(msg)
		}
		g.transition(GatewayIdle)
		return core.ProcessResult{}, err
	}

	g.transition(GatewaySucceeded)
	if g.cache != nil {
		g.cache.Invalidate(core.DocumentCacheKey(docID))
		g.cache.InvalidatePrefix(core.DocumentListPrefix)
	}
	if g.notify != nil {
		msg := res.Message
		if msg == "" {
			msg = DefaultSuccessNotice
		}
		g.notify.Success(msg)
	}
	g.logger.Debug("process succeeded",
		"document", docID,
		"instructions", len(batch),
		"version", res.Document.Version,
	)
	g.transition(GatewayIdle)
	return res, nil
}

func (g *Gateway) transition(s GatewayStatus) {
	g.mu.Lock()
	g.status = s
	if s == GatewaySucceeded || s == GatewayFailed {
		g.lastOutcome = s
	}
	fn := g.onChange
	g.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}
