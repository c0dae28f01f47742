package editor

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	DocumentID          string `json:"document_id"`
	ActiveTool          string `json:"active_tool,omitempty"`
	PendingInstructions int    `json:"pending_instructions"`
	Dirty               bool   `json:"dirty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		DocumentID:          s.doc.ID,
		ActiveTool:          string(s.tool),
		PendingInstructions: len(s.instructions),
		Dirty:               len(s.instructions) > 0,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "annotation-session"
}

// GatewayState exposes internal state for observability.
type GatewayState struct {
	Status      GatewayStatus `json:"status"`
	LastOutcome GatewayStatus `json:"last_outcome,omitempty"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := GatewayState{Status: g.status}
	if g.lastOutcome != "" {
		out.LastOutcome = g.lastOutcome
	}
	return out
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "processing-gateway"
}

// PreviewState exposes internal state for observability.
type PreviewState struct {
	DocumentID string        `json:"document_id"`
	Page       int           `json:"page"`
	PageCount  int           `json:"page_count"`
	Zoom       float64       `json:"zoom"`
	Status     PreviewStatus `json:"status"`
	Generation uint64        `json:"generation"`
}

// State implements introspection.Introspectable.
func (p *PagePreview) State() any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PreviewState{
		DocumentID: p.docID,
		Page:       p.page,
		PageCount:  p.pageCount,
		Zoom:       p.zoom,
		Status:     p.status,
		Generation: p.gen,
	}
}

// ComponentType implements introspection.Component.
func (p *PagePreview) ComponentType() string {
	return "page-preview"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
var _ introspection.Introspectable = (*Gateway)(nil)
var _ introspection.Component = (*Gateway)(nil)
var _ introspection.Introspectable = (*PagePreview)(nil)
var _ introspection.Component = (*PagePreview)(nil)
