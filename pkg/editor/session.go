package editor

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// ToolKind names an annotation tool. Tool identity and the instruction kind
// it produces are the same thing.
type ToolKind = core.InstructionKind

// Session is the annotation state machine for one open document view. It
// tracks the selected tool, owns the per-tool form state for the duration of
// tool activity, and accumulates the pending instruction batch in insertion
// order. A session is discarded on navigation away or after a successful save.
type Session struct {
	doc     core.Document
	pages   core.PageSource
	gateway *Gateway
	logger  *slog.Logger

	mu           sync.Mutex
	tool         ToolKind // empty when idle
	instructions []core.EditInstruction

	text    TextTool
	image   ImageTool
	drawing DrawingTool
}

// NewSession opens a session for doc. pages supplies the page shown to the
// user at add time; when nil, instructions stay on page 1.
func NewSession(doc core.Document, pages core.PageSource, gateway *Gateway, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		doc:     doc,
		pages:   pages,
		gateway: gateway,
		logger:  logger,
		text:    NewTextTool(),
		image:   NewImageTool(),
		drawing: NewDrawingTool(),
	}
}

// Document returns the document this session annotates.
func (s *Session) Document() core.Document {
	return s.doc
}

// Gateway returns the processing gateway backing this session, for callers
// that observe the submission lifecycle.
func (s *Session) Gateway() *Gateway {
	return s.gateway
}

// ActiveTool returns the selected tool, or "" when the session is idle.
func (s *Session) ActiveTool() ToolKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// SelectTool activates a tool, resetting its form to defaults. Selecting the
// already-active tool deactivates it (toggle semantics).
func (s *Session) SelectTool(t ToolKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tool == t {
		s.resetToolLocked(t)
		s.tool = ""
		s.logger.Debug("tool deactivated", "tool", t)
		return
	}
	s.resetToolLocked(t)
	s.tool = t
	s.logger.Debug("tool selected", "tool", t)
}

// CancelTool deactivates the current tool and discards its form state
// without side effects.
func (s *Session) CancelTool() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tool == "" {
		return
	}
	s.resetToolLocked(s.tool)
	s.tool = ""
}

// Text returns the text tool form. Mutate its fields, then call SubmitTool.
func (s *Session) Text() *TextTool { return &s.text }

// Image returns the image tool form.
func (s *Session) Image() *ImageTool { return &s.image }

// Drawing returns the drawing tool form.
func (s *Session) Drawing() *DrawingTool { return &s.drawing }

// SubmitTool runs the active tool's builder and appends the emitted
// instruction. Builder rejections (blank text, no file) leave the form
// intact for correction and the tool active.
func (s *Session) SubmitTool(ctx context.Context) error {
	s.mu.Lock()
	tool := s.tool
	s.mu.Unlock()

	var (
		inst core.EditInstruction
		err  error
	)
	switch tool {
	case core.KindText:
		inst, err = s.text.Submit()
	case core.KindImage:
		inst, err = s.image.Submit(ctx)
	case core.KindDrawing:
		inst, err = s.drawing.Submit()
	default:
		return core.ErrToolInactive
	}
	if err != nil {
		return err
	}
	return s.Add(inst)
}

// Add appends a candidate instruction to the batch. It is valid only while a
// tool is active. The candidate is stamped with the page currently shown by
// the preview before it is appended, and the tool deactivates afterwards.
func (s *Session) Add(inst core.EditInstruction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tool == "" {
		return core.ErrToolInactive
	}
	if s.pages != nil {
		inst.Page = s.pages.Page()
	}
	s.instructions = append(s.instructions, inst)
	s.tool = ""
	s.logger.Debug("instruction added",
		"type", inst.Type,
		"page", inst.Page,
		"pending", len(s.instructions),
	)
	return nil
}

// Dirty reports whether unsaved instructions are pending.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instructions) > 0
}

// Instructions returns a copy of the pending batch in insertion order.
func (s *Session) Instructions() []core.EditInstruction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.instructions)
}

// RequestDiscard clears the pending batch, guarded by confirm when the
// session is dirty. The return value reports whether the caller may leave
// the view: a clean session is a no-op that signals "leave"; a dirty session
// stays put whether or not the user confirmed the discard.
func (s *Session) RequestDiscard(confirm func() bool) (leave bool) {
	s.mu.Lock()
	dirty := len(s.instructions) > 0
	s.mu.Unlock()

	if !dirty {
		return true
	}
	if confirm == nil || !confirm() {
		return false
	}

	s.mu.Lock()
	s.instructions = nil
	if s.tool != "" {
		s.resetToolLocked(s.tool)
		s.tool = ""
	}
	s.mu.Unlock()
	s.logger.Debug("pending instructions discarded")
	return false
}

// RequestSave validates the pending batch and delegates a snapshot of it to
// the gateway. It is a no-op when the session is clean or a submission is
// already pending. On success the accumulator clears and the tool resets;
// on failure the batch is kept so the user can retry or edit.
func (s *Session) RequestSave(ctx context.Context) error {
	s.mu.Lock()
	if len(s.instructions) == 0 {
		s.mu.Unlock()
		return nil
	}
	if s.gateway.Busy() {
		s.mu.Unlock()
		return nil
	}
	batch := slices.Clone(s.instructions)
	s.mu.Unlock()

	if errs := core.ValidateRequest(core.ProcessRequest{Instructions: batch}); len(errs) > 0 {
		return core.ValidationError(errs)
	}

	_, err := s.gateway.Submit(ctx, s.doc.ID, batch)
	if err != nil {
		if errors.Is(err, core.ErrBusy) {
			// Raced with another save; treated the same as the guard above.
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.instructions = nil
	if s.tool != "" {
		s.resetToolLocked(s.tool)
		s.tool = ""
	}
	s.mu.Unlock()
	return nil
}

func (s *Session) resetToolLocked(t ToolKind) {
	switch t {
	case core.KindText:
		s.text.Reset()
	case core.KindImage:
		s.image.Reset()
	case core.KindDrawing:
		s.drawing.Reset()
	}
}
