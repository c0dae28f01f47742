package editor

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// Zoom bounds for the preview transform. Zoom is purely presentational and
// never triggers a reload.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.25
	DefaultZoom = 1.0
)

// PreviewStatus is the observable state of one page view.
type PreviewStatus string

const (
	PreviewLoading PreviewStatus = "loading"
	PreviewLoaded  PreviewStatus = "loaded"
	PreviewFailed  PreviewStatus = "failed"
)

// PreviewSnapshot is an immutable view of the controller state.
type PreviewSnapshot struct {
	Page        int
	PageCount   int
	Zoom        float64
	Status      PreviewStatus
	Image       []byte
	ImageWidth  int
	ImageHeight int
	Err         string
}

// PagePreview drives the raster preview of one document: current page
// (clamped to [1, PageCount]), zoom factor and the asynchronously loading
// page image. Fetches are never aborted; instead each one is stamped with a
// monotonically increasing generation at issue time, and a response is
// applied only when its generation is still the latest for the page on
// display. An older in-flight response can therefore never overwrite a
// newer page's image (last-request-wins).
type PagePreview struct {
	api    core.API
	logger *slog.Logger

	mu        sync.Mutex
	docID     string
	pageCount int
	page      int
	zoom      float64
	gen       uint64
	status    PreviewStatus
	image     []byte
	imgW      int
	imgH      int
	errMsg    string
	onChange  func(PreviewSnapshot)
}

// NewPagePreview creates a controller on page 1 at default zoom. Nothing is
// fetched until Load is called.
func NewPagePreview(api core.API, doc core.Document, logger *slog.Logger) *PagePreview {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PagePreview{
		api:       api,
		logger:    logger,
		docID:     doc.ID,
		pageCount: doc.PageCount,
		page:      1,
		zoom:      DefaultZoom,
		status:    PreviewLoading,
	}
}

// Page implements core.PageSource: the page currently on display.
func (p *PagePreview) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// PageCount returns the number of pages in the document.
func (p *PagePreview) PageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageCount
}

// CanPrevious reports whether a previous page exists. Surfaced as a disabled
// control at the boundary.
func (p *PagePreview) CanPrevious() bool {
	return p.Page() > 1
}

// CanNext reports whether a next page exists.
func (p *PagePreview) CanNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page < p.pageCount
}

// PreviousPage moves one page back and reloads; a no-op at the first page.
func (p *PagePreview) PreviousPage(ctx context.Context) {
	p.SetPage(ctx, p.Page()-1)
}

// NextPage advances one page and reloads; a no-op at the last page.
func (p *PagePreview) NextPage(ctx context.Context) {
	p.SetPage(ctx, p.Page()+1)
}

// SetPage jumps to page n, clamped to [1, PageCount], and reloads when the
// page actually changed.
func (p *PagePreview) SetPage(ctx context.Context, n int) {
	p.mu.Lock()
	clamped := n
	if clamped < 1 {
		clamped = 1
	}
	if clamped > p.pageCount {
		clamped = p.pageCount
	}
	if clamped == p.page || clamped < 1 {
		p.mu.Unlock()
		return
	}
	p.page = clamped
	p.mu.Unlock()

	p.Load(ctx)
}

// Zoom returns the current zoom factor.
func (p *PagePreview) Zoom() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zoom
}

// ZoomIn raises the zoom by one step, clamped to MaxZoom.
func (p *PagePreview) ZoomIn() {
	p.setZoom(p.Zoom() + ZoomStep)
}

// ZoomOut lowers the zoom by one step, clamped to MinZoom.
func (p *PagePreview) ZoomOut() {
	p.setZoom(p.Zoom() - ZoomStep)
}

// ResetZoom restores the default zoom.
func (p *PagePreview) ResetZoom() {
	p.setZoom(DefaultZoom)
}

func (p *PagePreview) setZoom(z float64) {
	p.mu.Lock()
	p.zoom = clamp(z, MinZoom, MaxZoom)
	p.mu.Unlock()
	p.emit()
}

// OnChange registers a callback invoked after every observable state change.
func (p *PagePreview) OnChange(fn func(PreviewSnapshot)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// Snapshot returns the current observable state.
func (p *PagePreview) Snapshot() PreviewSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *PagePreview) snapshotLocked() PreviewSnapshot {
	return PreviewSnapshot{
		Page:        p.page,
		PageCount:   p.pageCount,
		Zoom:        p.zoom,
		Status:      p.status,
		Image:       p.image,
		ImageWidth:  p.imgW,
		ImageHeight: p.imgH,
		Err:         p.errMsg,
	}
}

// Load issues an asynchronous raster fetch for the current page, stamped
// with a fresh generation and a freshness token that defeats intermediate
// caching. The view enters Loading immediately; the response is applied
// later unless a newer fetch has been issued meanwhile.
func (p *PagePreview) Load(ctx context.Context) {
	p.mu.Lock()
	if p.pageCount < 1 || p.docID == "" {
		p.mu.Unlock()
		return
	}
	p.gen++
	gen := p.gen
	page := p.page
	docID := p.docID
	p.status = PreviewLoading
	p.errMsg = ""
	p.mu.Unlock()
	p.emit()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		token := time.Now().UnixMilli()
		data, err := p.api.FetchPreview(ctx, docID, page, token)
		if err != nil {
			p.logger.Error("preview fetch failed", "document", docID, "page", page, "error", err)
			p.apply(gen, page, nil, image.Config{}, "failed to load page")
			return nil
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			p.logger.Error("preview decode failed", "document", docID, "page", page, "error", err)
			p.apply(gen, page, nil, image.Config{}, "failed to decode page image")
			return nil
		}
		p.apply(gen, page, data, cfg, "")
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		p.logger.Error("preview worker panic", "document", docID, "page", page, "error", err)
	}))
}

// apply installs a fetch result unless it is stale: the generation must be
// the most recent one issued and the target page must still be on display.
func (p *PagePreview) apply(gen uint64, page int, data []byte, cfg image.Config, errMsg string) {
	p.mu.Lock()
	if gen != p.gen || page != p.page {
		p.mu.Unlock()
		p.logger.Debug("stale preview response discarded", "page", page, "generation", gen)
		return
	}
	if errMsg != "" {
		p.status = PreviewFailed
		p.errMsg = errMsg
		p.image = nil
		p.imgW, p.imgH = 0, 0
	} else {
		p.status = PreviewLoaded
		p.errMsg = ""
		p.image = data
		p.imgW, p.imgH = cfg.Width, cfg.Height
	}
	p.mu.Unlock()
	p.emit()
}

func (p *PagePreview) emit() {
	p.mu.Lock()
	fn := p.onChange
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
