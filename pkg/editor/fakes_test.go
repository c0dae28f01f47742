package editor_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// fakeAPI implements core.API in memory. Process and preview calls can be
// made to block on channels so tests control resolution order.
type fakeAPI struct {
	mu sync.Mutex

	processCalls  int
	processedReqs []core.ProcessRequest
	processBlock  chan struct{} // when set, ProcessDocument waits for it
	processErr    error
	processResult core.ProcessResult

	previewCalls  []int // pages in issue order
	previewBlocks map[int]chan struct{}
	previewData   map[int][]byte
	previewErr    error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		previewBlocks: make(map[int]chan struct{}),
		previewData:   make(map[int][]byte),
	}
}

func (f *fakeAPI) ListDocuments(ctx context.Context, limit, offset int) (core.DocumentList, error) {
	return core.DocumentList{}, nil
}

func (f *fakeAPI) GetDocument(ctx context.Context, id string) (core.Document, error) {
	return core.Document{}, errors.New("not implemented")
}

func (f *fakeAPI) UploadDocument(ctx context.Context, filename string, r io.Reader) (core.UploadResult, error) {
	return core.UploadResult{}, errors.New("not implemented")
}

func (f *fakeAPI) ProcessDocument(ctx context.Context, id string, req core.ProcessRequest) (core.ProcessResult, error) {
	f.mu.Lock()
	f.processCalls++
	f.processedReqs = append(f.processedReqs, req)
	block := f.processBlock
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return core.ProcessResult{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.processErr != nil {
		return core.ProcessResult{}, f.processErr
	}
	return f.processResult, nil
}

func (f *fakeAPI) FetchPreview(ctx context.Context, id string, page int, freshness int64) ([]byte, error) {
	f.mu.Lock()
	f.previewCalls = append(f.previewCalls, page)
	block := f.previewBlocks[page]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	return f.previewData[page], nil
}

func (f *fakeAPI) DeleteDocument(ctx context.Context, id string) error {
	return nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processCalls
}

// fakeInvalidator records invalidated keys and prefixes.
type fakeInvalidator struct {
	mu       sync.Mutex
	keys     []string
	prefixes []string
}

func (f *fakeInvalidator) Invalidate(keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, keys...)
}

func (f *fakeInvalidator) InvalidatePrefix(prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefixes = append(f.prefixes, prefix)
}

// fakeNotifier records surfaced notices.
type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (f *fakeNotifier) Success(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, msg)
}

func (f *fakeNotifier) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, msg)
}

// staticPages is a PageSource pinned to one page.
type staticPages struct{ page int }

func (s staticPages) Page() int { return s.page }

const timeout = 2 * time.Second

// waitFor polls cond until it holds or the deadline passes.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
