package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editorpdf "github.com/caarlosandree/editor-pdf"
	"github.com/caarlosandree/editor-pdf/pkg/cache"
	"github.com/caarlosandree/editor-pdf/pkg/core"
	"github.com/caarlosandree/editor-pdf/pkg/editor"
)

// recordingNotifier captures surfaced notices.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

// newBackend fakes the document service: one 5-page document whose preview
// rasters are real PNGs sized <page>x1, so tests can tell pages apart.
func newBackend(t *testing.T, processed *core.ProcessRequest) *httptest.Server {
	t.Helper()

	doc := core.Document{ID: "doc-1", PageCount: 5, Status: core.StatusUploaded, Version: 1}

	envelope := func(w http.ResponseWriter, data any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, core.DocumentList{Documents: []core.Document{doc}, Total: 1, Limit: 20, Offset: 0})
	})
	mux.HandleFunc("GET /documents/doc-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, doc)
	})
	mux.HandleFunc("POST /documents/doc-1/process", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(processed))
		updated := doc
		updated.Version = 2
		updated.Status = core.StatusProcessed
		envelope(w, core.ProcessResult{Document: updated, Message: "All annotations applied"})
	})
	mux.HandleFunc("GET /documents/doc-1/preview/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		page, err := strconv.Atoi(parts[len(parts)-1])
		require.NoError(t, err)
		require.NotEmpty(t, r.URL.Query().Get("t"), "freshness token missing")

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, page, 1))))
		w.Write(buf.Bytes())
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestAnnotateAndSaveFlow walks the full path: browse to page 3, add a text
// annotation, save, and observe the submission lifecycle plus cache
// invalidation.
func TestAnnotateAndSaveFlow(t *testing.T) {
	var processed core.ProcessRequest
	srv := newBackend(t, &processed)

	notifier := &recordingNotifier{}
	registry := cache.NewRegistry()
	svc, err := editorpdf.New(srv.URL,
		editorpdf.WithNotifier(notifier),
		editorpdf.WithRegistry(registry),
	)
	require.NoError(t, err)

	ctx := context.Background()

	// Prime the listing cache so its key exists for invalidation.
	list, err := svc.Store.Documents(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Documents, 1)
	listKey := core.ListCacheKey(20, 0)
	require.True(t, registry.Fresh(listKey, time.Minute))

	session, preview, err := svc.OpenSession(ctx, "doc-1")
	require.NoError(t, err)
	require.Equal(t, 5, preview.PageCount())
	docKey := core.DocumentCacheKey("doc-1")
	require.True(t, registry.Fresh(docKey, time.Minute))

	// Browse to page 3 and wait for its raster.
	preview.SetPage(ctx, 3)
	require.Eventually(t, func() bool {
		s := preview.Snapshot()
		return s.Status == editor.PreviewLoaded && s.ImageWidth == 3
	}, 2*time.Second, 5*time.Millisecond, "page 3 never displayed")

	// Add a text annotation; the instruction lands on the displayed page.
	session.SelectTool(editorpdf.ToolText)
	session.Text().Content = "Hello"
	session.Text().X = 10
	session.Text().Y = 20
	require.NoError(t, session.SubmitTool(ctx))

	batch := session.Instructions()
	require.Len(t, batch, 1)
	inst := batch[0]
	assert.Equal(t, core.KindText, inst.Type)
	assert.Equal(t, 3, inst.Page)
	assert.Equal(t, 10.0, inst.X)
	assert.Equal(t, 20.0, inst.Y)
	assert.Equal(t, "Hello", inst.Content)
	require.NotNil(t, inst.FontSize)
	assert.Equal(t, 12.0, *inst.FontSize)

	// Observe the gateway lifecycle around the save.
	var mu sync.Mutex
	var transitions []editor.GatewayStatus
	session.Gateway().OnTransition(func(s editor.GatewayStatus) {
		mu.Lock()
		transitions = append(transitions, s)
		mu.Unlock()
	})

	require.NoError(t, session.RequestSave(ctx))

	mu.Lock()
	assert.Equal(t, []editor.GatewayStatus{
		editor.GatewayPending,
		editor.GatewaySucceeded,
		editor.GatewayIdle,
	}, transitions)
	mu.Unlock()

	// The accumulator is emptied and the tool reset.
	assert.False(t, session.Dirty())
	assert.Empty(t, session.Instructions())
	assert.Equal(t, editor.ToolKind(""), session.ActiveTool())

	// The backend received the batch verbatim.
	require.Len(t, processed.Instructions, 1)
	assert.Equal(t, "Hello", processed.Instructions[0].Content)
	assert.Equal(t, 3, processed.Instructions[0].Page)

	// Cache entries for the document and the listing query are invalidated.
	assert.False(t, registry.Fresh(docKey, time.Minute), "document key should be stale")
	assert.False(t, registry.Fresh(listKey, time.Minute), "listing key should be stale")
	assert.EqualValues(t, 1, registry.Generation(docKey))

	// The backend message was surfaced as the success notice.
	notifier.mu.Lock()
	assert.Equal(t, []string{"All annotations applied"}, notifier.successes)
	assert.Empty(t, notifier.failures)
	notifier.mu.Unlock()
}

// TestNotFoundSurfacesDistinctly opens a session on a missing document.
func TestNotFoundSurfacesDistinctly(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"success":false,"message":"document not found"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	svc, err := editorpdf.New(srv.URL)
	require.NoError(t, err)

	_, _, err = svc.OpenSession(context.Background(), "ghost")
	require.ErrorIs(t, err, core.ErrNotFound)
}
