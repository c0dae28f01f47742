// Package client implements the REST contract of the backend document
// service. Every JSON endpoint answers with the envelope
// {success, data?, message?}; the page preview endpoint returns raw image
// bytes instead.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

const defaultTimeout = 30 * time.Second

// Client talks to the backend document service. The PDF mutation engine
// behind the /process endpoint is opaque to this package.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the service at baseURL. httpClient may be nil,
// in which case a client with a 30s timeout is used.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{baseURL: baseURL, http: httpClient, logger: logger}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues a request and decodes the JSON envelope into out (when non-nil).
// A 404 maps to core.ErrNotFound; other failures surface the server-supplied
// message or a generic fallback.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.ErrNotFound
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) == 0 {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("request failed: %s", resp.Status)
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("request failed: %s", resp.Status)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success || resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return errors.New(msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// ListDocuments implements core.API.
func (c *Client) ListDocuments(ctx context.Context, limit, offset int) (core.DocumentList, error) {
	path := "/documents"
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out core.DocumentList
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return core.DocumentList{}, err
	}
	return out, nil
}

// GetDocument implements core.API.
func (c *Client) GetDocument(ctx context.Context, id string) (core.Document, error) {
	var out core.Document
	if err := c.do(ctx, http.MethodGet, "/documents/"+url.PathEscape(id), nil, "", &out); err != nil {
		return core.Document{}, err
	}
	return out, nil
}

// UploadDocument implements core.API. The PDF travels as the "file" field of
// a multipart form.
func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) (core.UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return core.UploadResult{}, fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return core.UploadResult{}, fmt.Errorf("read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return core.UploadResult{}, fmt.Errorf("finish form: %w", err)
	}

	var out core.UploadResult
	if err := c.do(ctx, http.MethodPost, "/documents", &buf, w.FormDataContentType(), &out); err != nil {
		return core.UploadResult{}, err
	}
	return out, nil
}

// ProcessDocument implements core.API. The batch is sent verbatim; the
// backend applies the instructions in the order given.
func (c *Client) ProcessDocument(ctx context.Context, id string, req core.ProcessRequest) (core.ProcessResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return core.ProcessResult{}, fmt.Errorf("encode request: %w", err)
	}

	var out core.ProcessResult
	path := "/documents/" + url.PathEscape(id) + "/process"
	if err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", &out); err != nil {
		return core.ProcessResult{}, err
	}
	return out, nil
}

// FetchPreview implements core.API. The response is raw image bytes, not
// the JSON envelope; the freshness token rides as a query parameter.
func (c *Client) FetchPreview(ctx context.Context, id string, page int, freshness int64) ([]byte, error) {
	u := fmt.Sprintf("%s/documents/%s/preview/%d?t=%d", c.baseURL, url.PathEscape(id), page, freshness)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch preview: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, core.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("preview request failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DeleteDocument implements core.API.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, "", nil)
}

// PreviewURL returns the raster endpoint for one page, without a freshness
// token. Useful for handing the URL to an external viewer.
func (c *Client) PreviewURL(id string, page int) string {
	return fmt.Sprintf("%s/documents/%s/preview/%d", c.baseURL, url.PathEscape(id), page)
}

var _ core.API = (*Client)(nil)
