// Package client is a Go consumer of the PaintPro Manager API. It carries
// the pieces the web frontend used to own: envelope decoding, the invoice
// editor with its line-item draft and submit state machine, the two-step
// company-settings save, and the debounced estimate search.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrRequestFailed is the generic fallback for transport-level failures:
// the server could not be reached or answered something unreadable.
var ErrRequestFailed = errors.New("request failed, please try again")

// ErrLogoUpload marks a failed upload during a two-step settings save. The
// settings payload is never sent when the upload step fails.
var ErrLogoUpload = errors.New("logo upload failed")

// APIError is a failure reported by the server itself, either as a non-2xx
// status or as a success:false envelope. Message carries the server's error
// string verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// Client talks to a PaintPro Manager server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, e.g. to change timeouts
// or install a test transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New builds a client for the API at baseURL (scheme and host, no trailing
// slash required).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the {success,data,error} body every endpoint answers with,
// except the logo upload.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do sends one JSON request and decodes the enveloped response into out.
// Server-reported failures come back as *APIError; everything transport-level
// wraps ErrRequestFailed so callers can show the generic message.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: ErrRequestFailed.Error()}
		}
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = ErrRequestFailed.Error()
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}
	}
	return nil
}

// Health checks that the server is up and can reach its database.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// CreateClient registers a new customer and returns the stored record.
func (c *Client) CreateClient(ctx context.Context, in ClientRecord) (*ClientRecord, error) {
	var out ClientRecord
	if err := c.do(ctx, http.MethodPost, "/api/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvoice loads an invoice with its areas.
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var out Invoice
	if err := c.do(ctx, http.MethodGet, "/api/invoices/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice submits the full editable field set and returns the
// canonical record. The server owns computed fields such as total_amount.
func (c *Client) UpdateInvoice(ctx context.Context, id string, draft InvoiceDraft) (*Invoice, error) {
	var out Invoice
	if err := c.do(ctx, http.MethodPatch, "/api/invoices/"+url.PathEscape(id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchEstimates runs a server-side substring search over estimates.
// Zero page/limit leave the server defaults in place.
func (c *Client) SearchEstimates(ctx context.Context, query string, page, limit int) (*EstimatePage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("search", query)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/estimates"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var out EstimatePage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCompanySettings returns the saved profile, or nil before the first save.
func (c *Client) GetCompanySettings(ctx context.Context) (*CompanySettings, error) {
	var out CompanySettings
	if err := c.do(ctx, http.MethodGet, "/api/company-settings", nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" && out.CompanyName == "" {
		return nil, nil
	}
	return &out, nil
}

// SaveCompanySettings upserts the company profile. When logo is non-nil the
// image is uploaded first and its URL written into the payload; a failed
// upload aborts the whole save with an error wrapping ErrLogoUpload, so the
// profile never references an image that was not stored.
func (c *Client) SaveCompanySettings(ctx context.Context, s CompanySettings, logo *LogoUpload) (*CompanySettings, error) {
	if logo != nil {
		logoURL, err := c.UploadLogo(ctx, logo.Filename, logo.Reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLogoUpload, err)
		}
		s.LogoURL = logoURL
	}
	var out CompanySettings
	if err := c.do(ctx, http.MethodPost, "/api/company-settings", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadLogo sends the image as multipart form data and returns the public
// URL it is served under. This endpoint answers a flat {success,url} body.
func (c *Client) UploadLogo(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="logo"; filename=%q`, filepath.Base(filename)))
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		header.Set("Content-Type", ct)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-logo", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	// Success is flat {success,url}; failures still use the envelope.
	var body struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		msg := body.Error
		if msg == "" {
			msg = ErrRequestFailed.Error()
		}
		return "", &APIError{Status: resp.StatusCode, Message: msg}
	}
	return body.URL, nil
}
