// Package backend is the REST client for the remote stationery-hub backend.
// It is the only package that knows the backend's wire surface; the paths
// here are fixed by the deployed service and must not change.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/httpclient"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// Client talks to one backend origin. Zero-value is not usable; construct
// with New or NewWithOrigin.
type Client struct {
	origin  string
	timeout time.Duration
}

// New returns a Client pointed at the configured BACKEND_ORIGIN.
func New() *Client {
	return NewWithOrigin(config.BackendOrigin())
}

// NewWithOrigin returns a Client for an explicit origin (used by tests).
func NewWithOrigin(origin string) *Client {
	return &Client{
		origin:  strings.TrimRight(origin, "/"),
		timeout: defaultTimeout,
	}
}

// Origin returns the backend base URL this client calls.
func (c *Client) Origin() string { return c.origin }

func (c *Client) url(path string) string {
	return c.origin + path
}

// ImageURL resolves a stored image reference to a fetchable URL: absolute
// URLs pass through, bare filenames resolve under the backend's /uploads.
func (c *Client) ImageURL(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return c.origin + "/uploads/" + strings.TrimPrefix(value, "/")
}

// Ping issues the backend existence check: a HEAD against the product
// listing with a short timeout. Only a 2xx counts as reachable.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url("/product/get"), nil)
	if err != nil {
		return fmt.Errorf("backend: build ping: %w", err)
	}

	client := &http.Client{
		Transport: httpclient.DefaultClient.Transport,
		Timeout:   timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: ping: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Message: "backend not healthy"}
	}
	return nil
}

// ─── Outbound helpers ────────────────────────────────────────────────────────

// observe records each upstream call against the backend metrics, keyed by
// path so label cardinality stays bounded.
func observe(method, rawurl string, errp *error, start time.Time) {
	path := rawurl
	if u, err := neturl.Parse(rawurl); err == nil {
		path = u.Path
	}
	metrics.ObserveBackendCall(method, path, errp, start)
}

func httpGet(ctx context.Context, url string, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodGet, url, &err, time.Now())
	return httpclient.Get(url).WithContext(ctx).Timeout(timeout).Send()
}

func httpDelete(ctx context.Context, url string, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodDelete, url, &err, time.Now())
	return httpclient.Delete(url).WithContext(ctx).Timeout(timeout).Send()
}

func httpPostJSON(ctx context.Context, url string, body interface{}, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodPost, url, &err, time.Now())
	return httpclient.Post(url).WithContext(ctx).Timeout(timeout).Body(body).Send()
}

func httpPutJSON(ctx context.Context, url string, body interface{}, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodPut, url, &err, time.Now())
	return httpclient.Put(url).WithContext(ctx).Timeout(timeout).Body(body).Send()
}

func httpPostMultipart(ctx context.Context, url string, fields map[string]string, fileField, fileName string, file []byte, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodPost, url, &err, time.Now())
	return httpclient.Post(url).WithContext(ctx).Timeout(timeout).
		Multipart(fields, fileField, fileName, file).Send()
}

func httpPutMultipart(ctx context.Context, url string, fields map[string]string, fileField, fileName string, file []byte, timeout time.Duration) (resp *httpclient.Response, err error) {
	defer observe(http.MethodPut, url, &err, time.Now())
	return httpclient.Put(url).WithContext(ctx).Timeout(timeout).
		Multipart(fields, fileField, fileName, file).Send()
}

// ─── Errors ──────────────────────────────────────────────────────────────────

// StatusError is a non-2xx backend verdict. Message carries the server's own
// explanation when it sent one, so the UI can surface it verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Code, e.Message)
}

// statusError extracts the server-provided message (message/error/msg
// fields, in that order) or falls back to a generic string.
func statusError(resp *httpclient.Response, fallback string) error {
	msg := fallback

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Raw, &body); err == nil {
		for _, key := range []string{"message", "error", "msg"} {
			if s, ok := body[key].(string); ok && s != "" {
				msg = s
				break
			}
		}
	}

	return &StatusError{Code: resp.StatusCode, Message: msg}
}

// decodeList tolerates the backend's varying list envelopes: a bare array,
// {"products": [...]}, {"blogs": [...]}, {"orders": [...]} or {"data": [...]}.
func decodeList(raw []byte, keys []string, dest interface{}) error {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(raw, dest)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("backend: decode list envelope: %w", err)
	}

	for _, key := range keys {
		if inner, ok := envelope[key]; ok {
			return json.Unmarshal(inner, dest)
		}
	}
	if inner, ok := envelope["data"]; ok {
		return json.Unmarshal(inner, dest)
	}

	return fmt.Errorf("backend: no recognised list field in response (tried %v)", keys)
}

func formatPrice(p float64) string {
	// Trailing zeros trimmed; the backend parses the form field as a number.
	s := fmt.Sprintf("%.2f", p)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
