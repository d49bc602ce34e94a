// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client used to fetch pages and PDFs.
// Transport failures and non-2xx responses both wrap types.ErrTransport.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Unwrap classifies every StatusError as a transport error.
func (e *StatusError) Unwrap() error { return types.ErrTransport }

// NewHTTPClient builds an *http.Client with the configured timeout and an
// instrumented transport.
func NewHTTPClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Client issues GET requests with a fixed User-Agent.
type Client struct {
	hc        *http.Client
	userAgent string
}

// NewClient wraps hc. A nil hc uses http.DefaultClient.
func NewClient(hc *http.Client, userAgent string) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{hc: hc, userAgent: userAgent}
}

// Get fetches url and returns the whole response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	body, err := c.GetStreaming(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetStreaming fetches url and returns the open response body. The caller
// must close it. On error no body is returned and nothing needs closing.
// Read errors from the body other than io.EOF wrap types.ErrTransport.
func (c *Client) GetStreaming(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request for %s: %w", types.ErrTransport, url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", types.ErrTransport, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return &transportBody{ReadCloser: resp.Body, url: url}, nil
}

// transportBody tags mid-stream read failures as transport errors.
type transportBody struct {
	io.ReadCloser
	url string
}

func (b *transportBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%w: reading body of %s: %w", types.ErrTransport, b.url, err)
	}
	return n, err
}
