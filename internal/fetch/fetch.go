// Package fetch retrieves hosted résumé pages and renders their HTML as line-structured text.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout bounds a whole page request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the analyzer to résumé hosts.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeAnalyzer/1.0)"
	// DefaultMaxBytes bounds the size of a fetched page.
	DefaultMaxBytes = 5 << 20
)

// ErrTooLarge is returned when a page body exceeds the client's byte limit.
var ErrTooLarge = errors.New("page too large")

// Kind classifies a page body.
type Kind int

const (
	KindUnsupported Kind = iota
	KindHTML
	KindText
)

// Page is a fetched résumé document.
type Page struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

// Kind reports how the body should be read, using the declared content type
// and falling back to content sniffing when the server sent none.
func (p *Page) Kind() Kind {
	contentType := p.ContentType
	if contentType == "" {
		contentType = http.DetectContentType([]byte(p.Body))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return KindUnsupported
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return KindHTML
	case "text/plain", "text/markdown":
		return KindText
	default:
		return KindUnsupported
	}
}

// Error describes a failed page request.
type Error struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches résumé pages over HTTP(S).
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBytes sets the largest accepted body. Non-positive values keep the default.
func WithMaxBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
		maxBytes:   DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get downloads a page. Only http and https URLs are accepted, and a body larger
// than the byte limit fails with ErrTooLarge instead of being cut short.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: "failed to read body", Cause: err}
	}
	if int64(len(body)) > c.maxBytes {
		return nil, &Error{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("body exceeds %d bytes", c.maxBytes),
			Cause:      ErrTooLarge,
		}
	}

	return &Page{
		URL:         rawURL,
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}, nil
}
