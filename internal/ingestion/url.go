package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// ErrHTTPRequestFailed is returned when the page cannot be fetched
var ErrHTTPRequestFailed = errors.New("HTTP request failed")

// IngestFromURL fetches a hosted résumé page and cleans it. HTML pages are rendered
// to line-structured text; plain-text pages are used as they are.
func IngestFromURL(ctx context.Context, urlStr string, maxBytes int64, logger *slog.Logger) (string, *Metadata, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	page, err := fetch.NewClient(fetch.WithMaxBytes(maxBytes)).Get(ctx, urlStr)
	if err != nil {
		if errors.Is(err, fetch.ErrTooLarge) {
			return "", nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
		}
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched resume page", "url", urlStr, "bytes", len(page.Body), "content_type", page.ContentType)

	switch page.Kind() {
	case fetch.KindHTML:
		return Ingest(page.Body, urlStr, FormatHTML)
	case fetch.KindText:
		return Ingest(page.Body, urlStr, FormatText)
	default:
		return "", nil, fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, page.ContentType)
	}
}
