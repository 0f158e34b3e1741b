package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveResume(t *testing.T, contentType, body string, status int) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), tt.urlStr, 0, nil)
			assert.ErrorIs(t, err, ErrHTTPRequestFailed)
		})
	}
}

func TestIngestFromURL_HTMLPage(t *testing.T) {
	url := serveResume(t, "text/html; charset=utf-8", `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Zhang Wei</h1>
<p>Senior   Frontend   Engineer</p>
</main>
<footer>Footer</footer>
</body>
</html>`, http.StatusOK)

	cleanedText, metadata, err := IngestFromURL(context.Background(), url, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, url, metadata.Source)
	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Equal(t, "# Zhang Wei\nSenior Frontend Engineer", cleanedText)
}

func TestIngestFromURL_PlainTextPage(t *testing.T) {
	url := serveResume(t, "text/plain; charset=utf-8", "Zhang Wei\r\nzhang@example.com\r\n", http.StatusOK)

	cleanedText, metadata, err := IngestFromURL(context.Background(), url, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, "Zhang Wei\nzhang@example.com", cleanedText)
}

func TestIngestFromURL_Errors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		url := serveResume(t, "text/html", "missing", http.StatusNotFound)
		_, _, err := IngestFromURL(context.Background(), url, 0, nil)
		assert.ErrorIs(t, err, ErrHTTPRequestFailed)
	})

	t.Run("too large", func(t *testing.T) {
		url := serveResume(t, "text/plain", "0123456789", http.StatusOK)
		_, _, err := IngestFromURL(context.Background(), url, 5, nil)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		url := serveResume(t, "application/pdf", "%PDF-1.7", http.StatusOK)
		_, _, err := IngestFromURL(context.Background(), url, 0, nil)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("empty page", func(t *testing.T) {
		url := serveResume(t, "text/html", "<html><body><nav>Home</nav></body></html>", http.StatusOK)
		_, _, err := IngestFromURL(context.Background(), url, 0, nil)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})
}
