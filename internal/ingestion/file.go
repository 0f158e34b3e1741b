package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// DefaultMaxBytes bounds the size of an ingested document
const DefaultMaxBytes = 2 << 20

var (
	// ErrUnsupportedFormat is returned for extensions other than .txt, .md and .html
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrTooLarge is returned when a document exceeds the size limit
	ErrTooLarge = errors.New("document too large")
	// ErrEmptyDocument is returned when no text remains after cleanup
	ErrEmptyDocument = errors.New("document contains no text")
)

// FormatFromPath maps a file extension to a supported format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", "":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// IngestFromFile reads a résumé file, cleans it, and returns cleaned text with metadata
func IngestFromFile(path string, maxBytes int64) (string, *Metadata, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if info.Size() > maxBytes {
		return "", nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, info.Size(), maxBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Ingest(string(content), path, format)
}

// Ingest cleans raw document content of the given format.
func Ingest(content, source string, format Format) (string, *Metadata, error) {
	if format == FormatHTML {
		text, err := fetch.ResumeText(content)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract HTML text: %w", err)
		}
		content = text
	}

	cleanedText := CleanText(content)
	if cleanedText == "" {
		return "", nil, ErrEmptyDocument
	}
	return cleanedText, NewMetadata(cleanedText, source, format), nil
}
