package ingestion

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/apex/log"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IsURL reports whether a user-entered job description looks like a link
// rather than pasted text.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	parsed, err := url.Parse(s)
	return err == nil && parsed.Host != ""
}

// IngestFromURL fetches a job posting page, extracts the main text using
// job-board selectors, and returns the cleaned result.
func IngestFromURL(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debugf("fetched job posting: %d bytes from %s", len(result.HTML), urlStr)

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(textContent)
	log.Debugf("extracted job posting text: %d chars", len(cleaned))
	if cleaned == "" {
		return "", fmt.Errorf("%w: page yielded no text", ErrContentExtractionFailed)
	}
	return cleaned, nil
}
