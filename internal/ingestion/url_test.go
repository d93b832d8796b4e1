package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"https link", "https://jobs.example.com/posting/123", true},
		{"http link", "http://example.com/job", true},
		{"leading whitespace", "  https://example.com/job  ", true},
		{"pasted text", "Senior Backend Role, Python, AWS", false},
		{"scheme without host", "https://", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsURL(tt.input))
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><body>
				<nav>menu</nav>
				<div class="job-description">
					<h1>Senior Backend Role</h1>
					<p>Python and AWS required.</p>
				</div>
			</body></html>`))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Role")
	assert.Contains(t, text, "Python and AWS required.")
	assert.NotContains(t, text, "menu")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>only();</script></body></html>`))
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, err := IngestFromURL(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}
