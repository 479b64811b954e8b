package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-screener/internal/fetch"
)

const postingPage = `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Senior Software Engineer</h1>
<p>Apply via <a href="/apply#form">our portal</a> or read <a href="https://example.org/benefits">benefits</a>.</p>
<ul>
<li>5+ years of   Go experience</li>
<li>Distributed systems</li>
</ul>
<a href="mailto:jobs@example.com">Email</a>
<a href="/apply">Apply again</a>
</main>
<footer>Footer</footer>
</body>
</html>`

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingPage))
	}))
	defer server.Close()

	text, meta, err := FromURL(context.Background(), server.URL+"/jobs/1", nil)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Senior Software Engineer",
		"Apply via our portal or read benefits.",
		"- 5+ years of Go experience",
		"- Distributed systems",
		"Email",
		"Apply again",
	}, "\n"), text)
	assert.NotContains(t, text, "Nav")
	assert.NotContains(t, text, "Footer")

	assert.Equal(t, server.URL+"/jobs/1", meta.URL)
	assert.Equal(t, "unknown", meta.Platform)
	assert.Equal(t, []string{server.URL + "/apply", "https://example.org/benefits"}, meta.Links)
	assert.Len(t, meta.JobHash, 64)
}

func TestFromURL_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><nav>only nav</nav></body></html>"))
	}))
	defer empty.Close()

	tests := []struct {
		name string
		url  string
		want error
	}{
		{"empty URL", "", ErrFetchFailed},
		{"no scheme", "example.com/job", ErrFetchFailed},
		{"no host", "http://", ErrFetchFailed},
		{"http error", notFound.URL, ErrFetchFailed},
		{"no content", empty.URL, ErrEmptyContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, meta, err := FromURL(context.Background(), tt.url, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
			assert.Nil(t, meta)
		})
	}

	var fetchErr *fetch.Error
	_, _, err := FromURL(context.Background(), notFound.URL, nil)
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFromURL_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingPage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := FromURL(ctx, server.URL, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExtractLinks_BadInput(t *testing.T) {
	assert.Nil(t, extractLinks(postingPage, "::bad"))
	assert.Empty(t, extractLinks("<html></html>", "https://example.com"))
}
