package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Backend Engineer</title><script>var x = 1;</script></head>
<body>
	<nav>Home | Jobs</nav>
	<div class="sidebar">Similar jobs</div>
	<div class="job-description">
		<h2>Backend Engineer</h2>
		<p>We need   5+ years of experience in Go.</p>
		<ul>
			<li>Build services on PostgreSQL</li>
			<li>Operate <b>Kubernetes</b> clusters</li>
		</ul>
	</div>
	<form id="application-form">Upload resume</form>
	<footer>Copyright</footer>
</body>
</html>`

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, PlatformUnknown, result.Platform)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"not-a-valid-url", "ftp://example.com/job", "file:///etc/passwd"} {
		_, err := URL(context.Background(), u, nil)
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr, u)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 2048)))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.MaxBytes = 1024
	_, err := URL(context.Background(), server.URL, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than 1024 bytes")
}

func TestExtractMainText_KeepsStructure(t *testing.T) {
	text, err := ExtractMainText(postingHTML, JobPostingSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Backend Engineer",
		"We need 5+ years of experience in Go.",
		"- Build services on PostgreSQL",
		"- Operate Kubernetes clusters",
	}, "\n"), text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><nav>Menu</nav><div>Some content here.</div></body></html>`, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

type stubRenderer struct {
	html  string
	err   error
	calls int
}

func (s *stubRenderer) Render(context.Context, string) (string, error) {
	s.calls++
	return s.html, s.err
}

func TestJobPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	result, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "- Operate Kubernetes clusters")
	assert.NotContains(t, result.Text, "Upload resume")
}

func TestJobPosting_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("  Go developer  \n\n\n  Docker required "))
	}))
	defer server.Close()

	result, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go developer\nDocker required", result.Text)
}

func TestJobPosting_BrowserFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer server.Close()

	rendered := `<html><body><main><p>` + strings.Repeat("Python Django PostgreSQL ", 30) + `</p></main></body></html>`
	browser := &stubRenderer{html: rendered}
	opts := DefaultOptions()
	opts.Browser = browser

	result, err := JobPosting(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, browser.calls)
	assert.Contains(t, result.Text, "Python Django PostgreSQL")

	// a failing browser keeps the HTTP content
	opts.Browser = &stubRenderer{err: errors.New("chrome not found")}
	result, err = JobPosting(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Empty(t, result.Text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   short  "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}
