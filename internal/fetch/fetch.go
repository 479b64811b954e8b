// Package fetch retrieves job postings over HTTP and turns their HTML into plain
// text that keeps list and paragraph structure.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CandidateScreener/1.0)"

// DefaultMaxBytes caps the size of a fetched page.
const DefaultMaxBytes = 5 << 20

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
	Platform    Platform
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
	Headers   map[string]string
	// Browser renders pages whose HTTP text is too short; nil disables rendering
	Browser Renderer
	Logger  *zap.Logger
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Host == "" || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if int64(len(bodyBytes)) > maxBytes {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("response larger than %d bytes", maxBytes)}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Platform:    DetectPlatform(urlStr),
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// JobPosting fetches a job posting and extracts its text with the selectors of the
// detected platform. When the text looks like an unrendered single-page app and
// opts.Browser is set, the page is rendered and extracted again.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return result, err
	}
	log.Debug("fetched job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(result.Platform)),
		zap.Int("bytes", len(result.HTML)))

	if isPlainText(result.ContentType) {
		result.Text = cleanWhitespace(result.HTML)
		return result, nil
	}

	content := PlatformContentSelectors(result.Platform)
	noise := PlatformNoiseSelectors(result.Platform)
	result.Text, err = ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return result, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	if opts.Browser != nil && ShouldUseBrowser(result.Text) {
		log.Debug("content too short, rendering in browser",
			zap.String("url", urlStr),
			zap.Int("chars", len(result.Text)),
			zap.Int("min_chars", MinContentLength))
		rendered, err := opts.Browser.Render(ctx, urlStr)
		if err != nil {
			log.Warn("browser rendering failed, keeping HTTP content", zap.String("url", urlStr), zap.Error(err))
			return result, nil
		}
		text, err := ExtractMainText(rendered, content, noise...)
		if err != nil {
			log.Warn("browser content extraction failed", zap.String("url", urlStr), zap.Error(err))
			return result, nil
		}
		result.HTML, result.Text = rendered, text
	}
	return result, nil
}

func isPlainText(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "text/plain")
}

// blockSelectors end a line of extracted text
const blockSelectors = "p, div, section, article, br, tr, h1, h2, h3, h4, h5, h6, li, dt, dd, ul, ol"

// ExtractMainText parses HTML and returns the main body text, one block element
// per line and list items prefixed with "- ". Noise is removed first; the first
// matching content selector wins and the body is the fallback.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, svg, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()
	if noise := strings.Join(noiseSelectors, ", "); noise != "" {
		doc.Find(noise).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	mainContent.Find("li").PrependHtml("- ")
	mainContent.Find(blockSelectors).AppendHtml("\n")

	return cleanWhitespace(mainContent.Text()), nil
}

// JobPostingSelectors returns selectors optimized for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// cleanWhitespace trims every line, collapses inner runs of spaces and drops
// empty lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" && line != "-" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
