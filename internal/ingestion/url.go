package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/fetch"
)

var (
	// ErrFetchFailed wraps failures to retrieve or parse a posting
	ErrFetchFailed = errors.New("job posting fetch failed")
	// ErrEmptyContent is returned when nothing usable is left after cleaning
	ErrEmptyContent = errors.New("no text content")
)

// maxLinks caps the links kept in metadata
const maxLinks = 50

// FromURL fetches a job posting and returns its cleaned text. opts may carry a
// browser for single-page job boards; nil uses fetch.DefaultOptions.
func FromURL(ctx context.Context, urlStr string, opts *fetch.Options) (string, *Metadata, error) {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result, err := fetch.JobPosting(ctx, urlStr, opts)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	text := CleanText(result.Text)
	if text == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, urlStr)
	}

	meta := newMetadata(text)
	meta.Source = urlStr
	meta.URL = urlStr
	meta.Platform = string(result.Platform)
	meta.Links = extractLinks(result.HTML, urlStr)

	log.Info("job posting ingested",
		zap.String("url", urlStr),
		zap.String("platform", meta.Platform),
		zap.String("job_hash", meta.JobHash),
		zap.Int("chars", meta.Chars),
		zap.Int("links", len(meta.Links)))
	return text, meta, nil
}

// extractLinks returns the distinct absolute http(s) links of a page, resolved
// against base, in document order
func extractLinks(html, base string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		abs := baseURL.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return true
		}
		abs.Fragment = ""
		link := abs.String()
		if !seen[link] {
			seen[link] = true
			links = append(links, link)
		}
		return len(links) < maxLinks
	})
	return links
}
