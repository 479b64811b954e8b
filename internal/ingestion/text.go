// Package ingestion loads job descriptions and resumes from files and URLs and
// normalizes their text before screening.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	bulletGlyph = regexp.MustCompile(`^[•·▪‣◦]\s+`)
)

// CleanText normalizes line endings and whitespace while keeping headings, bullet
// lists and paragraph breaks. At most one blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// cleanLine collapses inner whitespace and keeps leading indentation. Bullet glyphs
// become "- ".
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}
	indent := len(line) - len(trimmed)
	if strings.HasPrefix(trimmed, "#") {
		indent = 0
	}
	trimmed = bulletGlyph.ReplaceAllString(trimmed, "- ")
	trimmed = innerSpace.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	return strings.Repeat(" ", indent) + trimmed
}

// LoadText reads a text file and returns its cleaned content
func LoadText(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	text := CleanText(string(content))
	if text == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, path)
	}
	meta := newMetadata(text)
	meta.Source = path
	return text, meta, nil
}
