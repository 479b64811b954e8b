// Package textutil provides the text normalization, tokenization and phrase
// matching primitives shared by the extractors and scorers.
package textutil

import (
	"math"
	"regexp"
	"strings"
)

var (
	tokenRegex     = regexp.MustCompile(`[a-z0-9]+`)
	horizontalRuns = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+(?:\s+|$)|\n+`)
)

// Normalize converts line endings to LF, collapses horizontal whitespace runs to a
// single space and trims every line. Line structure is preserved.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalRuns.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// LowerASCII lowercases ASCII letters only, so byte offsets into the result are
// valid offsets into the input.
func LowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// IsWordByte reports whether c is an ASCII letter or digit.
func IsWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Tokenize returns the lowercased alphanumeric tokens of text in order.
func Tokenize(text string) []string {
	return tokenRegex.FindAllString(LowerASCII(text), -1)
}

// TokenSet returns the distinct tokens of text that are at least minLen bytes long
// and are not in stopWords.
func TokenSet(text string, stopWords map[string]bool, minLen int) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		if len(tok) < minLen || stopWords[tok] {
			continue
		}
		set[tok] = true
	}
	return set
}

// Jaccard returns |a∩b| / |a∪b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// FindPhrase returns the byte offset of the first whole-word occurrence of phrase in
// lower, or -1. Both arguments must already be lowercased. A match is whole-word when
// the bytes on either side are not letters or digits.
func FindPhrase(lower, phrase string) int {
	if phrase == "" {
		return -1
	}
	from := 0
	for from <= len(lower)-len(phrase) {
		idx := strings.Index(lower[from:], phrase)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(phrase)
		if boundaryBefore(lower, start, phrase) && boundaryAfter(lower, end, phrase) {
			return start
		}
		from = start + 1
	}
	return -1
}

// ContainsPhrase reports whether phrase occurs in lower as a whole word.
func ContainsPhrase(lower, phrase string) bool {
	return FindPhrase(lower, phrase) >= 0
}

// CountPhrases returns how many of the given phrases occur in lower as whole words.
func CountPhrases(lower string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if ContainsPhrase(lower, p) {
			n++
		}
	}
	return n
}

func boundaryBefore(s string, start int, phrase string) bool {
	if start == 0 || !IsWordByte(phrase[0]) {
		return true
	}
	return !IsWordByte(s[start-1])
}

func boundaryAfter(s string, end int, phrase string) bool {
	if end >= len(s) || !IsWordByte(phrase[len(phrase)-1]) {
		return true
	}
	return !IsWordByte(s[end])
}

// Sentences splits text on terminal punctuation and newlines, dropping empty pieces.
func Sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// Percent converts a [0,1] score to an integer percentage, rounding half up.
func Percent(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}

// Dedupe returns values with duplicates removed, keeping first occurrences.
func Dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
