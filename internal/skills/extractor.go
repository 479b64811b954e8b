// Package skills recognizes technical and soft skills in free text.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

// casedTerms are skill names that are also ordinary English words or letters. They
// only count when written capitalized ("Go", "R") and not joined to a following
// "-", "&" or "'" ("Go-to", "R&D"). A versioned form such as go1.22 always counts.
var casedTerms = map[string]bool{"go": true, "r": true}

// term is a searchable vocabulary entry and the canonical skill it records
type term struct {
	text      string
	canonical string
	rank      int
	cased     bool
}

// Extractor matches skills against a bound vocabulary. It is safe for concurrent use.
type Extractor struct {
	technical []term
	soft      []term
}

// NewExtractor creates an Extractor bound to v. A nil v uses the default vocabulary.
func NewExtractor(v *vocab.Vocabulary) *Extractor {
	if v == nil {
		v = vocab.Default()
	}

	technical := v.TechnicalSkills()
	e := &Extractor{
		technical: make([]term, 0, len(technical)),
	}
	rank := make(map[string]int, len(technical))
	for i, skill := range technical {
		rank[skill] = i
		e.technical = append(e.technical, term{text: skill, canonical: skill, rank: i, cased: casedTerms[skill]})
	}
	for _, pair := range v.Aliases() {
		e.technical = append(e.technical, term{text: pair[0], canonical: pair[1], rank: rank[pair[1]], cased: casedTerms[pair[0]]})
	}
	for i, skill := range v.SoftSkills() {
		e.soft = append(e.soft, term{text: skill, canonical: skill, rank: i})
	}
	return e
}

// Extract returns the skills found in text. Both lists keep first-occurrence order.
func (e *Extractor) Extract(text string) types.SkillProfile {
	norm := textutil.Normalize(text)
	if norm == "" {
		return types.NewSkillProfile(nil, nil)
	}
	lower := textutil.LowerASCII(norm)
	return types.NewSkillProfile(match(norm, lower, e.technical, true), match(norm, lower, e.soft, false))
}

// ExtractTechnical returns only the technical skills found in text
func (e *Extractor) ExtractTechnical(text string) []string {
	norm := textutil.Normalize(text)
	if norm == "" {
		return []string{}
	}
	return match(norm, textutil.LowerASCII(norm), e.technical, true)
}

type hit struct {
	pos       int
	rank      int
	canonical string
}

// match finds every term in lower and returns canonical names ordered by position.
// norm is the same text before lowercasing.
func match(norm, lower string, terms []term, allowVersion bool) []string {
	best := make(map[string]hit)
	for _, t := range terms {
		var pos int
		if t.cased {
			pos = findCased(norm, lower, t.text)
		} else {
			pos = findTerm(lower, t.text, allowVersion)
		}
		if pos < 0 {
			continue
		}
		if prev, ok := best[t.canonical]; ok && prev.pos <= pos {
			continue
		}
		best[t.canonical] = hit{pos: pos, rank: t.rank, canonical: t.canonical}
	}

	hits := make([]hit, 0, len(best))
	for _, h := range best {
		hits = append(hits, h)
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].rank < hits[j].rank
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.canonical
	}
	return out
}

// findTerm returns the offset of the first whole-word occurrence of t in lower. With
// allowVersion a version run directly after the term (python3.11, java17) also counts.
func findTerm(lower, t string, allowVersion bool) int {
	pos := textutil.FindPhrase(lower, t)
	if !allowVersion {
		return pos
	}
	if v := findVersioned(lower, t); v >= 0 && (pos < 0 || v < pos) {
		return v
	}
	return pos
}

// findCased returns the offset of the first capitalized whole-word occurrence of t
// that is not joined to a following "-", "&" or "'", or of a versioned form.
func findCased(norm, lower, t string) int {
	best := findVersioned(lower, t)
	for from := 0; from < len(lower); {
		rel := textutil.FindPhrase(lower[from:], t)
		if rel < 0 {
			break
		}
		idx := from + rel
		from = idx + 1
		if best >= 0 && idx >= best {
			break
		}
		// FindPhrase only sees the suffix, so recheck the byte before it
		if idx > 0 && textutil.IsWordByte(lower[idx-1]) {
			continue
		}
		if norm[idx] < 'A' || norm[idx] > 'Z' {
			continue
		}
		if end := idx + len(t); end < len(norm) && strings.IndexByte("-&'", norm[end]) >= 0 {
			continue
		}
		return idx
	}
	return best
}

// findVersioned finds t immediately followed by an optional "v", digits and dot-separated
// digit groups, with a word boundary before t and after the version.
func findVersioned(lower, t string) int {
	last := t[len(t)-1]
	if !(last >= 'a' && last <= 'z') {
		return -1
	}
	for from := 0; ; {
		rel := strings.Index(lower[from:], t)
		if rel < 0 {
			return -1
		}
		idx := from + rel
		from = idx + 1
		if idx > 0 && textutil.IsWordByte(lower[idx-1]) {
			continue
		}
		if end := versionEnd(lower, idx+len(t)); end > 0 {
			if end == len(lower) || !textutil.IsWordByte(lower[end]) {
				return idx
			}
		}
	}
}

// versionEnd returns the end offset of a version run starting at i, or -1.
func versionEnd(s string, i int) int {
	if i < len(s) && s[i] == 'v' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return -1
	}
	for i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
