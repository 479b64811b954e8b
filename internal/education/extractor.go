// Package education recognizes degrees, fields of study, institutions and graduation
// years in free text.
package education

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

const (
	maxFieldLen     = 60
	maxWindowLen    = 150
	maxLookBehind   = 80
	restateGapBytes = 3
)

var (
	fieldIntro = regexp.MustCompile(`^[ \t]*(?:degree[ \t]+)?(?:in|of)[ \t]+`)
	fieldStop  = regexp.MustCompile(`(?i)[.\n,;:()|]|[ \t](?:from|at|or|with|while|preferred|required|desired|is|are|-|–|—)(?:[ \t]|$)|\b(?:19|20)\d{2}\b`)

	institutionNamed = regexp.MustCompile(`((?:[A-Z][A-Za-z&.'-]*[ \t]+){0,5}(?:University|College|Institute|Polytechnic|Academy|School)(?:[ \t]+(?:of|for|at|in)(?:[ \t]+(?:the[ \t]+)?[A-Z][A-Za-z&.'-]*)+)?)`)
	institutionAfter = regexp.MustCompile(`\b(?:from|at)[ \t]+([A-Z][A-Za-z&.'-]*(?:[ \t]+[A-Z][A-Za-z&.'-]*){0,5})`)
	institutionComma = regexp.MustCompile(`,[ \t]*([A-Z][A-Za-z&.'-]*(?:[ \t]+[A-Z][A-Za-z&.'-]*){0,5})`)
	yearRange        = regexp.MustCompile(`\b((?:19|20)\d{2})(?:[ \t]*(?:-|–|—|to)[ \t]*((?:19|20)\d{2}))?\b`)
)

// DegreeMatch is one accepted degree mention. Offsets index the normalized text.
type DegreeMatch struct {
	Level    types.EducationLevel
	Start    int
	End      int
	Degree   string
	Field    string
	FieldEnd int
}

// Text returns the degree with its field, e.g. "Bachelor of Science in Physics"
func (m DegreeMatch) Text() string {
	if m.Field == "" {
		return m.Degree
	}
	return m.Degree + " in " + m.Field
}

// notInstitution holds words that can follow a degree after a comma without naming a
// school
var notInstitution = map[string]bool{
	"gpa": true, "honors": true, "minor": true, "major": true, "cum": true, "magna": true,
	"summa": true, "graduated": true, "expected": true, "class": true, "concentration": true,
	"thesis": true, "dean's": true,
}

// Extractor applies an ordered list of degree rules. It is safe for concurrent use.
type Extractor struct {
	rules    []DegreeRule
	fields   []string
	fieldSet map[string]bool
	vocab    *vocab.Vocabulary
}

// NewExtractor creates an Extractor using DefaultRules. Fields of study from v are used
// to recognize a field written directly after an abbreviation ("B.S. Computer Science").
// A nil v uses the default vocabulary.
func NewExtractor(v *vocab.Vocabulary) *Extractor {
	return NewExtractorWithRules(v, DefaultRules)
}

// NewExtractorWithRules creates an Extractor with a custom rule order
func NewExtractorWithRules(v *vocab.Vocabulary, rules []DegreeRule) *Extractor {
	if v == nil {
		v = vocab.Default()
	}
	fields := v.FieldsOfStudy()
	// longest first so "computer science" wins over "science"
	sort.SliceStable(fields, func(i, j int) bool { return len(fields[i]) > len(fields[j]) })
	fieldSet := make(map[string]bool, len(fields))
	for _, f := range fields {
		fieldSet[f] = true
	}
	return &Extractor{
		rules:    append([]DegreeRule(nil), rules...),
		fields:   fields,
		fieldSet: fieldSet,
		vocab:    v,
	}
}

// Extract returns the education profile of text. It never fails; text without any
// recognizable degree yields an empty profile with level unknown.
func (e *Extractor) Extract(text string) types.EducationProfile {
	norm := textutil.Normalize(text)
	matches := e.FindDegrees(norm)

	entries := make([]types.EducationEntry, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for i, m := range matches {
		key := strings.ToLower(m.Text())
		if seen[key] {
			continue
		}
		seen[key] = true

		prevEnd, nextStart := 0, len(norm)
		if i > 0 {
			prevEnd = lineEnd(norm, matches[i-1].FieldEnd)
		}
		if i+1 < len(matches) {
			nextStart = matches[i+1].Start
		}
		institution, year := e.details(norm, m, prevEnd, nextStart)

		entries = append(entries, types.EducationEntry{
			Degree:      m.Text(),
			Field:       m.Field,
			Institution: institution,
			Year:        year,
			Level:       m.Level,
		})
	}
	return types.NewEducationProfile(entries)
}

// Level returns the highest education level mentioned in text
func (e *Extractor) Level(text string) types.EducationLevel {
	level := types.EducationUnknown
	for _, m := range e.FindDegrees(textutil.Normalize(text)) {
		if m.Level > level {
			level = m.Level
		}
	}
	return level
}

// FindDegrees returns the accepted degree matches of normalized text in position
// order. Rules are applied in order; a match overlapping an already accepted span is
// dropped, as is an abbreviation restating the degree just before it
// ("Master of Business Administration (MBA)").
func (e *Extractor) FindDegrees(norm string) []DegreeMatch {
	lower := textutil.LowerASCII(norm)
	var accepted []DegreeMatch

	for _, rule := range e.rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(lower, -1) {
			start, end := loc[0], loc[1]
			if len(loc) >= 4 && loc[2] >= 0 {
				start, end = loc[2], loc[3]
			}
			// keep the closing dot of dotted abbreviations such as "B.S."
			if end < len(lower) && lower[end] == '.' && strings.Contains(lower[start:end], ".") {
				end++
			}
			if overlapsAny(accepted, start, end) || restatesPrevious(lower, accepted, rule.Level, start) {
				continue
			}
			accepted = append(accepted, DegreeMatch{Level: rule.Level, Start: start, End: end})
		}
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })
	for i := range accepted {
		m := &accepted[i]
		m.Degree = strings.Join(strings.Fields(norm[m.Start:m.End]), " ")
		limit := len(norm)
		if i+1 < len(accepted) {
			limit = accepted[i+1].Start
		}
		m.Field, m.FieldEnd = e.captureField(norm, lower, m.End, limit)
	}
	return accepted
}

func overlapsAny(accepted []DegreeMatch, start, end int) bool {
	for _, a := range accepted {
		if start < a.End && end > a.Start {
			return true
		}
	}
	return false
}

func restatesPrevious(lower string, accepted []DegreeMatch, level types.EducationLevel, start int) bool {
	for _, a := range accepted {
		if a.Level != level || a.End > start || start-a.End > restateGapBytes {
			continue
		}
		if strings.Trim(lower[a.End:start], " (/,") == "" {
			return true
		}
	}
	return false
}

// captureField returns the field of study following a degree and the offset where it
// ends. With no field the returned offset is the degree end.
func (e *Extractor) captureField(norm, lower string, from, limit int) (string, int) {
	if limit < from {
		limit = from
	}
	rest := lower[from:limit]
	offset := 0
	if loc := fieldIntro.FindStringIndex(rest); loc != nil {
		offset = loc[1]
	} else {
		// "B.S. Computer Science" or "B.S., Computer Science"
		trimmed := strings.TrimLeft(rest, " \t,")
		for _, f := range e.fields {
			if strings.HasPrefix(trimmed, f) && textutil.FindPhrase(trimmed, f) == 0 {
				start := from + len(rest) - len(trimmed)
				return norm[start : start+len(f)], start + len(f)
			}
		}
		return "", from
	}

	body := rest[offset:]
	if loc := fieldStop.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", from
	}

	start := from + offset
	field := strings.TrimSpace(norm[start : start+len(body)])
	if len(field) > maxFieldLen {
		field = strings.TrimSpace(field[:maxFieldLen])
		if i := strings.LastIndexByte(field, ' '); i > 0 {
			field = field[:i]
		}
	}
	return field, start + len(field)
}

// details finds the institution and year belonging to a degree match. The window after
// the degree runs through the end of the following line, bounded by the next degree.
// When nothing is found there, the current line and the one before it are used, never
// reaching back into the line of the previous degree. A bare capitalized phrase after a
// comma only counts in the window after the degree.
func (e *Extractor) details(norm string, m DegreeMatch, prevEnd, nextStart int) (string, string) {
	after := windowAfter(norm, m.FieldEnd, nextStart)
	before := windowBefore(norm, m.Start, prevEnd)

	institution := findInstitution(after)
	if institution == "" {
		institution = e.institutionAfterComma(after)
	}
	if institution == "" {
		institution = findInstitution(before)
	}
	year := findYear(after)
	if year == "" {
		year = findYear(before)
	}
	return institution, year
}

func windowAfter(norm string, from, limit int) string {
	end := limit
	if nl := strings.IndexByte(norm[from:end], '\n'); nl >= 0 {
		lineEnd := from + nl + 1
		if next := strings.IndexByte(norm[lineEnd:end], '\n'); next >= 0 {
			end = lineEnd + next
		}
	}
	if end-from > maxWindowLen {
		end = from + maxWindowLen
	}
	return norm[from:end]
}

func windowBefore(norm string, to, limit int) string {
	if limit >= to {
		return ""
	}
	start := to - maxLookBehind
	if start < limit {
		start = limit
	}
	window := norm[start:to]
	if cut := strings.LastIndexByte(window, '\n'); cut >= 0 {
		if prev := strings.LastIndexByte(window[:cut], '\n'); prev >= 0 {
			window = window[prev+1:]
		}
	}
	return window
}

// lineEnd returns the offset just past the line containing i
func lineEnd(norm string, i int) int {
	if nl := strings.IndexByte(norm[i:], '\n'); nl >= 0 {
		return i + nl + 1
	}
	return len(norm)
}

func findInstitution(window string) string {
	if loc := institutionNamed.FindStringSubmatch(window); loc != nil {
		return strings.TrimRight(strings.Join(strings.Fields(loc[1]), " "), ".,")
	}
	if loc := institutionAfter.FindStringSubmatch(window); loc != nil {
		return strings.TrimRight(strings.Join(strings.Fields(loc[1]), " "), ".,")
	}
	return ""
}

// institutionAfterComma returns the first capitalized phrase following a comma in
// window that is neither a field of study nor a known non-name word
func (e *Extractor) institutionAfterComma(window string) string {
	for _, m := range institutionComma.FindAllStringSubmatch(window, -1) {
		name := strings.TrimRight(strings.Join(strings.Fields(m[1]), " "), ".,")
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		first := strings.Fields(lower)[0]
		if e.fieldSet[lower] || notInstitution[first] || e.vocab.IsNonCompanyWord(first) {
			continue
		}
		return name
	}
	return ""
}

// findYear returns the first year in window, or the end year of the first range
func findYear(window string) string {
	m := yearRange.FindStringSubmatch(window)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return m[2]
	}
	return m[1]
}
