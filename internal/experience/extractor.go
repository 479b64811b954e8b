// Package experience recognizes job titles, employers, durations and achievement
// bullets in resume text and estimates total years of experience.
package experience

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

const (
	maxTitleLineWords = 12
	maxTitleWords     = 8
	maxCompanyWords   = 6
)

type section int

const (
	sectionOther section = iota
	sectionWork
	sectionExcluded
)

var sectionHeadings = map[string]section{
	"experience":              sectionWork,
	"work experience":         sectionWork,
	"professional experience": sectionWork,
	"relevant experience":     sectionWork,
	"employment":              sectionWork,
	"employment history":      sectionWork,
	"work history":            sectionWork,
	"career history":          sectionWork,
	"projects":                sectionWork,
	"education":               sectionExcluded,
	"skills":                  sectionExcluded,
	"technical skills":        sectionExcluded,
	"certifications":          sectionExcluded,
	"languages":               sectionExcluded,
	"interests":               sectionExcluded,
	"references":              sectionExcluded,
	"summary":                 sectionOther,
	"profile":                 sectionOther,
	"contact":                 sectionOther,
}

var titleConnectors = map[string]bool{
	"of": true, "and": true, "for": true, "the": true, "in": true, "to": true, "&": true, "/": true,
}

// Extractor parses work history. It is safe for concurrent use.
type Extractor struct {
	vocab         *vocab.Vocabulary
	titleKeywords []string
	levels        []string
	company       *regexp.Regexp
	now           func() time.Time
}

// NewExtractor creates an Extractor bound to v. now supplies the year used for
// open-ended ranges such as "2021 - Present"; nil means time.Now. A nil v uses the
// default vocabulary.
func NewExtractor(v *vocab.Vocabulary, now func() time.Time) *Extractor {
	if v == nil {
		v = vocab.Default()
	}
	if now == nil {
		now = time.Now
	}

	suffixes := v.CompanySuffixes()
	for i, s := range suffixes {
		suffixes[i] = regexp.QuoteMeta(s)
	}
	company := regexp.MustCompile(`((?:[A-Z][A-Za-z0-9&'.-]*[ \t]+){1,4}(?i:` + strings.Join(suffixes, "|") + `)\b\.?)`)

	return &Extractor{
		vocab:         v,
		titleKeywords: v.TitleKeywords(),
		levels:        v.SeniorityLevels(),
		company:       company,
		now:           now,
	}
}

// Extract returns the experience profile of text. It never fails.
func (e *Extractor) Extract(text string) types.ExperienceProfile {
	profile := types.EmptyExperienceProfile()
	norm := textutil.Normalize(text)
	if norm == "" {
		return profile
	}

	var titles, companies, durations []string
	currentYear := e.now().Year()
	total, ranged := 0.0, false
	current := sectionOther

	lines := strings.Split(norm, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" || ruleLine.MatchString(line) {
			continue
		}
		if s, ok := heading(line); ok {
			current = s
			continue
		}
		if current == sectionExcluded {
			continue
		}

		if loc := bulletStart.FindStringIndex(line); loc != nil {
			if achievement := strings.TrimSpace(line[loc[1]:]); achievement != "" {
				profile.Achievements = append(profile.Achievements, achievement)
			}
			continue
		}

		duration, _ := findDuration(line)
		if duration != "" {
			durations = append(durations, duration)
			if years, ok := rangeYears(duration, currentYear); ok {
				total += years
				ranged = true
			}
		}

		entry, ok := e.parseTitleLine(line)
		if ok && entry.Duration == "" && entry.Company == "" {
			// bare title, details on the next line
			if j := nextContentLine(lines, i+1); j > 0 {
				if company, d := e.parseDetailLine(lines[j]); d != "" {
					entry.Company, entry.Duration = company, d
					durations = append(durations, d)
					if years, ok := rangeYears(d, currentYear); ok {
						total += years
						ranged = true
					}
					i = j
				}
			}
		}
		if ok && (entry.Company != "" || isRange(entry.Duration, currentYear)) {
			profile.Entries = append(profile.Entries, entry)
			titles = append(titles, entry.Title)
			if entry.Company != "" {
				companies = append(companies, entry.Company)
			}
			continue
		}

		if c := e.standaloneCompany(line); c != "" {
			companies = append(companies, c)
		}
	}

	if !ranged {
		total, _ = explicitYears(norm)
	}

	profile.JobTitles = textutil.Dedupe(titles)
	profile.Companies = textutil.Dedupe(companies)
	profile.Durations = textutil.Dedupe(durations)
	profile.TotalYearsEstimated = math.Round(total*10) / 10
	return profile
}

// parseTitleLine recognizes "Title | Company | Duration" style lines. ok reports
// whether the line starts with a title; company and duration may still be empty.
func (e *Extractor) parseTitleLine(line string) (types.ExperienceEntry, bool) {
	if textutil.WordCount(line) > maxTitleLineWords {
		return types.ExperienceEntry{}, false
	}
	duration, loc := findDuration(line)
	rest := line
	if loc != nil {
		rest = line[:loc[0]] + " | " + line[loc[1]:]
	}

	segments := splitSegments(rest)
	if len(segments) == 0 || !e.isTitle(segments[0]) {
		return types.ExperienceEntry{}, false
	}
	entry := types.ExperienceEntry{Title: segments[0], Duration: duration}
	for _, seg := range segments[1:] {
		if e.isCompany(seg) {
			entry.Company = seg
			break
		}
	}
	return entry, true
}

// parseDetailLine reads "Company | Duration" lines that follow a bare title
func (e *Extractor) parseDetailLine(line string) (string, string) {
	if bulletStart.MatchString(line) || textutil.WordCount(line) > maxTitleLineWords {
		return "", ""
	}
	duration, loc := findDuration(line)
	if loc == nil {
		return "", ""
	}
	for _, seg := range splitSegments(line[:loc[0]] + " | " + line[loc[1]:]) {
		if e.isCompany(seg) && !e.isTitle(seg) {
			return seg, duration
		}
	}
	return "", duration
}

func splitSegments(line string) []string {
	parts := separators.Split(line, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, " \t,;:|"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (e *Extractor) isTitle(seg string) bool {
	if textutil.WordCount(seg) > maxTitleWords || strings.ContainsAny(seg, "@:") {
		return false
	}
	for _, w := range strings.Fields(seg) {
		if !startsUpper(w) && !titleConnectors[w] {
			return false
		}
	}
	lower := textutil.LowerASCII(seg)
	for _, kw := range e.titleKeywords {
		if textutil.ContainsPhrase(lower, kw) {
			return true
		}
	}
	return false
}

func (e *Extractor) isCompany(seg string) bool {
	if !startsUpper(seg) || textutil.WordCount(seg) > maxCompanyWords || strings.ContainsAny(seg, "@:/") {
		return false
	}
	for _, w := range strings.Fields(seg) {
		if !e.vocab.IsNonCompanyWord(strings.Trim(w, ".,")) && !isNumeric(w) {
			return true
		}
	}
	return false
}

// standaloneCompany finds "Acme Corp" style names outside title lines
func (e *Extractor) standaloneCompany(line string) string {
	if strings.ContainsAny(line, "@:") {
		return ""
	}
	m := e.company.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(m[1])
	lower := textutil.LowerASCII(name)
	for _, kw := range append(e.titleKeywords, e.levels...) {
		if textutil.ContainsPhrase(lower, kw) {
			return ""
		}
	}
	return name
}

// heading reports whether line is a known section heading
func heading(line string) (section, bool) {
	key := strings.TrimSpace(strings.TrimRight(textutil.LowerASCII(line), ": "))
	s, ok := sectionHeadings[key]
	return s, ok
}

func nextContentLine(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if lines[j] != "" && !ruleLine.MatchString(lines[j]) {
			return j
		}
	}
	return -1
}

func isRange(duration string, currentYear int) bool {
	_, ok := rangeYears(duration, currentYear)
	return ok
}

func startsUpper(s string) bool {
	return s != "" && ((s[0] >= 'A' && s[0] <= 'Z') || (s[0] >= '0' && s[0] <= '9'))
}

func isNumeric(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return w != ""
}
