// Package parsing turns job descriptions into structured requirements using the same
// vocabularies and matching rules as resume extraction, so both sides compare cleanly.
package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-screener/internal/education"
	"github.com/jonathan/candidate-screener/internal/skills"
	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

const maxRequiredYears = 50

var requiredYears = regexp.MustCompile(`(?i)\b(\d{1,2})(?:[ \t]*[-–][ \t]*\d{1,2})?[ \t]*\+?[ \t]*(?:years?|yrs?)\b`)

// RequirementParser extracts JobRequirements from job descriptions. It is safe for
// concurrent use.
type RequirementParser struct {
	skills    *skills.Extractor
	education *education.Extractor
	levels    []string
	fields    []string
}

// NewRequirementParser creates a parser bound to v. A nil v uses the default vocabulary.
func NewRequirementParser(v *vocab.Vocabulary) *RequirementParser {
	if v == nil {
		v = vocab.Default()
	}
	return &RequirementParser{
		skills:    skills.NewExtractor(v),
		education: education.NewExtractor(v),
		levels:    v.SeniorityLevels(),
		fields:    v.FieldsOfStudy(),
	}
}

// Parse returns the requirements stated in jd. It never fails; a description without
// recognizable requirements yields zero values, which scoring treats as unspecified.
func (p *RequirementParser) Parse(jd string) types.JobRequirements {
	norm := textutil.Normalize(jd)
	lower := textutil.LowerASCII(norm)

	reqs := types.JobRequirements{
		Years:           parseYears(norm),
		Levels:          []string{},
		EducationLevel:  types.EducationUnknown,
		EducationFields: []string{},
		RequiredSkills:  p.skills.ExtractTechnical(norm),
	}
	if reqs.RequiredSkills == nil {
		reqs.RequiredSkills = []string{}
	}

	for _, level := range p.levels {
		if textutil.ContainsPhrase(lower, level) {
			reqs.Levels = append(reqs.Levels, level)
		}
	}

	degrees := p.education.FindDegrees(norm)
	for _, d := range degrees {
		if d.Level > reqs.EducationLevel {
			reqs.EducationLevel = d.Level
		}
	}
	reqs.EducationFields = p.educationFields(lower, degrees)
	return reqs
}

func parseYears(text string) int {
	m := requiredYears.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if years > maxRequiredYears {
		return maxRequiredYears
	}
	return years
}

type fieldSpan struct {
	name       string
	start, end int
}

// educationFields merges vocabulary fields found anywhere in the text with fields
// captured next to degree mentions, ordered by position. A vocabulary match inside a
// longer match ("engineering" within "software engineering") is dropped.
func (p *RequirementParser) educationFields(lower string, degrees []education.DegreeMatch) []string {
	var spans []fieldSpan
	for _, f := range p.fields {
		if pos := textutil.FindPhrase(lower, f); pos >= 0 {
			spans = append(spans, fieldSpan{name: f, start: pos, end: pos + len(f)})
		}
	}
	for _, d := range degrees {
		if d.Field != "" {
			start := d.FieldEnd - len(d.Field)
			spans = append(spans, fieldSpan{name: strings.ToLower(d.Field), start: start, end: d.FieldEnd})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	fields := make([]string, 0, len(spans))
	coveredUntil := -1
	for _, s := range spans {
		if s.end <= coveredUntil {
			continue
		}
		fields = append(fields, s.name)
		if s.end > coveredUntil {
			coveredUntil = s.end
		}
	}
	return textutil.Dedupe(fields)
}
