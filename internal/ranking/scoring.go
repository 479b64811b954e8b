// Package ranking scores resumes against job descriptions and ranks candidates.
package ranking

import (
	"sort"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Component weights. They sum to 1.
const (
	skillsWeight     = 0.50
	experienceWeight = 0.30
	educationWeight  = 0.15
	keywordWeight    = 0.05
)

const (
	// metThreshold is the score at which a component counts as satisfied
	metThreshold = 0.99
	// seniorityCredit is the experience score granted when a required seniority level
	// appears in one of the candidate's job titles
	seniorityCredit = 0.8
	keywordMinLen   = 2
)

// computeSkillsScore returns the share of required skills present in the resume, and
// the matched and missing skills sorted by name. Nothing required scores 1.0.
func computeSkillsScore(required []string, resume types.SkillProfile) (float64, []string, []string) {
	matched, missing := []string{}, []string{}
	if len(required) == 0 {
		return 1.0, matched, missing
	}

	have := make(map[string]bool, resume.TotalCount)
	for _, s := range resume.All() {
		have[s] = true
	}
	for _, s := range required {
		if have[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return float64(len(matched)) / float64(len(required)), matched, missing
}

// computeExperienceScore blends the years ratio with the seniority signal. Either one
// alone can earn credit; the seniority signal never lowers the years score.
func computeExperienceScore(reqs types.JobRequirements, exp types.ExperienceProfile) (float64, []string) {
	yearsScore := 1.0
	if reqs.Years > 0 {
		yearsScore = textutil.Clamp01(exp.TotalYearsEstimated / float64(reqs.Years))
	}

	seniority := matchedSeniority(reqs.Levels, exp.JobTitles)
	if len(seniority) > 0 && yearsScore < seniorityCredit {
		return seniorityCredit, seniority
	}
	return yearsScore, seniority
}

// matchedSeniority returns the required levels that occur in any job title
func matchedSeniority(levels, titles []string) []string {
	found := []string{}
	for _, level := range levels {
		for _, title := range titles {
			if textutil.ContainsPhrase(textutil.LowerASCII(title), level) {
				found = append(found, level)
				break
			}
		}
	}
	return found
}

// computeEducationScore returns 1.0 when the requirement is met or absent, otherwise
// the ratio of ordinals shifted by one so unknown still earns partial credit.
func computeEducationScore(required, actual types.EducationLevel) float64 {
	if required == types.EducationUnknown || actual >= required {
		return 1.0
	}
	return float64(actual.Ordinal()+1) / float64(required.Ordinal()+1)
}

// computeKeywordOverlap is the Jaccard similarity of the stop-word-free token sets
func computeKeywordOverlap(jd, resume string, stopWords map[string]bool) float64 {
	return textutil.Jaccard(
		textutil.TokenSet(jd, stopWords, keywordMinLen),
		textutil.TokenSet(resume, stopWords, keywordMinLen),
	)
}

// weightedOverall combines the component scores and clamps the result
func weightedOverall(c types.ComponentScores) float64 {
	return textutil.Clamp01(skillsWeight*c.SkillsMatch +
		experienceWeight*c.ExperienceMatch +
		educationWeight*c.EducationMatch +
		keywordWeight*c.KeywordOverlap)
}
