package ranking

import (
	"time"

	"github.com/jonathan/candidate-screener/internal/education"
	"github.com/jonathan/candidate-screener/internal/experience"
	"github.com/jonathan/candidate-screener/internal/parsing"
	"github.com/jonathan/candidate-screener/internal/skills"
	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

// Scorer computes weighted resume match scores. It holds only immutable extractors
// and is safe for concurrent use.
type Scorer struct {
	parser     *parsing.RequirementParser
	skills     *skills.Extractor
	education  *education.Extractor
	experience *experience.Extractor
	stopWords  map[string]bool
}

// NewScorer creates a Scorer bound to v. now is the clock used for open-ended date
// ranges; nil means time.Now. A nil v uses the default vocabulary.
func NewScorer(v *vocab.Vocabulary, now func() time.Time) *Scorer {
	if v == nil {
		v = vocab.Default()
	}
	return &Scorer{
		parser:     parsing.NewRequirementParser(v),
		skills:     skills.NewExtractor(v),
		education:  education.NewExtractor(v),
		experience: experience.NewExtractor(v, now),
		stopWords:  v.StopWordSet(),
	}
}

// Requirements parses the requirements of a job description
func (s *Scorer) Requirements(jd string) types.JobRequirements {
	return s.parser.Parse(jd)
}

// ExtractResume runs all three extractors over a resume
func (s *Scorer) ExtractResume(resume string) types.ResumeData {
	return types.ResumeData{
		Skills:     s.skills.Extract(resume),
		Education:  s.education.Extract(resume),
		Experience: s.experience.Extract(resume),
	}
}

// Score matches resume against jd. Both texts must be non-empty.
func (s *Scorer) Score(jd, resume string) (*types.MatchResult, error) {
	if err := types.RequireText("job_description", jd); err != nil {
		return nil, err
	}
	if err := types.RequireText("resume_text", resume); err != nil {
		return nil, err
	}
	return s.score(s.parser.Parse(jd), jd, resume), nil
}

// ScoreWithRequirements matches resume against requirements parsed earlier from jd.
// It lets callers ranking many resumes parse the job description once.
func (s *Scorer) ScoreWithRequirements(reqs types.JobRequirements, jd, resume string) (*types.MatchResult, error) {
	if err := types.RequireText("resume_text", resume); err != nil {
		return nil, err
	}
	return s.score(reqs, jd, resume), nil
}

func (s *Scorer) score(reqs types.JobRequirements, jd, resume string) *types.MatchResult {
	data := s.ExtractResume(resume)

	skillsScore, matched, missing := computeSkillsScore(reqs.RequiredSkills, data.Skills)
	experienceScore, seniority := computeExperienceScore(reqs, data.Experience)
	scores := types.ComponentScores{
		SkillsMatch:     skillsScore,
		ExperienceMatch: experienceScore,
		EducationMatch:  computeEducationScore(reqs.EducationLevel, data.Education.Level),
		KeywordOverlap:  computeKeywordOverlap(jd, resume, s.stopWords),
	}
	overall := weightedOverall(scores)

	x := explanation{
		overall:    overall,
		scores:     scores,
		reqs:       reqs,
		matched:    matched,
		missing:    missing,
		seniority:  seniority,
		totalYears: data.Experience.TotalYearsEstimated,
		education:  data.Education.Level,
	}

	return &types.MatchResult{
		OverallScore:        overall,
		OverallScorePercent: textutil.Percent(overall),
		ComponentScores:     scores,
		Explanation:         x.String(),
		MatchedSkills:       matched,
		MissingSkills:       missing,
		ResumeData:          data,
		JobRequirements:     reqs,
	}
}
