package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
)

const maxOverlapTerms = 5

// CandidateScore is one candidate's position in a shortlist
type CandidateScore struct {
	Rank                int                `json:"rank"`
	CandidateID         string             `json:"candidate_id"`
	Name                string             `json:"name,omitempty"`
	OverallScore        float64            `json:"overall_score"`
	OverallScorePercent int                `json:"overall_score_percent"`
	OverlapTerms        []string           `json:"overlap_terms"`
	Rationale           string             `json:"rationale"`
	Result              *types.MatchResult `json:"result"`
}

// RankCandidates scores every candidate against jd and returns them best first.
// The job description is parsed once.
func (s *Scorer) RankCandidates(jd string, candidates []types.CandidateInput) ([]CandidateScore, error) {
	if err := types.RequireText("job_description", jd); err != nil {
		return nil, err
	}
	reqs := s.parser.Parse(jd)

	scored := make([]CandidateScore, 0, len(candidates))
	for _, c := range candidates {
		cs, err := s.ScoreCandidate(reqs, jd, c)
		if err != nil {
			return nil, err
		}
		scored = append(scored, cs)
	}
	return Rank(scored), nil
}

// ScoreCandidate scores a single candidate against requirements parsed from jd. The
// returned score has no rank until passed through Rank.
func (s *Scorer) ScoreCandidate(reqs types.JobRequirements, jd string, c types.CandidateInput) (CandidateScore, error) {
	result, err := s.ScoreWithRequirements(reqs, jd, c.ResumeText)
	if err != nil {
		return CandidateScore{}, fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	terms := s.OverlapTerms(jd, c.ResumeText, maxOverlapTerms)
	return CandidateScore{
		CandidateID:         c.ID,
		Name:                c.Name,
		OverallScore:        result.OverallScore,
		OverallScorePercent: result.OverallScorePercent,
		OverlapTerms:        terms,
		Rationale:           generateNotes(result, terms),
		Result:              result,
	}, nil
}

// Rank sorts scores by overall score, descending, breaking ties by candidate id, and
// assigns 1-based ranks.
func Rank(scores []CandidateScore) []CandidateScore {
	ranked := append([]CandidateScore(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// OverlapTerms returns up to n tokens shared by jd and resume, longest first
func (s *Scorer) OverlapTerms(jd, resume string, n int) []string {
	jdTokens := textutil.TokenSet(jd, s.stopWords, keywordMinLen)
	resumeTokens := textutil.TokenSet(resume, s.stopWords, keywordMinLen)

	shared := make([]string, 0)
	for tok := range jdTokens {
		if resumeTokens[tok] {
			shared = append(shared, tok)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		if len(shared[i]) != len(shared[j]) {
			return len(shared[i]) > len(shared[j])
		}
		return shared[i] < shared[j]
	})
	if len(shared) > n {
		shared = shared[:n]
	}
	return shared
}

// generateNotes creates a brief explanation of a candidate's ranking
func generateNotes(result *types.MatchResult, terms []string) string {
	var parts []string
	scores := result.ComponentScores

	// Skill match description
	switch {
	case len(result.JobRequirements.RequiredSkills) == 0:
		parts = append(parts, "No required skills listed")
	case len(result.MatchedSkills) == 0:
		parts = append(parts, "No skill matches")
	case scores.SkillsMatch >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(result.MatchedSkills, ", ")))
	case scores.SkillsMatch >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(result.MatchedSkills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(result.MatchedSkills, ", ")))
	}

	// Experience description
	switch {
	case scores.ExperienceMatch >= metThreshold:
		parts = append(parts, "Meets experience requirement")
	case scores.ExperienceMatch >= 0.5:
		parts = append(parts, "Partial experience match")
	default:
		parts = append(parts, "Limited experience")
	}

	// Keyword match description
	if len(terms) > 0 {
		parts = append(parts, fmt.Sprintf("Top overlap terms: %s", strings.Join(terms, ", ")))
	}

	return strings.Join(parts, ". ")
}
