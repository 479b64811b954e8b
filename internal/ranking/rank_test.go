package ranking

import (
	"testing"

	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates_BestFirst(t *testing.T) {
	candidates := []types.CandidateInput{
		{ID: "jane", Name: "Jane Doe", ResumeText: marketingResume},
		{ID: "john", Name: "John Smith", ResumeText: pythonResume},
	}

	ranked, err := NewScorer(nil, fixedYear(2024)).RankCandidates(seniorPythonJob, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "john", ranked[0].CandidateID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Greater(t, ranked[0].OverallScore, ranked[1].OverallScore)
	assert.Contains(t, ranked[0].Rationale, "Strong skill match")
	assert.Contains(t, ranked[1].Rationale, "No skill matches")
	assert.NotEmpty(t, ranked[0].OverlapTerms)
}

func TestRank_TiesBreakByID(t *testing.T) {
	ranked := Rank([]CandidateScore{
		{CandidateID: "c", OverallScore: 0.5},
		{CandidateID: "a", OverallScore: 0.5},
		{CandidateID: "b", OverallScore: 0.9},
	})

	ids := []string{ranked[0].CandidateID, ranked[1].CandidateID, ranked[2].CandidateID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankCandidates_EmptyResumeFails(t *testing.T) {
	_, err := NewScorer(nil, nil).RankCandidates(seniorPythonJob, []types.CandidateInput{{ID: "x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Contains(t, err.Error(), "candidate x")
}

func TestOverlapTerms_LongestFirst(t *testing.T) {
	terms := NewScorer(nil, nil).OverlapTerms("kubernetes and go and docker", "docker, go, kubernetes", 2)
	assert.Equal(t, []string{"kubernetes", "docker"}, terms)
}
