package ranking

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_StrongMatch(t *testing.T) {
	result, err := NewScorer(nil, fixedYear(2024)).Score(seniorPythonJob, pythonResume)
	require.NoError(t, err)

	assert.InDelta(t, 10.0/12.0, result.ComponentScores.SkillsMatch, 1e-9)
	assert.Equal(t, 1.0, result.ComponentScores.ExperienceMatch)
	assert.Equal(t, 1.0, result.ComponentScores.EducationMatch)
	assert.GreaterOrEqual(t, result.OverallScorePercent, 85)
	assert.LessOrEqual(t, result.OverallScorePercent, 89)

	assert.Equal(t, []string{"backend", "machine learning"}, result.MissingSkills)
	assert.Len(t, result.MatchedSkills, 10)
	assert.Equal(t, types.EducationBachelor, result.ResumeData.Education.Level)
	assert.InDelta(t, 7.0, result.ResumeData.Experience.TotalYearsEstimated, 1e-9)

	assert.Contains(t, result.Explanation, "Matched skills: aws, data science, django, docker, fastapi, flask, kubernetes, mongodb, postgresql, python (10 of 12 required)")
	assert.Contains(t, result.Explanation, "Missing required skills: backend, machine learning")
	assert.Contains(t, result.Explanation, "Meets experience requirement (5+ years; estimated 7.0 years)")
	assert.Contains(t, result.Explanation, "Seniority level matches (senior)")
	assert.Contains(t, result.Explanation, "Meets education requirement (bachelor)")
}

func TestScore_OverallIsWeightedSum(t *testing.T) {
	for _, resume := range []string{pythonResume, marketingResume} {
		result, err := NewScorer(nil, fixedYear(2024)).Score(seniorPythonJob, resume)
		require.NoError(t, err)

		c := result.ComponentScores
		want := 0.50*c.SkillsMatch + 0.30*c.ExperienceMatch + 0.15*c.EducationMatch + 0.05*c.KeywordOverlap
		assert.InDelta(t, want, result.OverallScore, 1e-9)
		assert.Contains(t, result.Explanation, "Overall match score: ")
	}
}

func TestScore_SeniorityKeywordEarnsPartialCredit(t *testing.T) {
	jd := "Senior Backend Engineer. Requires 3+ years of Go experience."
	resume := "Sam Lee\nSenior Software Engineer | Initech | 2021 - Present\n- Built Go services"

	result, err := NewScorer(nil, fixedYear(2022)).Score(jd, resume)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.ResumeData.Experience.TotalYearsEstimated, 1e-9)
	assert.Equal(t, seniorityCredit, result.ComponentScores.ExperienceMatch)
	assert.Contains(t, result.Explanation, "Has 1.0 years of experience (required: 3+)")
	assert.Contains(t, result.Explanation, "Seniority level matches (senior)")
}

func TestScore_NothingRequiredIsVacuouslyMet(t *testing.T) {
	result, err := NewScorer(nil, fixedYear(2024)).Score("We are hiring friendly people.", "I am friendly.")
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.ComponentScores.SkillsMatch)
	assert.Equal(t, 1.0, result.ComponentScores.ExperienceMatch)
	assert.Equal(t, 1.0, result.ComponentScores.EducationMatch)
	assert.Contains(t, result.Explanation, "No specific technical skills required")
	assert.Contains(t, result.Explanation, "No education requirement specified")
	assert.Empty(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
}

func TestScore_SkillsMatchNeverDropsWhenResumeSkillIsRequired(t *testing.T) {
	resume := "Engineer skilled in Python, Docker, PostgreSQL and AWS."
	jd := "Requires Kubernetes, Terraform and Rust."
	scorer := NewScorer(nil, fixedYear(2024))

	base, err := scorer.Score(jd, resume)
	require.NoError(t, err)
	require.Equal(t, 0.0, base.ComponentScores.SkillsMatch)

	prev := base.ComponentScores.SkillsMatch
	for _, skill := range []string{"Python", "Docker", "PostgreSQL", "AWS"} {
		jd += " Also " + skill + "."
		result, err := scorer.Score(jd, resume)
		require.NoError(t, err)
		got := result.ComponentScores.SkillsMatch
		assert.GreaterOrEqual(t, got, prev, "after adding %s", skill)
		assert.Contains(t, result.MatchedSkills, strings.ToLower(skill))
		prev = got
	}
	assert.InDelta(t, 4.0/7.0, prev, 1e-9)
}

func TestScore_ExperienceIgnoresResumeYearsWhenJobStatesNone(t *testing.T) {
	jd := "Senior backend engineer to build Python and Docker services."
	scorer := NewScorer(nil, fixedYear(2024))

	tests := []struct {
		name   string
		resume string
	}{
		{"no history", "I enjoy building Python services."},
		{"one year", "Software Engineer | Acme Corp | 2023 - Present\n- Built Python services"},
		{"ten years", "Software Engineer | Acme Corp | 2010 - 2020\n- Built Docker images"},
		{"stated years", "Engineer with 15 years of experience in Python."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scorer.Score(jd, tt.resume)
			require.NoError(t, err)
			assert.Equal(t, 0, result.JobRequirements.Years)
			assert.Equal(t, 1.0, result.ComponentScores.ExperienceMatch)
		})
	}
}

func TestScore_EmptyInput(t *testing.T) {
	s := NewScorer(nil, nil)

	_, err := s.Score("  ", pythonResume)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))

	var inputErr *types.InputError
	_, err = s.Score(seniorPythonJob, "")
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "resume_text", inputErr.Field)
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(nil, fixedYear(2024))
	first, err := s.Score(seniorPythonJob, pythonResume)
	require.NoError(t, err)
	second, err := s.Score(seniorPythonJob, pythonResume)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeEducationScore(t *testing.T) {
	tests := []struct {
		name     string
		required types.EducationLevel
		actual   types.EducationLevel
		want     float64
	}{
		{"no requirement", types.EducationUnknown, types.EducationUnknown, 1.0},
		{"met", types.EducationBachelor, types.EducationBachelor, 1.0},
		{"exceeded", types.EducationBachelor, types.EducationDoctorate, 1.0},
		{"below", types.EducationBachelor, types.EducationDiploma, 2.0 / 4.0},
		{"unknown", types.EducationMaster, types.EducationUnknown, 1.0 / 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, computeEducationScore(tt.required, tt.actual), 1e-9)
		})
	}
}

func TestComputeEducationScore_Monotonic(t *testing.T) {
	required := types.EducationMaster
	prev := -1.0
	for level := types.EducationUnknown; level <= types.EducationDoctorate; level++ {
		score := computeEducationScore(required, level)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestComputeExperienceScore(t *testing.T) {
	exp := types.ExperienceProfile{TotalYearsEstimated: 2, JobTitles: []string{"Lead Engineer"}}

	score, seniority := computeExperienceScore(types.JobRequirements{Years: 4}, exp)
	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Empty(t, seniority)

	score, seniority = computeExperienceScore(types.JobRequirements{Years: 4, Levels: []string{"lead"}}, exp)
	assert.Equal(t, seniorityCredit, score)
	assert.Equal(t, []string{"lead"}, seniority)

	// the seniority signal never lowers a better years score
	exp.TotalYearsEstimated = 10
	score, _ = computeExperienceScore(types.JobRequirements{Years: 4, Levels: []string{"lead"}}, exp)
	assert.Equal(t, 1.0, score)
}

func TestComputeKeywordOverlap_EmptyUnion(t *testing.T) {
	assert.Equal(t, 0.0, computeKeywordOverlap("the a", "of", map[string]bool{"the": true, "of": true}))
}
