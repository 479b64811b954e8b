package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/types"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(&types.JobRequirements{
		Years:          5,
		Levels:         []string{"senior"},
		EducationLevel: types.EducationBachelor,
		RequiredSkills: []string{"python", "go", "docker", "aws", "kubernetes", "terraform", "redis"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "Years:      5")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "• kubernetes")
	assert.NotContains(t, output, "• terraform")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		OverallScorePercent: 72,
		ComponentScores:     types.ComponentScores{SkillsMatch: 0.5, ExperienceMatch: 1, EducationMatch: 1, KeywordOverlap: 0.25},
		MatchedSkills:       []string{"python"},
		MissingSkills:       []string{"kubernetes"},
		Explanation:         "Matched 1 of 2 required skills.",
	})
	output := buf.String()

	assert.Contains(t, output, "RESUME MATCH")
	assert.Contains(t, output, "Overall:    72/100")
	assert.Contains(t, output, "Keywords:   0.25")
	assert.Contains(t, output, "Missing Skills:")
	assert.Contains(t, output, "• kubernetes")
	assert.Contains(t, output, "Matched 1 of 2 required skills.")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var scores []ranking.CandidateScore
	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		scores = append(scores, ranking.CandidateScore{Rank: i + 1, CandidateID: id, OverallScorePercent: 90 - i})
	}
	scores[0].Name = "Jane Doe"
	scores[0].OverlapTerms = []string{"python", "django"}

	p.PrintRanking(scores)
	output := buf.String()

	assert.Contains(t, output, "Total candidates ranked: 6")
	assert.Contains(t, output, "#1  Jane Doe (a)")
	assert.Contains(t, output, "Terms: python, django")
	assert.Contains(t, output, "#5  e")
	assert.NotContains(t, output, "#6  f")
	assert.Contains(t, output, "... and 1 more candidates")
}

func TestPrintAnswerEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnswerEvaluation(&types.AnswerEvaluation{
		QuestionType:        types.QuestionBehavioral,
		RelevanceScore:      0.8,
		DepthScore:          0.4,
		ClarityScore:        0.9,
		OverallScorePercent: 70,
		Strengths:           []string{"Uses a clear structure"},
		Suggestions:         []string{"Quantify results with numbers where possible"},
	})
	output := buf.String()

	assert.Contains(t, output, "ANSWER EVALUATION")
	assert.Contains(t, output, "Type:       behavioral")
	assert.Contains(t, output, "Depth:      0.40")
	assert.Contains(t, output, "• Uses a clear structure")
	assert.NotContains(t, output, "Weaknesses:")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(&ranking.MatchSummary{
		Summary:        strings.Repeat("Strong backend profile with relevant cloud work. ", 3),
		Concerns:       []string{"No Kubernetes"},
		Recommendation: "interview",
	})
	output := buf.String()

	assert.Contains(t, output, "Recommendation: interview")
	assert.Contains(t, output, "• No Kubernetes")
	assert.NotContains(t, output, "...")
}

func TestPrinter_NilInputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)
	p.PrintMatchResult(nil)
	p.PrintRanking(nil)
	p.PrintAnswerEvaluation(nil)
	p.PrintSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_Width(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 7))
	assert.Nil(t, wrap("   ", 10))
}
