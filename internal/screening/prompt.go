package screening

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/prompts"
	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/textutil"
)

// ErrLLMDisabled is returned by the summary operations when no LLM client is
// configured. It matches llm.ErrDisabled.
var ErrLLMDisabled = fmt.Errorf("llm summaries are disabled: %w", llm.ErrDisabled)

const maxFeedbackQuestionChars = 120

func buildInterviewPrompt(report *reporting.BatchReport) string {
	avg := report.Averages()
	entries := report.Entries()

	var feedback strings.Builder
	for i, e := range entries {
		q := e.Question
		if len(q) > maxFeedbackQuestionChars {
			q = q[:maxFeedbackQuestionChars] + "..."
		}
		fmt.Fprintf(&feedback, "%d. %s (%d%%): %s\n", i+1, q, e.Evaluation.OverallScorePercent, e.Evaluation.Explanation)
	}

	name := report.Candidate()
	if name == "" {
		name = "Unnamed candidate"
	}
	return prompts.Format(prompts.MustGet("screening.json", "evaluation-summary"), map[string]string{
		"CandidateName":    name,
		"Count":            strconv.Itoa(len(entries)),
		"OverallPercent":   strconv.Itoa(avg.OverallPercent),
		"RelevancePercent": strconv.Itoa(textutil.Percent(avg.Relevance)),
		"DepthPercent":     strconv.Itoa(textutil.Percent(avg.Depth)),
		"ClarityPercent":   strconv.Itoa(textutil.Percent(avg.Clarity)),
		"Feedback":         strings.TrimRight(feedback.String(), "\n"),
	})
}
