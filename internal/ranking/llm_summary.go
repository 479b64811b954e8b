package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/prompts"
	"github.com/jonathan/candidate-screener/internal/types"
)

// maxPromptJobChars bounds the job description quoted in a summary prompt
const maxPromptJobChars = 4000

// Recommendations a summary may carry
var validRecommendations = map[string]bool{"advance": true, "review": true, "decline": true}

// MatchSummary is a narrative note about a match result. It never alters scores.
type MatchSummary struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Recommendation string   `json:"recommendation"`
}

// SummarizeMatch asks client for a short screening note about result. An unknown
// recommendation is replaced with "review".
func SummarizeMatch(ctx context.Context, client llm.Client, jd, candidateName string, result *types.MatchResult) (*MatchSummary, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is not configured")
	}
	if result == nil {
		return nil, &types.InputError{Field: "result", Message: "must not be nil"}
	}

	jsonResp, err := client.GenerateJSON(ctx, buildSummaryPrompt(jd, candidateName, result), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	var summary MatchSummary
	if err := json.Unmarshal([]byte(jsonResp), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w (content: %s)", err, jsonResp)
	}

	summary.Recommendation = strings.ToLower(strings.TrimSpace(summary.Recommendation))
	if !validRecommendations[summary.Recommendation] {
		summary.Recommendation = "review"
	}
	if summary.Strengths == nil {
		summary.Strengths = []string{}
	}
	if summary.Concerns == nil {
		summary.Concerns = []string{}
	}
	return &summary, nil
}

func buildSummaryPrompt(jd, candidateName string, result *types.MatchResult) string {
	if len(jd) > maxPromptJobChars {
		jd = jd[:maxPromptJobChars]
	}
	if candidateName == "" {
		candidateName = "Not specified"
	}
	return prompts.Format(prompts.MustGet("screening.json", "match-summary"), map[string]string{
		"JobDescription": strings.TrimSpace(jd),
		"OverallPercent": fmt.Sprintf("%d", result.OverallScorePercent),
		"MatchedSkills":  joinOrNone(result.MatchedSkills),
		"MissingSkills":  joinOrNone(result.MissingSkills),
		"Explanation":    result.Explanation,
		"CandidateName":  candidateName,
	})
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
