// Package interview builds question plans for a job and runs text interview sessions
// whose answers are scored as they arrive.
package interview

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/parsing"
	"github.com/jonathan/candidate-screener/internal/prompts"
	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
)

// DefaultMaxQuestions is the plan length used when none is requested
const DefaultMaxQuestions = 6

const promptFile = "interview.json"

// Question is one planned interview question
type Question struct {
	Text string             `json:"text"`
	Type types.QuestionType `json:"type"`
}

// BuildPlan returns an interview plan for a job. It opens with an introduction,
// asks about each required skill (topped up from keywords when the job lists
// few skills) and ends with an experience question and a closing question. The plan
// is capped at maxQuestions; zero or less means DefaultMaxQuestions.
func BuildPlan(reqs types.JobRequirements, jobTitle string, keywords []string, maxQuestions int) []Question {
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}

	intro := prompts.MustGet(promptFile, "intro")
	if title := strings.TrimSpace(jobTitle); title != "" {
		intro = prompts.Format(prompts.MustGet(promptFile, "intro-titled"), map[string]string{"JobTitle": title})
	}

	plan := []Question{{Text: intro, Type: types.QuestionGeneral}}
	tail := []Question{
		{Text: prompts.MustGet(promptFile, "experience"), Type: types.QuestionSituational},
		{Text: prompts.MustGet(promptFile, "closing"), Type: types.QuestionGeneral},
	}

	room := maxQuestions - len(plan) - len(tail)
	skillTemplate := prompts.MustGet(promptFile, "skill")
	for _, topic := range topics(reqs.RequiredSkills, keywords) {
		if room <= 0 {
			break
		}
		plan = append(plan, Question{
			Text: prompts.Format(skillTemplate, map[string]string{"Skill": parsing.DisplaySkillName(topic)}),
			Type: types.QuestionTechnical,
		})
		room--
	}
	if room > 0 {
		plan = append(plan, Question{Text: prompts.MustGet(promptFile, "behavioral"), Type: types.QuestionBehavioral})
	}

	plan = append(plan, tail...)
	if len(plan) > maxQuestions {
		plan = plan[:maxQuestions]
	}
	return plan
}

func topics(skills, keywords []string) []string {
	out := make([]string, 0, len(skills)+len(keywords))
	out = append(out, skills...)
	for _, k := range keywords {
		covered := false
		for _, s := range skills {
			if strings.Contains(s, k) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, k)
		}
	}
	return textutil.Dedupe(out)
}

// Keywords returns up to n distinct content words of text in order of first
// appearance, skipping stop words and words shorter than three letters.
func Keywords(text string, stopWords map[string]bool, n int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range textutil.Tokenize(text) {
		if len(out) >= n {
			break
		}
		if len(tok) < 3 || stopWords[tok] || seen[tok] || isNumeric(tok) {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
