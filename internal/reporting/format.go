// Package reporting renders answer evaluations as text, Markdown or plain maps and
// aggregates them into per-candidate batch reports.
package reporting

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

// Format selects the presentation of a report
type Format string

// Supported report formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatDict     Format = "dict"
)

const ruleWidth = 70

// ParseFormat validates s. Matching is case-insensitive and an empty value means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown, FormatDict:
		return f, nil
	default:
		return "", &types.InputError{
			Field:   "format",
			Message: fmt.Sprintf("%q is not one of text, markdown, dict", s),
		}
	}
}

// Output is a rendered report. Text is set for text and markdown; Dict for dict.
type Output struct {
	Format Format         `json:"format"`
	Text   string         `json:"text,omitempty"`
	Dict   map[string]any `json:"dict,omitempty"`
}

// Entry is one evaluated question/answer pair
type Entry struct {
	Question     string                  `json:"question"`
	Answer       string                  `json:"answer"`
	QuestionType types.QuestionType      `json:"question_type"`
	Evaluation   *types.AnswerEvaluation `json:"evaluation"`
}

func (e Entry) clone() Entry {
	e.Evaluation = e.Evaluation.Clone()
	return e
}

// Render presents a single entry in the requested format. format is normalized
// like ParseFormat, so "" means text.
func Render(entry Entry, format Format) (*Output, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	if entry.Evaluation == nil {
		return nil, &types.InputError{Field: "evaluation", Message: "is required"}
	}
	switch format {
	case FormatText:
		return &Output{Format: format, Text: FormatEntryText(entry)}, nil
	case FormatMarkdown:
		return &Output{Format: format, Text: FormatEntryMarkdown(entry)}, nil
	case FormatDict:
		return &Output{Format: format, Dict: EntryDict(entry)}, nil
	}
	return nil, &types.InputError{Field: "format", Message: fmt.Sprintf("%q is not supported", format)}
}

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

func writeNumbered(sb *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, item)
	}
}

func writeBullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}

// FormatEntryText renders an entry as a plain text report
func FormatEntryText(entry Entry) string {
	ev := entry.Evaluation
	var sb strings.Builder

	sb.WriteString(rule("=") + "\n")
	sb.WriteString("INTERVIEW ANSWER EVALUATION REPORT\n")
	sb.WriteString(rule("=") + "\n\n")

	section := func(title string) {
		sb.WriteString(title + "\n")
		sb.WriteString(rule("-") + "\n")
	}

	section("QUESTION:")
	sb.WriteString(entry.Question + "\n\n")
	section("ANSWER:")
	sb.WriteString(entry.Answer + "\n\n")

	section("EVALUATION SCORES:")
	fmt.Fprintf(&sb, "Question Type: %s\n", entry.QuestionType)
	fmt.Fprintf(&sb, "Overall Score: %d/100\n\n", ev.OverallScorePercent)
	fmt.Fprintf(&sb, "  Relevance:  %.2f (weight: 50%%)\n", ev.RelevanceScore)
	fmt.Fprintf(&sb, "  Depth:      %.2f (weight: 30%%)\n", ev.DepthScore)
	fmt.Fprintf(&sb, "  Clarity:    %.2f (weight: 20%%)\n\n", ev.ClarityScore)

	section("EVALUATION SUMMARY:")
	sb.WriteString(ev.Explanation + "\n\n")

	section("STRENGTHS:")
	writeNumbered(&sb, ev.Strengths)
	sb.WriteString("\n")
	section("AREAS FOR IMPROVEMENT:")
	writeNumbered(&sb, ev.Weaknesses)
	sb.WriteString("\n")
	section("SUGGESTIONS:")
	writeNumbered(&sb, ev.Suggestions)
	sb.WriteString("\n")

	sb.WriteString(rule("=") + "\n")
	sb.WriteString("END OF REPORT\n")
	sb.WriteString(rule("="))
	return sb.String()
}

// FormatEntryMarkdown renders an entry as a Markdown report
func FormatEntryMarkdown(entry Entry) string {
	ev := entry.Evaluation
	var sb strings.Builder

	sb.WriteString("# Interview Answer Evaluation Report\n\n")
	sb.WriteString("## Question\n\n" + entry.Question + "\n\n")
	sb.WriteString("## Answer\n\n" + entry.Answer + "\n\n")

	sb.WriteString("## Evaluation Scores\n\n")
	fmt.Fprintf(&sb, "**Question Type:** %s\n\n", entry.QuestionType)
	fmt.Fprintf(&sb, "**Overall Score:** %d/100\n\n", ev.OverallScorePercent)
	sb.WriteString("| Criteria | Score | Weight |\n")
	sb.WriteString("|----------|-------|--------|\n")
	fmt.Fprintf(&sb, "| Relevance | %.2f | 50%% |\n", ev.RelevanceScore)
	fmt.Fprintf(&sb, "| Depth | %.2f | 30%% |\n", ev.DepthScore)
	fmt.Fprintf(&sb, "| Clarity | %.2f | 20%% |\n\n", ev.ClarityScore)

	sb.WriteString("## Evaluation Summary\n\n" + ev.Explanation + "\n\n")
	sb.WriteString("## Strengths\n\n")
	writeBullets(&sb, ev.Strengths)
	sb.WriteString("\n## Areas for Improvement\n\n")
	writeBullets(&sb, ev.Weaknesses)
	sb.WriteString("\n## Suggestions\n\n")
	writeBullets(&sb, ev.Suggestions)
	return strings.TrimRight(sb.String(), "\n")
}

// EntryDict renders an entry as a plain map. Slices are copied.
func EntryDict(entry Entry) map[string]any {
	ev := entry.Evaluation
	return map[string]any{
		"question":      entry.Question,
		"answer":        entry.Answer,
		"question_type": string(entry.QuestionType),
		"scores": map[string]any{
			"overall":         ev.OverallScore,
			"overall_percent": ev.OverallScorePercent,
			"relevance":       ev.RelevanceScore,
			"depth":           ev.DepthScore,
			"clarity":         ev.ClarityScore,
		},
		"summary":     ev.Explanation,
		"strengths":   append([]string{}, ev.Strengths...),
		"weaknesses":  append([]string{}, ev.Weaknesses...),
		"suggestions": append([]string{}, ev.Suggestions...),
	}
}
