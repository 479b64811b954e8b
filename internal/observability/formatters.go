// Package observability provides boxed, human-readable summaries for verbose CLI
// output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-screener/internal/ranking"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items under a heading, then a count of the rest
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintRequirements outputs what a job description asks for
func (p *Printer) PrintRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Years:      %d\n", reqs.Years)
	if len(reqs.Levels) > 0 {
		fmt.Fprintf(&sb, "Levels:     %s\n", strings.Join(reqs.Levels, ", "))
	}
	if reqs.HasEducationRequirement() {
		fmt.Fprintf(&sb, "Education:  %s\n", reqs.EducationLevel)
	}
	sb.WriteString("\n")
	writeList(&sb, "Required Skills", reqs.RequiredSkills, maxItemsToShow)

	p.printBox("JOB REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResult outputs the overall score, component scores and skill gaps of a
// match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall:    %d/100\n\n", result.OverallScorePercent)
	c := result.ComponentScores
	fmt.Fprintf(&sb, "Skills:     %.2f\n", c.SkillsMatch)
	fmt.Fprintf(&sb, "Experience: %.2f\n", c.ExperienceMatch)
	fmt.Fprintf(&sb, "Education:  %.2f\n", c.EducationMatch)
	fmt.Fprintf(&sb, "Keywords:   %.2f\n\n", c.KeywordOverlap)
	writeList(&sb, "Matched Skills", result.MatchedSkills, maxItemsToShow)
	writeList(&sb, "Missing Skills", result.MissingSkills, maxItemsToShow)
	if result.Explanation != "" {
		sb.WriteString(result.Explanation)
	}

	p.printBox("RESUME MATCH", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates
func (p *Printer) PrintRanking(scores []ranking.CandidateScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total candidates ranked: %d\n\n", len(scores))

	count := min(len(scores), maxItemsToShow)
	for i, s := range scores[:count] {
		name := s.CandidateID
		if s.Name != "" {
			name = fmt.Sprintf("%s (%s)", s.Name, s.CandidateID)
		}
		fmt.Fprintf(&sb, "#%d  %s\n", s.Rank, name)
		fmt.Fprintf(&sb, "    Score: %d/100\n", s.OverallScorePercent)
		if len(s.OverlapTerms) > 0 {
			fmt.Fprintf(&sb, "    Terms: %s\n", truncate(strings.Join(s.OverlapTerms, ", "), 40))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scores) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more candidates", len(scores)-maxItemsToShow)
	}

	p.printBox("CANDIDATE RANKING", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnswerEvaluation outputs the scores and feedback for one answer
func (p *Printer) PrintAnswerEvaluation(ev *types.AnswerEvaluation) {
	if ev == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Type:       %s\n", ev.QuestionType)
	fmt.Fprintf(&sb, "Overall:    %d/100\n\n", ev.OverallScorePercent)
	fmt.Fprintf(&sb, "Relevance:  %.2f\n", ev.RelevanceScore)
	fmt.Fprintf(&sb, "Depth:      %.2f\n", ev.DepthScore)
	fmt.Fprintf(&sb, "Clarity:    %.2f\n\n", ev.ClarityScore)
	writeList(&sb, "Strengths", ev.Strengths, 3)
	writeList(&sb, "Weaknesses", ev.Weaknesses, 3)
	writeList(&sb, "Suggestions", ev.Suggestions, 3)

	p.printBox("ANSWER EVALUATION", strings.TrimRight(sb.String(), "\n"))
}

// PrintSummary outputs an LLM screening note
func (p *Printer) PrintSummary(summary *ranking.MatchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Recommendation: %s\n\n", summary.Recommendation)
	for _, line := range wrap(summary.Summary, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	writeList(&sb, "Strengths", summary.Strengths, 3)
	writeList(&sb, "Concerns", summary.Concerns, 3)

	p.printBox("SCREENING SUMMARY", strings.TrimRight(sb.String(), "\n"))
}

// wrap splits text into lines of at most width runes at word boundaries
func wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
