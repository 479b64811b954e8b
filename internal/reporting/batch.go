package reporting

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Averages are the arithmetic means of each score across a batch
type Averages struct {
	Overall        float64 `json:"overall"`
	OverallPercent int     `json:"overall_percent"`
	Relevance      float64 `json:"relevance"`
	Depth          float64 `json:"depth"`
	Clarity        float64 `json:"clarity"`
}

// BatchReport collects the evaluated answers of one candidate. Entries are
// append-only and copied on the way in and out. One writer may append while other
// goroutines read.
type BatchReport struct {
	mu        sync.RWMutex
	candidate string
	entries   []Entry
}

// NewBatchReport creates an empty report. candidate may be empty.
func NewBatchReport(candidate string) *BatchReport {
	return &BatchReport{candidate: candidate}
}

// Candidate returns the candidate name the report was created with
func (r *BatchReport) Candidate() string {
	return r.candidate
}

// Add appends a copy of entry
func (r *BatchReport) Add(entry Entry) error {
	if entry.Evaluation == nil {
		return fmt.Errorf("batch report: entry for %q has no evaluation", entry.Question)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry.clone())
	return nil
}

// Len returns the number of entries
func (r *BatchReport) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns copies of the entries in insertion order
func (r *BatchReport) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.clone()
	}
	return out
}

// Averages returns the mean of every score field. An empty report averages 0.
func (r *BatchReport) Averages() Averages {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return averages(r.entries)
}

func averages(entries []Entry) Averages {
	if len(entries) == 0 {
		return Averages{}
	}
	field := func(get func(Entry) float64) float64 {
		// Shifted by the first value so identical entries average to that value exactly
		base := get(entries[0])
		var sum float64
		for _, e := range entries[1:] {
			sum += get(e) - base
		}
		return base + sum/float64(len(entries))
	}
	avg := Averages{
		Overall:   field(func(e Entry) float64 { return e.Evaluation.OverallScore }),
		Relevance: field(func(e Entry) float64 { return e.Evaluation.RelevanceScore }),
		Depth:     field(func(e Entry) float64 { return e.Evaluation.DepthScore }),
		Clarity:   field(func(e Entry) float64 { return e.Evaluation.ClarityScore }),
	}
	avg.OverallPercent = textutil.Percent(avg.Overall)
	return avg
}

// Render presents the whole batch in the requested format. format is normalized like
// ParseFormat, so "" means text.
func (r *BatchReport) Render(format Format) (*Output, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		entries[i] = e.clone()
	}
	r.mu.RUnlock()

	avg := averages(entries)
	switch format {
	case FormatText:
		return &Output{Format: format, Text: r.formatText(entries, avg)}, nil
	case FormatMarkdown:
		return &Output{Format: format, Text: r.formatMarkdown(entries, avg)}, nil
	case FormatDict:
		items := make([]map[string]any, len(entries))
		for i, e := range entries {
			items[i] = EntryDict(e)
		}
		return &Output{Format: format, Dict: map[string]any{
			"candidate_name": r.candidate,
			"average_scores": map[string]any{
				"overall":         avg.Overall,
				"overall_percent": avg.OverallPercent,
				"relevance":       avg.Relevance,
				"depth":           avg.Depth,
				"clarity":         avg.Clarity,
			},
			"total_questions": len(entries),
			"evaluations":     items,
		}}, nil
	}
	return nil, &types.InputError{Field: "format", Message: fmt.Sprintf("%q is not supported", format)}
}

func (r *BatchReport) formatText(entries []Entry, avg Averages) string {
	var sb strings.Builder
	sb.WriteString(rule("=") + "\n")
	sb.WriteString("BATCH INTERVIEW EVALUATION REPORT\n")
	sb.WriteString(rule("=") + "\n")
	if r.candidate != "" {
		fmt.Fprintf(&sb, "Candidate: %s\n\n", r.candidate)
	}
	sb.WriteString("AVERAGE SCORES:\n")
	sb.WriteString(rule("-") + "\n")
	fmt.Fprintf(&sb, "Overall Score: %d/100\n", avg.OverallPercent)
	fmt.Fprintf(&sb, "  Relevance:  %.2f\n", avg.Relevance)
	fmt.Fprintf(&sb, "  Depth:      %.2f\n", avg.Depth)
	fmt.Fprintf(&sb, "  Clarity:    %.2f\n\n", avg.Clarity)
	fmt.Fprintf(&sb, "Total Questions Evaluated: %d\n\n", len(entries))
	sb.WriteString(rule("=") + "\n")

	for i, e := range entries {
		fmt.Fprintf(&sb, "\n--- Question %d ---\n\n", i+1)
		sb.WriteString(FormatEntryText(e) + "\n")
	}
	return sb.String()
}

func (r *BatchReport) formatMarkdown(entries []Entry, avg Averages) string {
	var sb strings.Builder
	sb.WriteString("# Batch Interview Evaluation Report\n\n")
	if r.candidate != "" {
		fmt.Fprintf(&sb, "**Candidate:** %s\n\n", r.candidate)
	}
	sb.WriteString("## Average Scores\n\n")
	fmt.Fprintf(&sb, "**Overall:** %d/100\n\n", avg.OverallPercent)
	sb.WriteString("| Criteria | Average Score |\n")
	sb.WriteString("|----------|---------------|\n")
	fmt.Fprintf(&sb, "| Relevance | %.2f |\n", avg.Relevance)
	fmt.Fprintf(&sb, "| Depth | %.2f |\n", avg.Depth)
	fmt.Fprintf(&sb, "| Clarity | %.2f |\n\n", avg.Clarity)
	fmt.Fprintf(&sb, "**Total Questions Evaluated:** %d\n", len(entries))

	for i, e := range entries {
		fmt.Fprintf(&sb, "\n---\n\n## Question %d\n\n", i+1)
		// Demote the entry headings one level under the question heading
		body := strings.ReplaceAll(FormatEntryMarkdown(e), "\n## ", "\n### ")
		body = strings.TrimPrefix(body, "# Interview Answer Evaluation Report\n\n")
		sb.WriteString(body + "\n")
	}
	return sb.String()
}
