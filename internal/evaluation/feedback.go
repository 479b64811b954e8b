package evaluation

// Fallbacks used when no threshold produced a sentence
const (
	defaultStrength   = "Answered the question"
	defaultWeakness   = "Minor areas for improvement exist"
	defaultSuggestion = "Continue with this approach"
)

type feedback struct {
	strengths   []string
	weaknesses  []string
	suggestions []string
}

func (f *feedback) strength(s string)   { f.strengths = append(f.strengths, s) }
func (f *feedback) weakness(s string)   { f.weaknesses = append(f.weaknesses, s) }
func (f *feedback) suggestion(s string) { f.suggestions = append(f.suggestions, s) }

// buildFeedback emits one canned sentence per crossed threshold, in relevance,
// depth, clarity order.
func buildFeedback(s signals, relevance, depth, clarity float64) feedback {
	var f feedback
	brief := s.words < 30

	// Relevance
	switch Band(relevance) {
	case "strong":
		f.strength("Directly addresses the question")
	case "good":
		f.strength("Addresses most of the question")
	case "partial":
		f.weakness("Only partially addresses the question")
		f.suggestion("Focus more directly on the core question asked")
	default:
		f.weakness("Does not address the question asked")
		f.suggestion("Focus more directly on the core question asked")
	}
	if brief {
		f.weakness("Answer is too brief")
		f.suggestion("Expand on your answer with more detail")
	}

	// Depth
	switch Band(depth) {
	case "strong":
		f.strength("Demonstrates strong subject knowledge")
	case "good":
		f.strength("Shows good understanding of the subject")
	case "partial":
		f.weakness("Could go deeper with specific detail")
		f.suggestion("Provide specific details and examples from your experience")
	default:
		f.weakness("Lacks depth and specific detail")
		f.suggestion("Provide specific details and examples from your experience")
	}
	if s.examples > 0 {
		f.strength("Uses concrete examples to illustrate points")
	} else {
		f.weakness("Does not include concrete examples")
		f.suggestion("Add a specific example from a past project")
	}
	if s.quantitative > 0 {
		f.strength("Supports points with specific numbers and metrics")
	} else if depth < 0.6 {
		f.suggestion("Quantify results with numbers where possible")
	}
	if s.nuance > 0 {
		f.strength("Shows awareness of trade-offs and nuance")
	} else {
		f.suggestion("Discuss trade-offs or alternative approaches")
	}

	// Clarity
	switch Band(clarity) {
	case "strong":
		f.strength("Clear and well-structured communication")
	case "good":
		f.strength("Generally clear communication")
	case "partial":
		f.weakness("Could improve clarity and structure")
		f.suggestion("Use a more structured format with clear points")
	default:
		f.weakness("Hard to follow")
		f.suggestion("Use a more structured format with clear points")
	}
	if s.enumerated {
		f.strength("Organizes the answer into explicit steps")
	}
	if s.runOns > 0 {
		f.weakness("Contains overly long sentences")
		f.suggestion("Break long sentences into shorter ones")
	}
	if s.hedges > 0 {
		f.weakness("Uses tentative language")
		f.suggestion("State conclusions with more confidence")
	}

	if len(f.strengths) == 0 {
		f.strengths = []string{defaultStrength}
	}
	if len(f.weaknesses) == 0 {
		f.weaknesses = []string{defaultWeakness}
	}
	if len(f.suggestions) == 0 {
		f.suggestions = []string{defaultSuggestion}
	}
	return f
}
