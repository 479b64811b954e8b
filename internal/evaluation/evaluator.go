// Package evaluation scores interview answers for relevance, depth and clarity.
package evaluation

import (
	"math"
	"strings"

	"github.com/jonathan/candidate-screener/internal/textutil"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/jonathan/candidate-screener/internal/vocab"
)

// Component weights of the overall answer score
const (
	RelevanceWeight = 0.50
	DepthWeight     = 0.30
	ClarityWeight   = 0.20
)

// Evaluator scores answers against their questions. It is immutable and safe for
// concurrent use.
type Evaluator struct {
	stopWords map[string]bool
}

// NewEvaluator creates an Evaluator using the stop words of v. A nil v uses the
// default vocabulary.
func NewEvaluator(v *vocab.Vocabulary) *Evaluator {
	if v == nil {
		v = vocab.Default()
	}
	stop := v.StopWordSet()
	for _, w := range questionWords {
		stop[w] = true
	}
	return &Evaluator{stopWords: stop}
}

// signals are the raw measurements taken from one question/answer pair
type signals struct {
	keywordCoverage float64
	adequacy        float64
	addressing      int

	richness     float64
	examples     int
	nuance       int
	quantitative int
	words        int

	avgSentenceTokens float64
	runOns            int
	connectives       int
	enumerated        bool
	hedges            int
}

// Evaluate scores answer as a response to question. questionType must be one of
// the supported types or empty; it is recorded but does not affect scoring.
func (e *Evaluator) Evaluate(question, answer, questionType string) (*types.AnswerEvaluation, error) {
	if err := types.RequireText("question", question); err != nil {
		return nil, err
	}
	if err := types.RequireText("answer", answer); err != nil {
		return nil, err
	}
	qt, err := types.ParseQuestionType(questionType)
	if err != nil {
		return nil, err
	}

	s := e.measure(question, answer)
	relevance := relevanceScore(s)
	depth := depthScore(s)
	clarity := clarityScore(s)
	overall := RelevanceWeight*relevance + DepthWeight*depth + ClarityWeight*clarity

	fb := buildFeedback(s, relevance, depth, clarity)
	return &types.AnswerEvaluation{
		QuestionType:        qt,
		RelevanceScore:      relevance,
		DepthScore:          depth,
		ClarityScore:        clarity,
		OverallScore:        overall,
		OverallScorePercent: textutil.Percent(overall),
		Explanation:         explain(relevance, depth, clarity),
		Strengths:           fb.strengths,
		Weaknesses:          fb.weaknesses,
		Suggestions:         fb.suggestions,
	}, nil
}

func (e *Evaluator) measure(question, answer string) signals {
	lower := textutil.LowerASCII(textutil.Normalize(answer))
	tokens := textutil.Tokenize(lower)

	var s signals
	s.words = len(tokens)

	keywords := textutil.TokenSet(question, e.stopWords, keywordMinLen)
	if len(keywords) == 0 {
		s.keywordCoverage = 0.5
	} else {
		answerSet := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			answerSet[t] = true
		}
		hit := 0
		for k := range keywords {
			if answerSet[k] {
				hit++
			}
		}
		s.keywordCoverage = float64(hit) / float64(len(keywords))
	}

	target := math.Max(float64(2*len(textutil.Tokenize(question))), minAnswerWords)
	s.adequacy = math.Min(1.0, float64(s.words)/target)
	s.addressing = textutil.CountPhrases(lower, addressingPhrases)

	if s.words > 0 {
		unique := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			unique[t] = true
		}
		s.richness = float64(len(unique)) / float64(s.words)
	}
	s.examples = textutil.CountPhrases(lower, exampleMarkers)
	s.nuance = textutil.CountPhrases(lower, nuanceMarkers)
	s.quantitative = len(quantitativeRegex.FindAllString(lower, -1))

	sentences := textutil.Sentences(lower)
	total := 0
	for _, sent := range sentences {
		n := len(textutil.Tokenize(sent))
		total += n
		if n > runOnTokens {
			s.runOns++
		}
	}
	if len(sentences) > 0 {
		s.avgSentenceTokens = float64(total) / float64(len(sentences))
	}
	s.connectives = textutil.CountPhrases(lower, flowConnectives)
	s.enumerated = len(enumeratedLine.FindAllString(lower, -1)) >= 2 ||
		(textutil.ContainsPhrase(lower, "first") && textutil.ContainsPhrase(lower, "second"))
	for _, h := range hedgingPhrases {
		s.hedges += countOccurrences(lower, h)
	}
	return s
}

func relevanceScore(s signals) float64 {
	return textutil.Clamp01(
		0.50*s.keywordCoverage +
			0.35*s.adequacy +
			math.Min(float64(s.addressing)*0.05, 0.15),
	)
}

func depthScore(s signals) float64 {
	var length float64
	switch {
	case s.words >= 150:
		length = 0.15
	case s.words >= 100:
		length = 0.12
	case s.words >= 60:
		length = 0.08
	case s.words >= 30:
		length = 0.04
	}
	return textutil.Clamp01(
		math.Min(s.richness*0.25, 0.20) +
			math.Min(float64(s.examples)*0.10, 0.25) +
			math.Min(float64(s.nuance)*0.08, 0.20) +
			math.Min(float64(s.quantitative)*0.07, 0.20) +
			length,
	)
}

func clarityScore(s signals) float64 {
	score := 0.25
	switch {
	case s.avgSentenceTokens == 0:
	case s.avgSentenceTokens <= 20:
		score += 0.25
	case s.avgSentenceTokens <= 30:
		score += 0.15
	case s.avgSentenceTokens <= runOnTokens:
		score += 0.05
	}
	score -= math.Min(float64(s.runOns)*0.10, 0.30)
	score += math.Min(float64(s.connectives)*0.06, 0.30)
	if s.enumerated {
		score += 0.20
	}
	score -= math.Min(float64(s.hedges)*0.10, 0.40)
	return textutil.Clamp01(score)
}

// countOccurrences counts non-overlapping whole-word occurrences of phrase in lower
func countOccurrences(lower, phrase string) int {
	n := 0
	for rest := lower; ; {
		i := textutil.FindPhrase(rest, phrase)
		if i < 0 {
			return n
		}
		n++
		rest = rest[i+len(phrase):]
	}
}

// Band names the range a component score falls in
func Band(score float64) string {
	switch {
	case score >= 0.8:
		return "strong"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "partial"
	default:
		return "weak"
	}
}

var bandSentences = map[string]map[string]string{
	"relevance": {
		"strong":  "The answer directly addresses the question.",
		"good":    "The answer addresses most of the question.",
		"partial": "The answer partially addresses the question and misses some key points.",
		"weak":    "The answer does not adequately address the question.",
	},
	"depth": {
		"strong":  "It shows strong subject knowledge with concrete detail.",
		"good":    "It shows good understanding with reasonable detail.",
		"partial": "It shows basic understanding but lacks specific detail.",
		"weak":    "It lacks the detail needed to demonstrate expertise.",
	},
	"clarity": {
		"strong":  "Communication is clear and well structured.",
		"good":    "Communication is generally clear.",
		"partial": "Communication would benefit from more structure.",
		"weak":    "Communication is hard to follow.",
	},
}

func explain(relevance, depth, clarity float64) string {
	return strings.Join([]string{
		bandSentences["relevance"][Band(relevance)],
		bandSentences["depth"][Band(depth)],
		bandSentences["clarity"][Band(clarity)],
	}, " ")
}
