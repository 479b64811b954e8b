package types

import (
	"fmt"
	"strings"
)

// QuestionType classifies an interview question. It is recorded with each
// evaluation but does not change scoring.
type QuestionType string

// Supported question types
const (
	QuestionGeneral     QuestionType = "general"
	QuestionTechnical   QuestionType = "technical"
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionSituational QuestionType = "situational"
)

// QuestionTypes lists the supported question types
func QuestionTypes() []QuestionType {
	return []QuestionType{QuestionGeneral, QuestionTechnical, QuestionBehavioral, QuestionSituational}
}

// ParseQuestionType validates s against the supported types. Matching is
// case-insensitive and an empty value means general.
func ParseQuestionType(s string) (QuestionType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return QuestionGeneral, nil
	}
	for _, qt := range QuestionTypes() {
		if string(qt) == normalized {
			return qt, nil
		}
	}
	return "", &InputError{
		Field:   "question_type",
		Message: fmt.Sprintf("%q is not one of general, technical, behavioral, situational", s),
	}
}

// AnswerEvaluation is the scored assessment of one interview answer
type AnswerEvaluation struct {
	QuestionType        QuestionType `json:"question_type"`
	RelevanceScore      float64      `json:"relevance_score"`
	DepthScore          float64      `json:"depth_score"`
	ClarityScore        float64      `json:"clarity_score"`
	OverallScore        float64      `json:"overall_score"`
	OverallScorePercent int          `json:"overall_score_percent"`
	Explanation         string       `json:"explanation"`
	Strengths           []string     `json:"strengths"`
	Weaknesses          []string     `json:"weaknesses"`
	Suggestions         []string     `json:"suggestions"`
}

// Clone returns a deep copy of the evaluation
func (e *AnswerEvaluation) Clone() *AnswerEvaluation {
	if e == nil {
		return nil
	}
	c := *e
	c.Strengths = append([]string{}, e.Strengths...)
	c.Weaknesses = append([]string{}, e.Weaknesses...)
	c.Suggestions = append([]string{}, e.Suggestions...)
	return &c
}

// ToMap converts the evaluation to a plain map
func (e *AnswerEvaluation) ToMap() (map[string]any, error) {
	return toMap(e)
}

// AnswerEvaluationFromMap builds an AnswerEvaluation from a plain map
func AnswerEvaluationFromMap(m map[string]any) (*AnswerEvaluation, error) {
	var e AnswerEvaluation
	if err := fromMap(m, &e); err != nil {
		return nil, err
	}
	e.Strengths = nonNil(e.Strengths)
	e.Weaknesses = nonNil(e.Weaknesses)
	e.Suggestions = nonNil(e.Suggestions)
	return &e, nil
}
