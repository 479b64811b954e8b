package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Screening is a stored resume match result
type Screening struct {
	ID                  uuid.UUID          `json:"id"`
	JobHash             string             `json:"job_hash"`
	JobTitle            string             `json:"job_title,omitempty"`
	CandidateName       string             `json:"candidate_name,omitempty"`
	OverallScore        float64            `json:"overall_score"`
	OverallScorePercent int                `json:"overall_score_percent"`
	Result              *types.MatchResult `json:"result"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ScreeningInput is what SaveScreening stores
type ScreeningInput struct {
	JobHash       string
	JobTitle      string
	CandidateName string
	Result        *types.MatchResult
}

// EvaluationReport is a stored batch of interview answer evaluations
type EvaluationReport struct {
	ID            uuid.UUID          `json:"id"`
	CandidateName string             `json:"candidate_name,omitempty"`
	SessionID     string             `json:"session_id,omitempty"`
	QuestionCount int                `json:"question_count"`
	Averages      reporting.Averages `json:"averages"`
	Entries       []reporting.Entry  `json:"entries"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Report rebuilds a BatchReport from the stored entries
func (r *EvaluationReport) Report() (*reporting.BatchReport, error) {
	report := reporting.NewBatchReport(r.CandidateName)
	for _, e := range r.Entries {
		if err := report.Add(e); err != nil {
			return nil, err
		}
	}
	return report, nil
}
