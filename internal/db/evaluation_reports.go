package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/reporting"
	"github.com/jonathan/candidate-screener/internal/types"
)

// SaveEvaluationReport stores a snapshot of report and returns its ID. sessionID
// links the report to an interview session and may be empty.
func (db *DB) SaveEvaluationReport(ctx context.Context, report *reporting.BatchReport, sessionID string) (uuid.UUID, error) {
	if report == nil {
		return uuid.Nil, &types.InputError{Field: "report", Message: "must not be nil"}
	}
	entries := report.Entries()
	avg := report.Averages()

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal entries: %w", err)
	}
	avgJSON, err := json.Marshal(avg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal averages: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO evaluation_reports
		 (id, candidate_name, session_id, question_count, overall_score, overall_score_percent, averages, entries)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, report.Candidate(), sessionID, len(entries), avg.Overall, avg.OverallPercent, avgJSON, entriesJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation report: %w", err)
	}
	db.log.Debug("evaluation report saved", zap.String("id", id.String()), zap.Int("entries", len(entries)))
	return id, nil
}

// GetEvaluationReport retrieves an evaluation report by ID
func (db *DB) GetEvaluationReport(ctx context.Context, id uuid.UUID) (*EvaluationReport, error) {
	var r EvaluationReport
	var avgJSON, entriesJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_name, session_id, question_count, averages, entries, created_at
		 FROM evaluation_reports WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.CandidateName, &r.SessionID, &r.QuestionCount, &avgJSON, &entriesJSON, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("evaluation report %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get evaluation report: %w", err)
	}
	if err := json.Unmarshal(avgJSON, &r.Averages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal averages: %w", err)
	}
	if err := json.Unmarshal(entriesJSON, &r.Entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entries: %w", err)
	}
	return &r, nil
}
