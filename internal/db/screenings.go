package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/types"
)

const defaultListLimit = 50

// SaveScreening stores a match result and returns its ID
func (db *DB) SaveScreening(ctx context.Context, in ScreeningInput) (uuid.UUID, error) {
	if in.Result == nil {
		return uuid.Nil, &types.InputError{Field: "result", Message: "must not be nil"}
	}
	resultJSON, err := json.Marshal(in.Result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO screenings (id, job_hash, job_title, candidate_name, overall_score, overall_score_percent, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, in.JobHash, in.JobTitle, in.CandidateName,
		in.Result.OverallScore, in.Result.OverallScorePercent, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save screening: %w", err)
	}
	db.log.Debug("screening saved", zap.String("id", id.String()), zap.String("job_hash", in.JobHash))
	return id, nil
}

// GetScreening retrieves a screening by ID
func (db *DB) GetScreening(ctx context.Context, id uuid.UUID) (*Screening, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, job_hash, job_title, candidate_name, overall_score, overall_score_percent, result, created_at
		 FROM screenings WHERE id = $1`,
		id,
	)
	s, err := scanScreening(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("screening %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get screening: %w", err)
	}
	return s, nil
}

// ListScreenings returns the screenings of one job, best score first. limit <= 0
// uses a default page size.
func (db *DB) ListScreenings(ctx context.Context, jobHash string, limit int) ([]Screening, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_hash, job_title, candidate_name, overall_score, overall_score_percent, result, created_at
		 FROM screenings WHERE job_hash = $1
		 ORDER BY overall_score DESC, created_at ASC
		 LIMIT $2`,
		jobHash, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	defer rows.Close()

	var out []Screening
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan screening: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate screenings: %w", err)
	}
	return out, nil
}

func scanScreening(row pgx.Row) (*Screening, error) {
	var s Screening
	var resultJSON []byte
	if err := row.Scan(&s.ID, &s.JobHash, &s.JobTitle, &s.CandidateName,
		&s.OverallScore, &s.OverallScorePercent, &resultJSON, &s.CreatedAt); err != nil {
		return nil, err
	}
	result, err := decodeMatchResult(resultJSON)
	if err != nil {
		return nil, err
	}
	s.Result = result
	return &s, nil
}

func decodeMatchResult(data []byte) (*types.MatchResult, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return types.MatchResultFromMap(m)
}
