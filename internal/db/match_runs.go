package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/university-match/internal/types"
)

// MatchRun is a stored match request and its ranked results.
type MatchRun struct {
	ID             uuid.UUID              `json:"id"`
	Profile        types.CandidateProfile `json:"profile"`
	Results        []types.MatchResult    `json:"results"`
	IncludeExpired bool                   `json:"include_expired"`
	ExpiredHidden  int                    `json:"expired_hidden"`
	CreatedAt      time.Time              `json:"created_at"`
}

// SaveMatchRun stores a match run and returns its ID.
func (db *DB) SaveMatchRun(ctx context.Context, run *MatchRun) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	profileJSON, err := json.Marshal(run.Profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	results := run.Results
	if results == nil {
		results = []types.MatchResult{}
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal results: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (id, profile, results, include_expired, expired_hidden)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		run.ID, profileJSON, resultsJSON, run.IncludeExpired, run.ExpiredHidden,
	).Scan(&run.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match run: %w", err)
	}
	return run.ID, nil
}

// GetMatchRun retrieves a match run by ID. Returns nil when it does not exist.
func (db *DB) GetMatchRun(ctx context.Context, id uuid.UUID) (*MatchRun, error) {
	var (
		run                  MatchRun
		profileJSON, results []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile, results, include_expired, expired_hidden, created_at
		 FROM match_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &profileJSON, &results, &run.IncludeExpired, &run.ExpiredHidden, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &run.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := json.Unmarshal(results, &run.Results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return &run, nil
}
