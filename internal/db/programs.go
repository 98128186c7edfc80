package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/types"
)

const programColumns = `id, name, program, country, min_gpa, min_language_score,
	required_background, deadlines, application_fee, application_url,
	recommendation_count, gre_required, optional_documents`

const upsertProgramSQL = `INSERT INTO programs (` + programColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id) DO UPDATE SET
		name = $2, program = $3, country = $4, min_gpa = $5, min_language_score = $6,
		required_background = $7, deadlines = $8, application_fee = $9, application_url = $10,
		recommendation_count = $11, gre_required = $12, optional_documents = $13,
		updated_at = NOW()`

// UpsertProgram inserts a catalog record or replaces the stored one with the same ID.
func (db *DB) UpsertProgram(ctx context.Context, r catalog.Record) error {
	args, err := recordArgs(r)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx, upsertProgramSQL, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert program %d: %w", r.ID, err)
	}
	return nil
}

// SeedPrograms upserts every record in a single transaction and returns the number written.
func (db *DB) SeedPrograms(ctx context.Context, records []catalog.Record) (int, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, r := range records {
		args, err := recordArgs(r)
		if err != nil {
			return 0, err
		}
		batch.Queue(upsertProgramSQL, args...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to seed programs: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(records), nil
}

// GetProgram retrieves a catalog record by ID. Returns nil when it does not exist.
func (db *DB) GetProgram(ctx context.Context, id int) (*catalog.Record, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id)

	r, err := scanRecord(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program %d: %w", id, err)
	}
	return r, nil
}

// ListPrograms retrieves every stored record ordered by ID.
func (db *DB) ListPrograms(ctx context.Context) ([]catalog.Record, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+programColumns+` FROM programs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return records, nil
}

// DeleteProgram removes a catalog record.
func (db *DB) DeleteProgram(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("program not found: %d", id)
	}
	return nil
}

// recordArgs flattens a record into the positional arguments of programColumns.
func recordArgs(r catalog.Record) ([]any, error) {
	background, err := json.Marshal(nonNil(r.RequiredBackground))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required background: %w", err)
	}
	deadlines := r.Deadlines
	if deadlines == nil {
		deadlines = map[string]string{}
	}
	deadlinesJSON, err := json.Marshal(deadlines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deadlines: %w", err)
	}
	var fee []byte
	if r.ApplicationFee != nil {
		if fee, err = json.Marshal(r.ApplicationFee); err != nil {
			return nil, fmt.Errorf("failed to marshal application fee: %w", err)
		}
	}
	optional, err := json.Marshal(nonNil(r.OptionalDocuments))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal optional documents: %w", err)
	}

	return []any{
		r.ID, r.Name, r.Program, r.Country, r.MinGPA, r.MinLanguageScore,
		background, deadlinesJSON, fee, r.ApplicationURL,
		r.RecommendationCount, r.GRERequired, optional,
	}, nil
}

func scanRecord(row pgx.Row) (*catalog.Record, error) {
	var (
		r                              catalog.Record
		background, deadlines, fee, op []byte
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Program, &r.Country, &r.MinGPA, &r.MinLanguageScore,
		&background, &deadlines, &fee, &r.ApplicationURL,
		&r.RecommendationCount, &r.GRERequired, &op); err != nil {
		return nil, err
	}
	if err := decodeRecordJSON(&r, background, deadlines, fee, op); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeRecordJSON(r *catalog.Record, background, deadlines, fee, optional []byte) error {
	if len(background) > 0 {
		if err := json.Unmarshal(background, &r.RequiredBackground); err != nil {
			return fmt.Errorf("invalid required_background: %w", err)
		}
	}
	if len(deadlines) > 0 {
		if err := json.Unmarshal(deadlines, &r.Deadlines); err != nil {
			return fmt.Errorf("invalid deadlines: %w", err)
		}
	}
	if len(fee) > 0 {
		r.ApplicationFee = &types.ApplicationFee{}
		if err := json.Unmarshal(fee, r.ApplicationFee); err != nil {
			return fmt.Errorf("invalid application_fee: %w", err)
		}
	}
	if len(optional) > 0 {
		if err := json.Unmarshal(optional, &r.OptionalDocuments); err != nil {
			return fmt.Errorf("invalid optional_documents: %w", err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
