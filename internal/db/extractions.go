package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-intel/internal/types"
)

// ExtractionRun is one persisted extraction: the input text, its hash, and the
// structured result.
type ExtractionRun struct {
	ID        uuid.UUID
	InputHash string
	InputText string
	Result    types.ExtractionResult
	CreatedAt time.Time
}

// ErrRunNotFound indicates no extraction run exists for the requested ID.
var ErrRunNotFound = errors.New("extraction run not found")

// SaveExtraction stores an extraction run and returns its assigned ID.
func (db *DB) SaveExtraction(ctx context.Context, text string, result types.ExtractionResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	id := uuid.New()
	hash := sha256.Sum256([]byte(text))

	_, err = db.pool.Exec(ctx,
		`INSERT INTO extraction_runs (id, input_hash, input_text, result)
		 VALUES ($1, $2, $3, $4)`,
		id, hex.EncodeToString(hash[:]), text, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save extraction run: %w", err)
	}
	return id, nil
}

// GetExtraction loads an extraction run by ID. Returns ErrRunNotFound when no
// run exists for the ID.
func (db *DB) GetExtraction(ctx context.Context, id uuid.UUID) (*ExtractionRun, error) {
	run := &ExtractionRun{ID: id}
	var resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT input_hash, input_text, result, created_at
		 FROM extraction_runs WHERE id = $1`,
		id,
	).Scan(&run.InputHash, &run.InputText, &resultJSON, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load extraction run: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &run.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction result: %w", err)
	}
	return run, nil
}

// ListExtractions returns the most recent extraction runs, newest first,
// without their input text or result payloads.
func (db *DB) ListExtractions(ctx context.Context, limit int) ([]ExtractionRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, input_hash, created_at
		 FROM extraction_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list extraction runs: %w", err)
	}
	defer rows.Close()

	var runs []ExtractionRun
	for rows.Next() {
		var run ExtractionRun
		if err := rows.Scan(&run.ID, &run.InputHash, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
