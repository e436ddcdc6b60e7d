package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const analysesSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	path TEXT NOT NULL,
	language TEXT NOT NULL,
	summary JSONB NOT NULL,
	score JSONB,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

// Store provides database operations
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new store
func NewStore(db *DB) *Store {
	return &Store{pool: db.Pool()}
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate creates the analyses table when missing
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, analysesSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Analysis is a persisted analysis record
type Analysis struct {
	ID        uuid.UUID       `json:"id"`
	Path      string          `json:"path"`
	Language  string          `json:"language"`
	Summary   json.RawMessage `json:"summary"`
	Score     json.RawMessage `json:"score,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveAnalysis stores an analysis record, assigning its ID and timestamp
func (s *Store) SaveAnalysis(ctx context.Context, a *Analysis) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO analyses (id, path, language, summary, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Path, a.Language, a.Summary, a.Score, a.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil when not found.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	a := &Analysis{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, path, language, summary, score, created_at
		FROM analyses
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Path, &a.Language, &a.Summary, &a.Score, &a.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return a, nil
}

// ListAnalyses returns the most recent analyses, newest first
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]*Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, path, language, summary, score, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a := &Analysis{}
		if err := rows.Scan(&a.ID, &a.Path, &a.Language, &a.Summary, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}

	return analyses, nil
}
