package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/cmdmock/internal/models"
)

// Recording repository errors.
var (
	ErrRecordingNotFound = errors.New("recording not found")
	ErrInvalidRecording  = errors.New("invalid recording")
)

// RecordingRepository persists journal entries for completed record
// sessions. It satisfies the recorder's Journal interface.
type RecordingRepository struct {
	db *DB
}

// NewRecordingRepository creates a new RecordingRepository.
func NewRecordingRepository(db *DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

// Append inserts a new journal entry, assigning an ID and timestamp when
// absent. Returns ErrInvalidRecording if required fields are missing.
func (r *RecordingRepository) Append(ctx context.Context, rec *models.Recording) error {
	if rec.Family == "" || rec.Scenario == "" || rec.Document == "" {
		return ErrInvalidRecording
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	} else {
		rec.CreatedAt = rec.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recordings (
			id, family, scenario, document, exit_code, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Family,
		rec.Scenario,
		rec.Document,
		rec.ExitCode,
		rec.DurationMS,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert recording: %w", err)
	}

	return nil
}

// Get retrieves a journal entry by ID.
func (r *RecordingRepository) Get(ctx context.Context, id string) (*models.Recording, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, family, scenario, document, exit_code, duration_ms, created_at
		FROM recordings WHERE id = ?
	`, id)

	rec, err := scanRecording(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordingNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListRecent returns the most recent journal entries across all families,
// newest first.
func (r *RecordingRepository) ListRecent(ctx context.Context, limit int) ([]*models.Recording, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, family, scenario, document, exit_code, duration_ms, created_at
		FROM recordings
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	return collectRecordings(rows)
}

// ListByFamily returns journal entries for one command family, newest
// first.
func (r *RecordingRepository) ListByFamily(ctx context.Context, family string, limit int) ([]*models.Recording, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, family, scenario, document, exit_code, duration_ms, created_at
		FROM recordings
		WHERE family = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, family, limit)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	return collectRecordings(rows)
}

func collectRecordings(rows *sql.Rows) ([]*models.Recording, error) {
	var recordings []*models.Recording
	for rows.Next() {
		rec, err := scanRecording(rows.Scan)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return recordings, nil
}

func scanRecording(scan func(...any) error) (*models.Recording, error) {
	var rec models.Recording
	var createdAt string

	if err := scan(
		&rec.ID,
		&rec.Family,
		&rec.Scenario,
		&rec.Document,
		&rec.ExitCode,
		&rec.DurationMS,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan recording: %w", err)
	}

	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		rec.CreatedAt = t
	}

	return &rec, nil
}
