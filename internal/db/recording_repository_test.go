package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opencode-ai/cmdmock/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := database.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestRecordingRepositoryAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordingRepository(openTestDB(t))

	rec := &models.Recording{
		Family:     "git",
		Scenario:   "basic",
		Document:   "log.toml",
		ExitCode:   0,
		DurationMS: 12,
	}

	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected ID to be set")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	retrieved, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if retrieved.Family != "git" || retrieved.Scenario != "basic" {
		t.Fatalf("retrieved = %+v", retrieved)
	}
	if retrieved.DurationMS != 12 {
		t.Fatalf("duration = %d, want 12", retrieved.DurationMS)
	}
}

func TestRecordingRepositoryAppendInvalid(t *testing.T) {
	repo := NewRecordingRepository(openTestDB(t))

	err := repo.Append(context.Background(), &models.Recording{Family: "git"})
	if !errors.Is(err, ErrInvalidRecording) {
		t.Fatalf("expected ErrInvalidRecording, got %v", err)
	}
}

func TestRecordingRepositoryGetMissing(t *testing.T) {
	repo := NewRecordingRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrRecordingNotFound) {
		t.Fatalf("expected ErrRecordingNotFound, got %v", err)
	}
}

func TestRecordingRepositoryListByFamily(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordingRepository(openTestDB(t))

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entries := []*models.Recording{
		{Family: "git", Scenario: "first", Document: "a.toml", CreatedAt: base},
		{Family: "git", Scenario: "second", Document: "a.toml", CreatedAt: base.Add(time.Minute)},
		{Family: "docker", Scenario: "ps", Document: "ps.toml", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range entries {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	gitOnly, err := repo.ListByFamily(ctx, "git", 10)
	if err != nil {
		t.Fatalf("ListByFamily: %v", err)
	}
	if len(gitOnly) != 2 {
		t.Fatalf("expected 2 git recordings, got %d", len(gitOnly))
	}
	// newest first
	if gitOnly[0].Scenario != "second" {
		t.Fatalf("expected newest first, got %q", gitOnly[0].Scenario)
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected limit 2, got %d", len(recent))
	}
	if recent[0].Family != "docker" {
		t.Fatalf("expected docker newest, got %q", recent[0].Family)
	}
}
