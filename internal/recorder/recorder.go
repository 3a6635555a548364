// Package recorder captures real command executions as replayable
// scenarios and persists them as scenario documents.
package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/cmdmock/internal/logging"
	"github.com/opencode-ai/cmdmock/internal/match"
	"github.com/opencode-ai/cmdmock/internal/models"
	"github.com/opencode-ai/cmdmock/internal/proc"
	"github.com/opencode-ai/cmdmock/internal/store"
)

// Journal receives an entry for each completed record session. Journaling
// is best effort; a journal failure never fails the recording itself.
type Journal interface {
	Append(ctx context.Context, rec *models.Recording) error
}

// Recorder produces scenarios from real command executions for one command
// family.
type Recorder struct {
	family  string
	root    string
	exec    proc.Executor
	store   *store.Store
	journal Journal
	now     func() time.Time
	logger  zerolog.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithExecutor replaces the default local process executor. Tests use this
// to record without spawning real processes; callers use it to record
// through a PTY.
func WithExecutor(exec proc.Executor) Option {
	return func(r *Recorder) {
		r.exec = exec
	}
}

// WithJournal attaches a recording journal.
func WithJournal(journal Journal) Option {
	return func(r *Recorder) {
		r.journal = journal
	}
}

// New creates a recorder for the given command family rooted at the
// fixtures directory.
func New(family, root string, opts ...Option) *Recorder {
	r := &Recorder{
		family: family,
		root:   root,
		exec:   proc.Local{},
		store:  store.New(family, root),
		now:    time.Now,
		logger: logging.Component("recorder"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordScenario substitutes vars into the command template, executes the
// resulting concrete command, and returns a scenario whose template keeps
// the placeholders intact and whose output is the real captured result.
//
// outputPath names the document the scenario is destined for; it is used
// for journaling only, persistence happens in GenerateMockFile. A missing
// template variable fails before any execution. A non-zero exit code or
// stderr output from the real command is captured as scenario data, not
// treated as an error.
func (r *Recorder) RecordScenario(ctx context.Context, command []string, scenarioName, outputPath string, vars map[string]string) (*models.Scenario, error) {
	if len(command) == 0 {
		return nil, proc.ErrEmptyCommand
	}

	template := match.ParseTemplate(command)
	argv, err := template.Substitute(vars)
	if err != nil {
		return nil, fmt.Errorf("build command for scenario %q: %w", scenarioName, err)
	}

	started := r.now()
	result, err := r.exec.Run(ctx, argv)
	if err != nil {
		return nil, fmt.Errorf("execute command for scenario %q: %w", scenarioName, err)
	}
	duration := r.now().Sub(started)

	r.logger.Info().
		Str("family", r.family).
		Str("scenario", scenarioName).
		Strs("argv", argv).
		Int("exit_code", result.ExitCode).
		Msg("scenario recorded")

	scenario := &models.Scenario{
		Name:     scenarioName,
		Template: template.Tokens(),
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: result.ExitCode,
	}

	if r.journal != nil {
		entry := &models.Recording{
			Family:     r.family,
			Scenario:   scenarioName,
			Document:   outputPath,
			ExitCode:   result.ExitCode,
			DurationMS: duration.Milliseconds(),
			CreatedAt:  started,
		}
		if err := r.journal.Append(ctx, entry); err != nil {
			r.logger.Warn().Err(err).Msg("failed to journal recording")
		}
	}

	return scenario, nil
}

// GenerateMockFile writes the given scenarios as a single document at the
// family-relative outputPath, replacing any existing document wholesale,
// plus one captured-stdout file per scenario in the sibling outputs
// directory.
func (r *Recorder) GenerateMockFile(scenarios []*models.Scenario, outputPath string) error {
	return r.store.WriteDocument(scenarios, outputPath)
}
