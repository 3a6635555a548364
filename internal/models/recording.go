package models

import "time"

// Recording is a journal entry describing one completed record session.
type Recording struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// Family is the command family the scenario belongs to.
	Family string `json:"family"`

	// Scenario is the recorded scenario name.
	Scenario string `json:"scenario"`

	// Document is the family-relative path of the scenario document.
	Document string `json:"document"`

	// ExitCode is the exit code captured from the real execution.
	ExitCode int `json:"exit_code"`

	// DurationMS is how long the real execution took, in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// CreatedAt is when the recording completed.
	CreatedAt time.Time `json:"created_at"`
}
