// Package models defines the data types shared across cmdmock.
package models

// Scenario is one named, recorded command invocation for a command family.
// Scenarios are created by the recorder and loaded read-only by the player.
type Scenario struct {
	// Name uniquely identifies the scenario within its owning document.
	Name string

	// Template is the token pattern a live invocation must match.
	// Tokens may contain placeholders such as "{file}" or "--grep={term}".
	Template []string

	// Stdout is the captured standard output of the recorded execution.
	Stdout string

	// Stderr is the captured standard error of the recorded execution.
	Stderr string

	// ExitCode is the recorded process exit code.
	ExitCode int

	// Output is the document-relative path of the file holding Stdout.
	// Set by the store when a scenario is written or loaded.
	Output string
}

// Result is the outcome of a process execution, real or mocked.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit code.
	ExitCode int
}
