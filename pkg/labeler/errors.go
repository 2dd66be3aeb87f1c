package labeler

import (
	"errors"
	"fmt"
)

// ErrNoIssue indicates the trigger event carried no issue number or body.
// The run treats it as a silent no-op, not a failure.
var ErrNoIssue = errors.New("event payload contains no issue")

// ConfigError indicates a malformed rules document. It always names the
// offending label so the author can find the bad entry.
type ConfigError struct {
	Label   string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("invalid rules document: %s", e.Message)
	}
	return fmt.Sprintf("invalid rule for label %q: %s", e.Label, e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ContentError indicates the configured rules path did not resolve to a
// retrievable file. It ends the run with the distinguished skip outcome
// rather than a failure.
type ContentError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *ContentError) Error() string {
	return fmt.Sprintf("rules file %q could not be retrieved", e.Path)
}

// Unwrap returns the underlying error
func (e *ContentError) Unwrap() error {
	return e.Cause
}
