package labeler

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the subset of the trigger event payload the labeler consumes.
// Pointer fields distinguish an absent value from an empty one: a missing
// issue number or body makes the run a silent no-op.
type Event struct {
	Issue *EventIssue `json:"issue"`
}

// EventIssue carries the issue reference from the event payload.
type EventIssue struct {
	Number *int    `json:"number"`
	Body   *string `json:"body"`
}

// LoadEvent reads and decodes the trigger event payload from path.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %w", err)
	}

	return &ev, nil
}

// IssueRef returns the issue number and body from the event, or ErrNoIssue
// when either is absent.
func (e *Event) IssueRef() (int, string, error) {
	if e == nil || e.Issue == nil || e.Issue.Number == nil || e.Issue.Body == nil {
		return 0, "", ErrNoIssue
	}
	return *e.Issue.Number, *e.Issue.Body, nil
}
