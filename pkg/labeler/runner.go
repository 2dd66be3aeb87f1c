package labeler

import (
	"errors"
	"fmt"
	"time"

	"issuelabeler/pkg/github"
)

// Outcome classifies how a run ended. The command layer maps outcomes to
// process exit behavior so this package stays free of process control.
type Outcome string

const (
	// OutcomeApplied means the delta was computed and reconciled (or would
	// have been, in dry-run mode).
	OutcomeApplied Outcome = "applied"

	// OutcomeNoIssue means the trigger event carried no issue; nothing to do.
	OutcomeNoIssue Outcome = "no_issue"

	// OutcomeSkipped means the run ended intentionally without mutating
	// anything: the issue predates the cutoff or the rules path did not
	// resolve.
	OutcomeSkipped Outcome = "skipped"
)

// Result is the outcome of a single labeling run.
type Result struct {
	Outcome Outcome

	// Delta is the computed label delta; only meaningful for OutcomeApplied.
	Delta LabelDelta

	// Removed holds the labels actually detached, i.e. ToRemove filtered to
	// labels the issue carried.
	Removed []string

	// Reason describes skip and no-op outcomes.
	Reason string
}

// Runner orchestrates one labeling pass: resolve the issue from the trigger
// event, gate on the cutoff, fetch current labels and the rules document,
// compute the delta, and reconcile it.
type Runner struct {
	client    github.APIClient
	owner     string
	repo      string
	rulesPath string
	notBefore time.Time

	// DryRun computes and reports the delta without issuing mutation calls.
	DryRun bool
}

// NewRunner creates a runner for one repository and rules path. A zero
// notBefore disables the cutoff gate.
func NewRunner(client github.APIClient, owner, repo, rulesPath string, notBefore time.Time) *Runner {
	return &Runner{
		client:    client,
		owner:     owner,
		repo:      repo,
		rulesPath: rulesPath,
		notBefore: notBefore,
	}
}

// Run executes a single labeling pass for the issue referenced by the event.
// Skip conditions come back as a Result, not an error; an error means the
// run failed.
func (r *Runner) Run(ev *Event) (*Result, error) {
	number, body, err := ev.IssueRef()
	if err != nil {
		if errors.Is(err, ErrNoIssue) {
			return &Result{Outcome: OutcomeNoIssue, Reason: "event payload contains no issue"}, nil
		}
		return nil, err
	}

	if !r.notBefore.IsZero() {
		issue, err := r.client.GetIssue(r.owner, r.repo, number)
		if err != nil {
			return nil, err
		}
		if issue.CreatedAt.Before(r.notBefore) {
			return &Result{
				Outcome: OutcomeSkipped,
				Reason: fmt.Sprintf("issue #%d was created %s, before the cutoff %s",
					number, issue.CreatedAt.Format(time.RFC3339), r.notBefore.Format(time.RFC3339)),
			}, nil
		}
	}

	current, err := r.client.ListLabels(r.owner, r.repo, number)
	if err != nil {
		return nil, err
	}

	data, err := r.client.GetFileContent(r.owner, r.repo, r.rulesPath)
	if err != nil {
		if github.IsNotFound(err) {
			cerr := &ContentError{Path: r.rulesPath, Cause: err}
			return &Result{Outcome: OutcomeSkipped, Reason: cerr.Error()}, nil
		}
		return nil, err
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}

	delta := ComputeDelta(rules, body)

	result := &Result{
		Outcome: OutcomeApplied,
		Delta:   delta,
		Removed: intersect(delta.ToRemove, current),
	}

	if r.DryRun {
		return result, nil
	}

	reconciler := NewReconciler(r.client, r.owner, r.repo)
	if err := reconciler.Apply(number, current, delta); err != nil {
		return nil, err
	}

	return result, nil
}

// intersect returns the members of want that appear in have, preserving the
// order of want.
func intersect(want, have []string) []string {
	set := make(map[string]bool, len(have))
	for _, label := range have {
		set[label] = true
	}

	var out []string
	for _, label := range want {
		if set[label] {
			out = append(out, label)
		}
	}
	return out
}
