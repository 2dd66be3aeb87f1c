package labeler

import (
	"fmt"

	"issuelabeler/pkg/github"
)

// Reconciler applies a computed label delta to an issue through the GitHub
// API.
type Reconciler struct {
	client github.APIClient
	owner  string
	repo   string
}

// NewReconciler creates a new reconciler for the given repository.
func NewReconciler(client github.APIClient, owner, repo string) *Reconciler {
	return &Reconciler{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// Apply issues one batched add call for all of delta.ToAdd (skipped entirely
// when empty) and one remove call per entry of delta.ToRemove. Removals of
// labels the issue does not currently carry are skipped locally, and a
// not-found response from the remove endpoint is tolerated as a no-op. Any
// other failure propagates; labels already added stay added.
func (r *Reconciler) Apply(number int, current []string, delta LabelDelta) error {
	if len(delta.ToAdd) > 0 {
		if err := r.client.AddLabels(r.owner, r.repo, number, delta.ToAdd); err != nil {
			return fmt.Errorf("failed to add labels to issue #%d: %w", number, err)
		}
	}

	attached := make(map[string]bool, len(current))
	for _, label := range current {
		attached[label] = true
	}

	for _, label := range delta.ToRemove {
		if !attached[label] {
			continue
		}
		if err := r.client.RemoveLabel(r.owner, r.repo, number, label); err != nil {
			if github.IsNotFound(err) {
				// Already detached between the list and the remove call
				continue
			}
			return fmt.Errorf("failed to remove label %q from issue #%d: %w", label, number, err)
		}
	}

	return nil
}
