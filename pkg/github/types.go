package github

import "time"

// Issue is a point-in-time snapshot of a GitHub issue. It is read once per
// run; all changes go through the remote API, never through this struct.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
}

// HasLabel reports whether the snapshot carries the named label.
func (i *Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}
