// Package labeler implements body-driven issue labeling. It parses a YAML
// document mapping label names to regular-expression patterns, decides which
// labels an issue should and should not carry, and reconciles that decision
// against the issue's current label set through the GitHub API.
package labeler
