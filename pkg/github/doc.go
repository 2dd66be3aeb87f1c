// Package github wraps the GitHub REST API operations needed to label a
// single issue. It exposes the APIClient interface so the labeling logic can
// run against a mock implementation in tests, and classifies API failures
// into a small structured error taxonomy with retry support.
package github
