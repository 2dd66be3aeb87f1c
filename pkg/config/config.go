// Package config resolves the run parameters for a labeling run from
// command-line flags and the environment variables GitHub Actions provides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config represents the parameters of a single labeling run
type Config struct {
	// Token is the GitHub access token. Required.
	Token string

	// RulesPath is the repository-relative path of the labeling rules file.
	// Required.
	RulesPath string

	// Repository is the target repository in "owner/name" form. Required.
	Repository string

	// EventPath is the local path of the trigger event payload JSON.
	EventPath string

	// NotBefore is the optional cutoff instant: issues created earlier are
	// exempt from labeling. Zero means no cutoff.
	NotBefore time.Time
}

// Timestamp layouts accepted for the not-before input, tried in order.
var notBeforeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FromEnvironment builds a Config from the environment a GitHub Actions run
// provides. Action inputs appear as INPUT_<NAME> variables.
func FromEnvironment() (*Config, error) {
	cfg := &Config{
		Token:      os.Getenv("GITHUB_TOKEN"),
		RulesPath:  os.Getenv("INPUT_CONFIGURATION-PATH"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		EventPath:  os.Getenv("GITHUB_EVENT_PATH"),
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("INPUT_REPO-TOKEN")
	}

	if raw := os.Getenv("INPUT_NOT-BEFORE"); raw != "" {
		notBefore, err := ParseNotBefore(raw)
		if err != nil {
			return nil, err
		}
		cfg.NotBefore = notBefore
	}

	return cfg, nil
}

// ParseNotBefore parses a cutoff timestamp, accepting RFC 3339 and a couple
// of laxer date layouts.
func ParseNotBefore(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range notBeforeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse not-before timestamp %q: expected an RFC 3339 instant", raw)
}

// SplitRepository splits the "owner/name" repository reference.
func (c *Config) SplitRepository() (owner, name string, err error) {
	parts := strings.SplitN(c.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", c.Repository)
	}
	return parts[0], parts[1], nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("GitHub token is required: pass --token or set GITHUB_TOKEN")
	}

	if c.RulesPath == "" {
		return fmt.Errorf("rules path is required: pass --rules or set the configuration-path input")
	}

	if _, _, err := c.SplitRepository(); err != nil {
		return err
	}

	if c.EventPath == "" {
		return fmt.Errorf("event path is required: pass --event or set GITHUB_EVENT_PATH")
	}

	return nil
}
