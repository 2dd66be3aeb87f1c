package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "tok-env")
	t.Setenv("INPUT_CONFIGURATION-PATH", ".github/labeler.yml")
	t.Setenv("GITHUB_REPOSITORY", "octo/repo")
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("INPUT_NOT-BEFORE", "2024-06-01T00:00:00Z")

	cfg, err := FromEnvironment()
	require.NoError(t, err)

	assert.Equal(t, "tok-env", cfg.Token)
	assert.Equal(t, ".github/labeler.yml", cfg.RulesPath)
	assert.Equal(t, "octo/repo", cfg.Repository)
	assert.Equal(t, "/tmp/event.json", cfg.EventPath)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), cfg.NotBefore)
}

func TestFromEnvironment_RepoTokenInputFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("INPUT_REPO-TOKEN", "tok-input")

	cfg, err := FromEnvironment()
	require.NoError(t, err)

	assert.Equal(t, "tok-input", cfg.Token)
}

func TestFromEnvironment_BadNotBefore(t *testing.T) {
	t.Setenv("INPUT_NOT-BEFORE", "soon")

	_, err := FromEnvironment()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"soon"`)
}

func TestParseNotBefore_Layouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-06-01T12:30:00Z", time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-06-01T12:30:00+02:00", time.Date(2024, 6, 1, 12, 30, 0, 0, time.FixedZone("", 2*60*60))},
		{"2024-06-01T12:30:00", time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"  2024-06-01  ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseNotBefore(tt.raw)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseNotBefore_Invalid(t *testing.T) {
	_, err := ParseNotBefore("yesterday")

	assert.Error(t, err)
}

func TestSplitRepository(t *testing.T) {
	cfg := &Config{Repository: "octo/repo"}

	owner, name, err := cfg.SplitRepository()
	require.NoError(t, err)
	assert.Equal(t, "octo", owner)
	assert.Equal(t, "repo", name)
}

func TestSplitRepository_Invalid(t *testing.T) {
	for _, repo := range []string{"", "octo", "/repo", "octo/"} {
		cfg := &Config{Repository: repo}
		_, _, err := cfg.SplitRepository()
		assert.Error(t, err, "repository %q", repo)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Token:      "tok",
		RulesPath:  ".github/labeler.yml",
		Repository: "octo/repo",
		EventPath:  "/tmp/event.json",
	}

	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing token", func(c *Config) { c.Token = "" }},
		{"missing rules path", func(c *Config) { c.RulesPath = "" }},
		{"bad repository", func(c *Config) { c.Repository = "nope" }},
		{"missing event path", func(c *Config) { c.EventPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
