package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "labeler.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunValidate_ValidFile(t *testing.T) {
	path := writeRules(t, "bug: crash\nneeds-info:\n  - question\n  - \"\\\\?\"\n")

	err := runValidate(validateCmd, []string{path})

	assert.NoError(t, err)
}

func TestRunValidate_BadValueType(t *testing.T) {
	path := writeRules(t, "bug: 42\n")

	err := runValidate(validateCmd, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `label "bug"`)
}

func TestRunValidate_BadRegex(t *testing.T) {
	path := writeRules(t, "bug: \"[unclosed\"\n")

	err := runValidate(validateCmd, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not compile")
}

func TestRunValidate_MissingFile(t *testing.T) {
	err := runValidate(validateCmd, []string{filepath.Join(t.TempDir(), "missing.yml")})

	assert.Error(t, err)
}

func TestSkipError(t *testing.T) {
	err := &skipError{reason: "issue predates cutoff"}

	assert.Equal(t, "issue predates cutoff", err.Error())
}
