package labeler

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileAll(t *testing.T, sources ...string) []*regexp.Regexp {
	t.Helper()

	patterns := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		re, err := regexp.Compile(src)
		require.NoError(t, err)
		patterns = append(patterns, re)
	}
	return patterns
}

func TestMatches_AllPatternsMustMatch(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		patterns []string
		want     bool
	}{
		{
			name:     "single pattern matches",
			body:     "it crashed on startup",
			patterns: []string{"crash"},
			want:     true,
		},
		{
			name:     "single pattern misses",
			body:     "feature request",
			patterns: []string{"crash"},
			want:     false,
		},
		{
			name:     "all patterns match",
			body:     "it crashed with a question?",
			patterns: []string{"question", `\?`},
			want:     true,
		},
		{
			name:     "one miss short-circuits to false",
			body:     "a question without punctuation",
			patterns: []string{"question", `\?`},
			want:     false,
		},
		{
			name:     "regex not substring",
			body:     "version v1.2.3 reported",
			patterns: []string{`v\d+\.\d+\.\d+`},
			want:     true,
		},
		{
			name:     "empty body only matches empty-matching patterns",
			body:     "",
			patterns: []string{"^$"},
			want:     true,
		},
		{
			name:     "empty body misses literal pattern",
			body:     "",
			patterns: []string{"crash"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.body, compileAll(t, tt.patterns...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDelta_PartitionsRuleLabels(t *testing.T) {
	rules, err := ParseRules([]byte("bug: crash\nneeds-info:\n  - question\n  - \"\\\\?\"\nenhancement: feature\n"))
	require.NoError(t, err)

	delta := ComputeDelta(rules, "it crashed with a question?")

	assert.Equal(t, []string{"bug", "needs-info"}, delta.ToAdd)
	assert.Equal(t, []string{"enhancement"}, delta.ToRemove)

	// The two sets are disjoint and together cover every rule label
	seen := make(map[string]int)
	for _, l := range delta.ToAdd {
		seen[l]++
	}
	for _, l := range delta.ToRemove {
		seen[l]++
	}
	assert.Len(t, seen, rules.Len())
	for label, count := range seen {
		assert.Equal(t, 1, count, "label %s appears in both sets", label)
	}
}

func TestComputeDelta_EndToEndBothPatternsMatch(t *testing.T) {
	rules, err := ParseRules([]byte("bug: crash\nneeds-info:\n  - question\n  - \"\\\\?\"\n"))
	require.NoError(t, err)

	delta := ComputeDelta(rules, "it crashed with a question?")

	assert.Equal(t, []string{"bug", "needs-info"}, delta.ToAdd)
	assert.Empty(t, delta.ToRemove)
}

func TestComputeDelta_EndToEndSecondPatternFails(t *testing.T) {
	rules, err := ParseRules([]byte("bug: crash\nneeds-info:\n  - question\n  - \"\\\\?\"\n"))
	require.NoError(t, err)

	delta := ComputeDelta(rules, "it crashed")

	assert.Equal(t, []string{"bug"}, delta.ToAdd)
	assert.Equal(t, []string{"needs-info"}, delta.ToRemove)
}

func TestComputeDelta_EmptyRuleSet(t *testing.T) {
	delta := ComputeDelta(RuleSet{}, "anything")

	assert.True(t, delta.Empty())
}

func TestComputeDelta_DocumentOrderPreserved(t *testing.T) {
	rules, err := ParseRules([]byte("zebra: z\nalpha: a\nmiddle: m\n"))
	require.NoError(t, err)

	delta := ComputeDelta(rules, "z a m")

	assert.Equal(t, []string{"zebra", "alpha", "middle"}, delta.ToAdd)
}
