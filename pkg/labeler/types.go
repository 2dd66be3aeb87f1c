package labeler

import "regexp"

// Rule associates a label with the regular expressions that all must match
// the issue body for the label to apply.
type Rule struct {
	Label    string
	Patterns []*regexp.Regexp

	// Sources holds the original pattern strings, in document order.
	Sources []string
}

// RuleSet is an ordered collection of rules, one per label, in the insertion
// order of the rules document. Immutable once loaded.
type RuleSet struct {
	Rules []Rule
}

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int {
	return len(rs.Rules)
}

// LabelDelta holds the two disjoint outcomes of a matching pass: labels the
// issue should carry and labels it should not. Together they cover every
// label named by the rule set.
type LabelDelta struct {
	ToAdd    []string
	ToRemove []string
}

// Empty reports whether the delta contains no label names at all.
func (d LabelDelta) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}
