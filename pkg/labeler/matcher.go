package labeler

import "regexp"

// Matches reports whether every pattern finds a match somewhere in body.
// A single miss short-circuits to false: a label requires all of its
// configured signals to be present, not just one.
func Matches(body string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if !re.MatchString(body) {
			return false
		}
	}
	return true
}

// ComputeDelta evaluates every rule against the issue body. A rule that
// matches puts its label in ToAdd; one that does not puts it in ToRemove,
// regardless of whether the issue currently carries it. The reconciler is
// responsible for no-op-ing removals of absent labels. Labels appear in the
// document order of the rules file.
func ComputeDelta(rules RuleSet, body string) LabelDelta {
	var delta LabelDelta

	for _, rule := range rules.Rules {
		if Matches(body, rule.Patterns) {
			delta.ToAdd = append(delta.ToAdd, rule.Label)
		} else {
			delta.ToRemove = append(delta.ToRemove, rule.Label)
		}
	}

	return delta
}
