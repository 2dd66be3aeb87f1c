package labeler

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ParseRules parses a rules document into a RuleSet. The document is a
// top-level mapping of label name to either a single pattern string or a
// sequence of pattern strings; a scalar is normalized to a one-element
// sequence. Patterns are compiled eagerly so a bad regex surfaces here, as a
// ConfigError naming the label, before any API mutation can run.
func ParseRules(data []byte) (RuleSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RuleSet{}, &ConfigError{Message: "not valid YAML", Cause: err}
	}

	if len(doc.Content) == 0 {
		// Empty document: nothing to apply, nothing to remove
		return RuleSet{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return RuleSet{}, &ConfigError{Message: "top level must be a mapping of label name to pattern(s)"}
	}

	var rs RuleSet
	seen := make(map[string]bool)

	// Mapping node content alternates key, value
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valueNode := root.Content[i+1]

		label := keyNode.Value
		if seen[label] {
			return RuleSet{}, &ConfigError{Label: label, Message: "duplicate label entry"}
		}
		seen[label] = true

		sources, err := patternStrings(label, valueNode)
		if err != nil {
			return RuleSet{}, err
		}

		rule := Rule{Label: label, Sources: sources}
		for _, src := range sources {
			re, err := regexp.Compile(src)
			if err != nil {
				return RuleSet{}, &ConfigError{
					Label:   label,
					Message: fmt.Sprintf("pattern %q does not compile: %v", src, err),
					Cause:   err,
				}
			}
			rule.Patterns = append(rule.Patterns, re)
		}

		rs.Rules = append(rs.Rules, rule)
	}

	return rs, nil
}

// patternStrings extracts the pattern list for one label, normalizing a
// scalar string to a one-element sequence and rejecting everything else.
func patternStrings(label string, node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return nil, &ConfigError{
				Label:   label,
				Message: fmt.Sprintf("value must be a string or a sequence of strings, got %s", node.Tag),
			}
		}
		return []string{node.Value}, nil

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, &ConfigError{Label: label, Message: "pattern sequence must not be empty"}
		}
		patterns := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return nil, &ConfigError{
					Label:   label,
					Message: "pattern sequence must contain only strings",
				}
			}
			patterns = append(patterns, item.Value)
		}
		return patterns, nil

	default:
		return nil, &ConfigError{
			Label:   label,
			Message: "value must be a string or a sequence of strings",
		}
	}
}

// LoadRulesFromFile parses a rules document from a local file. Used by the
// validate command; a running labeler fetches the document from the target
// repository instead.
func LoadRulesFromFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	return ParseRules(data)
}
