package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"issuelabeler/pkg/labeler"
)

var validateCmd = &cobra.Command{
	Use:   "validate <rules-file.yaml>",
	Short: "Validate a labeling rules file",
	Long: `Validate a local labeling rules file without touching GitHub.

The file must be a top-level YAML mapping of label name to a regex pattern or
a sequence of regex patterns. Every pattern is compiled, so typos in regex
syntax are reported here instead of failing a live run.

Examples:
  issuelabeler validate .github/labeler.yml

See examples/labeler.yml for a sample rules file.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	rulesFile := args[0]

	rules, err := labeler.LoadRulesFromFile(rulesFile)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ %s is valid: %d rule(s)\n", rulesFile, rules.Len())
	for _, rule := range rules.Rules {
		fmt.Printf("  • %s: %s\n", rule.Label, strings.Join(rule.Sources, ", "))
	}

	return nil
}
