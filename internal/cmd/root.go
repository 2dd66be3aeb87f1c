package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitSkip is the distinguished exit code for intentional skips (issue older
// than the cutoff, rules path unresolvable). 78 is the old Actions "neutral"
// conclusion, kept so workflows can tell a skip from a failure.
const exitSkip = 78

// skipError carries the skip exit code through cobra's error return.
type skipError struct {
	reason string
}

func (e *skipError) Error() string {
	return e.reason
}

var rootCmd = &cobra.Command{
	Use:   "issuelabeler",
	Short: "Apply labels to GitHub issues based on regex matches against the issue body",
	Long: `Issuelabeler applies or removes labels on a GitHub issue based on regular
expression matches against its body. A YAML file in the target repository maps
each label to one or more patterns; a label applies only when every one of its
patterns matches. The tool runs once per triggering event (issue opened or
edited) and reconciles the issue's labels with the rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var skip *skipError
		if errors.As(err, &skip) {
			os.Exit(exitSkip)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
