package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"issuelabeler/pkg/config"
	"issuelabeler/pkg/github"
	"issuelabeler/pkg/labeler"
)

var (
	runToken     string
	runRules     string
	runRepo      string
	runEvent     string
	runNotBefore string
	runDryRun    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one labeling pass for the issue in the trigger event",
	Long: `Run a single labeling pass. The issue number and body come from the trigger
event payload; the labeling rules are fetched from the target repository at
the configured path. Labels whose patterns all match the body are added in
one batched call, labels whose patterns do not all match are removed.

Every flag falls back to the environment a GitHub Actions run provides
(GITHUB_TOKEN, GITHUB_REPOSITORY, GITHUB_EVENT_PATH, and the
configuration-path / not-before action inputs), so inside a workflow a bare
"issuelabeler run" is enough.

Exit codes:
  0   labels reconciled, or nothing to do
  78  intentional skip: issue predates the cutoff, or rules path not found
  1   any other failure`,
	Args: cobra.NoArgs,
	RunE: runLabeler,
}

func init() {
	runCmd.Flags().StringVar(&runToken, "token", "", "GitHub access token (falls back to GITHUB_TOKEN)")
	runCmd.Flags().StringVar(&runRules, "rules", "", "Repository-relative path of the labeling rules file")
	runCmd.Flags().StringVar(&runRepo, "repo", "", "Target repository as owner/name (falls back to GITHUB_REPOSITORY)")
	runCmd.Flags().StringVar(&runEvent, "event", "", "Path of the trigger event payload JSON (falls back to GITHUB_EVENT_PATH)")
	runCmd.Flags().StringVar(&runNotBefore, "not-before", "", "Cutoff instant (RFC 3339); issues created earlier are skipped")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Compute and print the label delta without applying it")
}

func runLabeler(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnvironment()
	if err != nil {
		return err
	}

	// Flags override environment
	if runToken != "" {
		cfg.Token = runToken
	}
	if runRules != "" {
		cfg.RulesPath = runRules
	}
	if runRepo != "" {
		cfg.Repository = runRepo
	}
	if runEvent != "" {
		cfg.EventPath = runEvent
	}
	if runNotBefore != "" {
		notBefore, err := config.ParseNotBefore(runNotBefore)
		if err != nil {
			return err
		}
		cfg.NotBefore = notBefore
	}

	token, err := github.ResolveToken(cfg.Token)
	if err != nil {
		return err
	}
	cfg.Token = token

	if err := cfg.Validate(); err != nil {
		return err
	}

	owner, repo, err := cfg.SplitRepository()
	if err != nil {
		return err
	}

	authManager := github.NewAuthManager()
	if err := authManager.Authenticate(cfg.Token); err != nil {
		return err
	}

	// The default workflow token is an installation token and cannot see
	// /user; only hard-fail validation on bad credentials.
	if info, err := authManager.ValidateToken(context.Background()); err != nil {
		var ghErr *github.GitHubError
		if errors.As(err, &ghErr) && ghErr.Type == github.ErrorTypeAuth {
			fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
			return err
		}
	} else {
		fmt.Printf("✓ Authenticated as %s\n", info.User)
	}

	ev, err := labeler.LoadEvent(cfg.EventPath)
	if err != nil {
		return err
	}

	runner := labeler.NewRunner(github.NewClient(cfg.Token), owner, repo, cfg.RulesPath, cfg.NotBefore)
	runner.DryRun = runDryRun

	result, err := runner.Run(ev)
	if err != nil {
		return fmt.Errorf("labeling run for %s/%s failed: %w", owner, repo, err)
	}

	switch result.Outcome {
	case labeler.OutcomeNoIssue:
		fmt.Printf("✓ Nothing to do: %s\n", result.Reason)
		return nil

	case labeler.OutcomeSkipped:
		fmt.Printf("⏭  Skipped: %s\n", result.Reason)
		return &skipError{reason: result.Reason}

	default:
		displayDelta(result, runDryRun)
		return nil
	}
}

// displayDelta shows the computed label delta in a human-readable form
func displayDelta(result *labeler.Result, isDryRun bool) {
	if isDryRun {
		fmt.Printf("🔍 Dry-run mode: showing computed label delta\n")
	}

	if len(result.Delta.ToAdd) > 0 {
		fmt.Printf("  + Add: %s\n", strings.Join(result.Delta.ToAdd, ", "))
	}
	if len(result.Removed) > 0 {
		fmt.Printf("  - Remove: %s\n", strings.Join(result.Removed, ", "))
	}
	if len(result.Delta.ToAdd) == 0 && len(result.Removed) == 0 {
		fmt.Printf("  No label changes needed - issue is up to date\n")
		return
	}

	if isDryRun {
		fmt.Printf("\n✓ Dry-run completed. No changes were applied.\n")
	} else {
		fmt.Printf("\n✅ Applied %d label change(s)\n", len(result.Delta.ToAdd)+len(result.Removed))
	}
}
