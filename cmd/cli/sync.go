package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/stacksync/internal/config"
	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/internal/wire"
)

var (
	syncRemote      string
	syncDefaultBase string
	syncMarker      string
	syncDryRun      bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the stack and reconcile its pull request chain",
	Long: `Push all stack commits to the remote, then walk the stack oldest to
newest: create a pull request for every bookmark that has none, re-base any
pull request whose base drifted from its predecessor, and rewrite the stack
overview section in every pull request body.

With --dry-run the full plan is computed and printed but nothing is pushed,
created, or edited.

Examples:
  stacksync sync
  stacksync sync --dry-run
  stacksync sync --default-base develop --marker team-stack`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	syncCmd.Flags().StringVar(&syncRemote, "remote", "", "Git remote to push to (default: origin)")
	syncCmd.Flags().StringVar(&syncDefaultBase, "default-base", "", "Base branch for the bottom of the stack (default: the repo's default branch)")
	syncCmd.Flags().StringVar(&syncMarker, "marker", "", "Marker key delimiting the managed section in pull request bodies")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute and print the plan without changing anything")
	rootCmd.AddCommand(syncCmd)
}

// loadEffectiveConfig layers the configuration: defaults and environment
// first, then the repository's .stacksync.yml, then explicit flags.
func loadEffectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	repoCfg, err := config.LoadRepoConfig(cfg.RepoPath)
	if err != nil && !errors.Is(err, config.ErrRepoConfigNotFound) {
		return nil, err
	}
	repoCfg.Apply(cfg)

	if cmd.Flags().Changed("remote") {
		cfg.Remote = syncRemote
	}
	if cmd.Flags().Changed("default-base") {
		cfg.DefaultBase = syncDefaultBase
	}
	if cmd.Flags().Changed("marker") {
		cfg.MarkerKey = syncMarker
	}
	return cfg, nil
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}

	a := wire.InitializeApp(cfg)

	if syncDryRun {
		warnColor.Println("Dry-run: computing the plan, no changes will be made.")
	}
	titleColor.Printf("Syncing stack in %s\n", cfg.RepoPath)

	res, err := a.Sync(cmd.Context(), syncDryRun)
	if err != nil {
		return err
	}

	if len(res.Order) == 0 {
		dimColor.Println("No stack bookmarks between trunk and the working copy; nothing to do.")
		return nil
	}

	fmt.Printf("Base branch: %s\n", res.Base)
	for i, entry := range res.Entries {
		line := fmt.Sprintf("  %d. %-24s %-12s base: %s", i+1, entry.Branch, prLabel(entry), entry.Base)
		switch entry.Action {
		case core.ActionCreated:
			successColor.Printf("%s (created)\n", line)
		case core.ActionRebased:
			warnColor.Printf("%s (rebased)\n", line)
		case core.ActionPlanned:
			dimColor.Printf("%s (would create)\n", line)
		default:
			fmt.Printf("%s\n", line)
		}
	}

	if res.DryRun {
		warnColor.Println("Dry-run: no changes were made.")
	} else {
		successColor.Printf("✓ Stack of %d synchronized.\n", len(res.Order))
	}
	return nil
}

func prLabel(entry core.SyncEntry) string {
	if entry.Number == 0 {
		return "(no PR)"
	}
	return fmt.Sprintf("#%d", entry.Number)
}
