// Package app assembles the configuration, logger, collaborator clients, and
// reconciler into one application value the CLI commands drive.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/stacksync/internal/config"
	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/internal/github"
	"github.com/sevigo/stacksync/internal/gitutil"
	"github.com/sevigo/stacksync/internal/jj"
	"github.com/sevigo/stacksync/internal/stack"
)

// App holds the wired application components.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	reconciler *stack.Reconciler
}

// New builds the App. The default-base resolution order is the code host's
// configured default branch, then the colocated .git's origin/HEAD, then the
// hardcoded fallback inside the resolver.
func New(cfg *config.Config, logger *slog.Logger, vcs *jj.Client, host *github.Client) *App {
	reconciler := stack.NewReconciler(vcs, host, logger,
		host.DefaultBranch,
		func(context.Context) (string, error) { return gitutil.DefaultBranch(cfg.RepoPath) },
	)
	return &App{cfg: cfg, logger: logger, reconciler: reconciler}
}

// Config exposes the effective configuration for the CLI layer.
func (a *App) Config() *config.Config { return a.cfg }

// Sync runs one reconciliation pass. With dryRun set the full plan is
// computed and returned but no external state changes.
func (a *App) Sync(ctx context.Context, dryRun bool) (*core.SyncResult, error) {
	return a.reconciler.Sync(ctx, stack.Options{
		Remote:      a.cfg.Remote,
		DefaultBase: a.cfg.DefaultBase,
		MarkerKey:   a.cfg.MarkerKey,
		DryRun:      dryRun,
	})
}

// Status reports the current plan without mutating anything; it is exactly a
// dry-run Sync.
func (a *App) Status(ctx context.Context) (*core.SyncResult, error) {
	return a.Sync(ctx, true)
}
