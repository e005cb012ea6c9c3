package stack

import (
	"context"
	"log/slog"

	"github.com/sevigo/stacksync/internal/core"
)

// DefaultMarkerKey delimits the managed section when no key is configured.
const DefaultMarkerKey = "jj-stack-sync"

// VCS is the version-control collaborator the reconciler drives.
type VCS interface {
	PushStack(ctx context.Context, remote string) error
	ListBranches(ctx context.Context) ([]core.Branch, error)
	TopoLister
}

// Host is the code-host collaborator. Update takes nil for fields to leave
// untouched. All mutations are fail-fast: the reconciler aborts on the first
// error rather than leaving a half-updated, misleading chain.
type Host interface {
	ListOpenByHead(ctx context.Context) (map[string]core.PullRequest, error)
	Create(ctx context.Context, head, base, title, body string) (int, error)
	Update(ctx context.Context, number int, base, body *string) error
	DefaultBranch(ctx context.Context) (string, error)
}

// Options configures one reconciliation run.
type Options struct {
	Remote      string
	DefaultBase string
	MarkerKey   string
	// DryRun computes the full plan but issues no mutating call at all,
	// including the initial push.
	DryRun bool
}

// Reconciler keeps the open pull request chain in step with the local stack.
// It holds no state across runs; everything is re-read from the
// collaborators on each Sync.
type Reconciler struct {
	vcs       VCS
	host      Host
	resolvers []ResolverFunc
	logger    *slog.Logger
}

// NewReconciler builds a Reconciler. The resolvers are the default-base
// strategies tried in order when no override is given; pass the host's
// default-branch lookup first and any local fallbacks after it.
func NewReconciler(vcs VCS, host Host, logger *slog.Logger, resolvers ...ResolverFunc) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	if len(resolvers) == 0 {
		resolvers = []ResolverFunc{host.DefaultBranch}
	}
	return &Reconciler{vcs: vcs, host: host, resolvers: resolvers, logger: logger}
}

// Sync runs the single-pass reconciliation state machine: publish, discover,
// plan bases, reconcile the chain oldest to newest, then rewrite every real
// pull request's stack section. The returned result carries the computed
// order and per-position actions for the CLI to report; in dry-run it is the
// complete plan that would have been applied.
func (r *Reconciler) Sync(ctx context.Context, opts Options) (*core.SyncResult, error) {
	marker := opts.MarkerKey
	if marker == "" {
		marker = DefaultMarkerKey
	}

	if opts.DryRun {
		r.logger.InfoContext(ctx, "dry-run: skipping push")
	} else {
		if err := r.vcs.PushStack(ctx, opts.Remote); err != nil {
			return nil, err
		}
	}

	branches, err := r.vcs.ListBranches(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}

	result := &core.SyncResult{
		Order:  Order(ctx, r.vcs, names),
		DryRun: opts.DryRun,
	}
	if len(result.Order) == 0 {
		r.logger.InfoContext(ctx, "no stack bookmarks found, nothing to do")
		return result, nil
	}

	result.Base = ResolveDefaultBase(ctx, opts.DefaultBase, r.resolvers...)
	r.logger.InfoContext(ctx, "reconciling stack", "order", result.Order, "base", result.Base, "dry_run", opts.DryRun)

	byHead, err := r.host.ListOpenByHead(ctx)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(result.Order))
	for idx, name := range result.Order {
		base := result.Base
		if idx > 0 {
			base = result.Order[idx-1]
		}

		pr, found := byHead[name]
		switch {
		case !found && opts.DryRun:
			// Placeholder number 0 keeps the chain indices aligned; it is
			// never rendered into a real body and never persisted.
			numbers = append(numbers, 0)
			result.Entries = append(result.Entries, core.SyncEntry{
				Branch: name, Number: 0, Base: base, Action: core.ActionPlanned,
			})

		case !found:
			number, err := r.host.Create(ctx, name, base, name, "")
			if err != nil {
				return nil, err
			}
			byHead[name] = core.PullRequest{Number: number, Head: name, Base: base}
			numbers = append(numbers, number)
			result.Entries = append(result.Entries, core.SyncEntry{
				Branch: name, Number: number, Base: base, Action: core.ActionCreated,
			})

		default:
			numbers = append(numbers, pr.Number)
			action := core.ActionUnchanged
			if pr.Base != base {
				action = core.ActionRebased
				if !opts.DryRun {
					if err := r.host.Update(ctx, pr.Number, &base, nil); err != nil {
						return nil, err
					}
				}
			}
			result.Entries = append(result.Entries, core.SyncEntry{
				Branch: name, Number: pr.Number, Base: base, Action: action,
			})
		}
	}

	for idx, name := range result.Order {
		pr, found := byHead[name]
		if !found || pr.Number == 0 {
			continue
		}
		section := RenderSection(marker, numbers, idx)
		merged := UpsertSection(pr.Body, marker, section)
		if opts.DryRun {
			continue
		}
		if err := r.host.Update(ctx, pr.Number, nil, &merged); err != nil {
			return nil, err
		}
	}

	return result, nil
}
