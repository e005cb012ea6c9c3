// Package stack implements the reconciliation core: deriving a deterministic
// linear order for a set of stack bookmarks, rendering and merging the
// machine-owned section of pull request bodies, and driving the collaborators
// so the open pull request chain matches the local stack. Everything here
// depends on collaborator interfaces only; the jj and github packages plug in
// behind them.
package stack

import (
	"context"
	"log/slog"
)

// TopoLister supplies the topologically ordered, bookmark-annotated commit
// list for a set of bookmark names, ancestors before descendants.
type TopoLister interface {
	TopoBookmarks(ctx context.Context, names []string) ([][]string, error)
}

// Order produces the stack order, oldest to newest, for the given bookmark
// names. It is total: topology failures or bookmarks missing from the
// topological result degrade to "unknown position last" in original input
// order instead of returning an error. The result is a permutation of the
// deduplicated input; names outside the input are never introduced.
func Order(ctx context.Context, topo TopoLister, names []string) []string {
	input := dedupe(names)
	if len(input) == 0 {
		return nil
	}

	inputSet := make(map[string]bool, len(input))
	for _, name := range input {
		inputSet[name] = true
	}

	ordered := make([]string, 0, len(input))
	emitted := make(map[string]bool, len(input))

	rows, err := topo.TopoBookmarks(ctx, input)
	if err != nil {
		slog.DebugContext(ctx, "topological query failed, keeping input order", "error", err)
	}
	for _, row := range rows {
		for _, name := range row {
			if inputSet[name] && !emitted[name] {
				emitted[name] = true
				ordered = append(ordered, name)
			}
		}
	}

	for _, name := range input {
		if !emitted[name] {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

// dedupe collapses duplicate names, first occurrence wins, order preserved.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
