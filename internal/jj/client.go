// Package jj is the Jujutsu collaborator. It shells out to the jj CLI for
// pushing the stack, listing stack bookmarks, and producing the topologically
// ordered, bookmark-annotated commit list the orderer consumes. jj itself is
// a black box; this package only builds arguments and parses output.
package jj

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/internal/execx"
)

// stackRevset selects every commit after trunk up to the working copy, which
// is exactly the linear stack this tool manages.
const stackRevset = "trunk()..@"

// Client wraps the jj CLI for one repository.
type Client struct {
	runner execx.Runner
	repo   string
	logger *slog.Logger
}

// NewClient returns a jj Client operating on the repository at repoPath.
func NewClient(runner execx.Runner, repoPath string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{runner: runner, repo: repoPath, logger: logger}
}

// PushStack pushes all stack commits to the remote, allowing creation of new
// remote bookmarks. Pull requests must never reference bookmarks absent on
// the remote, so the reconciler calls this before touching any of them.
func (c *Client) PushStack(ctx context.Context, remote string) error {
	c.logger.InfoContext(ctx, "pushing stack", "remote", remote, "revset", stackRevset)
	_, err := c.runner.Run(ctx, c.repo,
		"jj", "git", "push", "--remote", remote, "-r", stackRevset, "--allow-new")
	return err
}

// ListBranches reports the stack bookmarks with their target commits. It
// prefers the templated bookmark listing and falls back to scraping the log
// output when that fails; only when both formats fail does it give up.
func (c *Client) ListBranches(ctx context.Context) ([]core.Branch, error) {
	branches, err := c.listTemplated(ctx)
	if err == nil {
		return branches, nil
	}
	c.logger.DebugContext(ctx, "templated bookmark listing failed, trying log fallback", "error", err)

	branches, fallbackErr := c.listFromLog(ctx)
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	return branches, nil
}

// listTemplated queries bookmark names and targets in one machine-parseable
// format: one "name<TAB>commit" line per bookmark.
func (c *Client) listTemplated(ctx context.Context) ([]core.Branch, error) {
	res, err := c.runner.Run(ctx, c.repo,
		"jj", "bookmark", "list", "-r", stackRevset,
		"-T", `name ++ "\t" ++ if(normal_target, normal_target.commit_id(), "") ++ "\n"`)
	if err != nil {
		return nil, err
	}

	var branches []core.Branch
	for line := range strings.Lines(res.Stdout) {
		name, target, ok := strings.Cut(strings.TrimRight(line, "\n"), "\t")
		if !ok {
			continue
		}
		name = sanitizeBookmark(name)
		if name == "" {
			continue
		}
		branches = append(branches, core.Branch{Name: name, Target: target})
	}
	return dedupeBranches(branches), nil
}

// listFromLog scrapes bookmark names out of the plain log template. The log
// prints newest first, so lines are reversed to keep the oldest-first
// convention; targets are unknown in this format.
func (c *Client) listFromLog(ctx context.Context) ([]core.Branch, error) {
	res, err := c.runner.Run(ctx, c.repo,
		"jj", "log", "-r", stackRevset, "--no-graph", "-T", `bookmarks ++ "\n"`)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")
	var branches []core.Branch
	for i := len(lines) - 1; i >= 0; i-- {
		name := sanitizeBookmark(lines[i])
		if name == "" {
			continue
		}
		branches = append(branches, core.Branch{Name: name})
	}
	return dedupeBranches(branches), nil
}

// TopoBookmarks asks jj, in one query, for the topologically ordered commits
// reachable from the union of the given bookmarks (bounded below by trunk),
// ancestors first. Each returned element is the sanitized bookmark set of one
// commit; commits without bookmarks are skipped.
func (c *Client) TopoBookmarks(ctx context.Context, names []string) ([][]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, quoteRevsetString(n))
	}
	revset := "trunk()..(" + strings.Join(quoted, " | ") + ")"

	res, err := c.runner.Run(ctx, c.repo,
		"jj", "log", "--no-graph", "--reversed", "-r", revset, "-T", `bookmarks ++ "\n"`)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for line := range strings.Lines(res.Stdout) {
		var marks []string
		for _, field := range strings.Fields(line) {
			if name := sanitizeBookmark(field); name != "" {
				marks = append(marks, name)
			}
		}
		if len(marks) > 0 {
			out = append(out, marks)
		}
	}
	return out, nil
}

// sanitizeBookmark normalizes one raw bookmark token from jj output. Remote
// tracking entries are dropped, a trailing colon or out-of-sync asterisk is
// stripped, and when several names share a line only the first survives.
func sanitizeBookmark(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" || strings.HasPrefix(name, "@") {
		return ""
	}
	if before, _, found := strings.Cut(name, " "); found {
		name = before
	}
	name = strings.TrimSuffix(name, ":")
	name = strings.TrimSuffix(name, "*")
	if strings.ContainsRune(name, '@') {
		// "feat-a@origin" style remote tracking entry
		return ""
	}
	return name
}

// quoteRevsetString wraps a bookmark name in a jj revset string literal,
// escaping backslashes and double quotes.
func quoteRevsetString(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func dedupeBranches(branches []core.Branch) []core.Branch {
	seen := make(map[string]struct{}, len(branches))
	out := branches[:0]
	for _, b := range branches {
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		out = append(out, b)
	}
	return out
}
