// Package github is the code-host collaborator. It drives the gh CLI, which
// owns authentication and the API surface; this package only shapes arguments
// and parses responses. All mutations are fail-fast: a single failed call is
// returned as-is so the reconciler can abort instead of half-updating a chain.
package github

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/internal/execx"
)

// prNumberRegex extracts the pull request number from the URL gh prints on
// successful creation, e.g. https://github.com/owner/repo/pull/123.
var prNumberRegex = regexp.MustCompile(`/(\d+)$`)

// Client wraps the gh CLI for one repository checkout.
type Client struct {
	runner execx.Runner
	repo   string
	logger *slog.Logger
}

// NewClient returns a gh Client operating on the repository at repoPath.
func NewClient(runner execx.Runner, repoPath string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{runner: runner, repo: repoPath, logger: logger}
}

// ListOpenByHead returns every open pull request indexed by its head branch.
// The index is rebuilt on every call; nothing is cached across runs.
func (c *Client) ListOpenByHead(ctx context.Context) (map[string]core.PullRequest, error) {
	var prs []core.PullRequest
	err := execx.RunJSON(ctx, c.runner, c.repo, &prs,
		"gh", "pr", "list", "--state", "open", "--json", "number,headRefName,baseRefName,body")
	if err != nil {
		return nil, err
	}

	byHead := make(map[string]core.PullRequest, len(prs))
	for _, pr := range prs {
		byHead[pr.Head] = pr
	}
	return byHead, nil
}

// Create opens a pull request and returns the number the host assigned to
// it, parsed from the URL at the end of gh's output.
func (c *Client) Create(ctx context.Context, head, base, title, body string) (int, error) {
	c.logger.InfoContext(ctx, "creating pull request", "head", head, "base", base)
	res, err := c.runner.Run(ctx, c.repo,
		"gh", "pr", "create", "--head", head, "--base", base, "--title", title, "--body", body)
	if err != nil {
		return 0, err
	}

	m := prNumberRegex.FindStringSubmatch(strings.TrimSpace(res.Stdout))
	if m == nil {
		return 0, &core.ProtocolError{
			Tool:   "gh",
			Detail: "create response has no trailing pull request number",
			Output: res.Stdout,
		}
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &core.ProtocolError{
			Tool:   "gh",
			Detail: "pull request number is not a valid integer",
			Output: m[1],
		}
	}
	return number, nil
}

// Update edits a pull request's base and/or body. Nil fields stay untouched;
// with neither field set the call is a no-op and gh is never invoked.
func (c *Client) Update(ctx context.Context, number int, base, body *string) error {
	if base == nil && body == nil {
		return nil
	}

	args := []string{"pr", "edit", strconv.Itoa(number)}
	if base != nil {
		args = append(args, "--base", *base)
	}
	if body != nil {
		args = append(args, "--body", *body)
	}

	c.logger.InfoContext(ctx, "updating pull request", "number", number, "base_changed", base != nil, "body_changed", body != nil)
	_, err := c.runner.Run(ctx, c.repo, "gh", args...)
	return err
}

// DefaultBranch reports the repository's configured default branch.
func (c *Client) DefaultBranch(ctx context.Context) (string, error) {
	var out struct {
		DefaultBranchRef struct {
			Name string `json:"name"`
		} `json:"defaultBranchRef"`
	}
	err := execx.RunJSON(ctx, c.runner, c.repo, &out,
		"gh", "repo", "view", "--json", "defaultBranchRef")
	if err != nil {
		return "", err
	}
	if out.DefaultBranchRef.Name == "" {
		return "", &core.ProtocolError{Tool: "gh", Detail: "repo view response has no default branch"}
	}
	return out.DefaultBranchRef.Name, nil
}
