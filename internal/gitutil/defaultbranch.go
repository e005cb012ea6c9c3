// Package gitutil reads repository metadata straight from the colocated .git
// store via go-git, without spawning a git process.
package gitutil

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const originHeadRef = "refs/remotes/origin/HEAD"

// DefaultBranch resolves the remote's default branch from the symbolic
// refs/remotes/origin/HEAD reference, the same signal `git symbolic-ref`
// reports. It is a best-effort secondary resolver; callers fall back to a
// fixed name when it fails.
func DefaultBranch(repoPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}

	ref, err := repo.Reference(plumbing.ReferenceName(originHeadRef), false)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", originHeadRef, err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", fmt.Errorf("%s is not a symbolic reference", originHeadRef)
	}

	target := ref.Target().String()
	name := target[strings.LastIndex(target, "/")+1:]
	if name == "" {
		return "", fmt.Errorf("%s points at malformed target %q", originHeadRef, target)
	}
	return name, nil
}
