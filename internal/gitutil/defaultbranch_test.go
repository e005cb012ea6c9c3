package gitutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBranch(t *testing.T) {
	t.Run("resolves origin HEAD", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		ref := plumbing.NewSymbolicReference(
			plumbing.ReferenceName("refs/remotes/origin/HEAD"),
			plumbing.ReferenceName("refs/remotes/origin/develop"),
		)
		require.NoError(t, repo.Storer.SetReference(ref))

		name, err := DefaultBranch(dir)
		require.NoError(t, err)
		assert.Equal(t, "develop", name)
	})

	t.Run("missing origin HEAD", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = DefaultBranch(dir)
		assert.Error(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := DefaultBranch(t.TempDir())
		assert.Error(t, err)
	})
}
