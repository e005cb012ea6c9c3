package stack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/stacksync/internal/core"
	"github.com/sevigo/stacksync/mocks"
)

func newMocks(t *testing.T) (*mocks.MockVCS, *mocks.MockHost) {
	ctrl := gomock.NewController(t)
	return mocks.NewMockVCS(ctrl), mocks.NewMockHost(ctrl)
}

func expectDiscovery(vcs *mocks.MockVCS, names ...string) {
	branches := make([]core.Branch, 0, len(names))
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		branches = append(branches, core.Branch{Name: n})
		rows = append(rows, []string{n})
	}
	vcs.EXPECT().ListBranches(gomock.Any()).Return(branches, nil)
	if len(names) > 0 {
		vcs.EXPECT().TopoBookmarks(gomock.Any(), names).Return(rows, nil)
	}
}

func TestSyncCreatesMissingChain(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a", "feat-b")

	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{}, nil)
	host.EXPECT().Create(gomock.Any(), "feat-a", "main", "feat-a", "").Return(11, nil)
	host.EXPECT().Create(gomock.Any(), "feat-b", "feat-a", "feat-b", "").Return(12, nil)

	bodies := make(map[int]string)
	host.EXPECT().Update(gomock.Any(), gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, number int, _ *string, body *string) error {
			bodies[number] = *body
			return nil
		}).Times(2)

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main"})
	require.NoError(t, err)

	assert.Equal(t, []string{"feat-a", "feat-b"}, res.Order)
	assert.Equal(t, "main", res.Base)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, core.ActionCreated, res.Entries[0].Action)
	assert.Equal(t, core.ActionCreated, res.Entries[1].Action)

	// Fresh pull requests have empty bodies, so the merged body is the
	// section alone, with the pointer on the owning position.
	assert.Equal(t, "<!--jj-stack-sync:start-->\n- 👉 #11\n- #12\n<!--jj-stack-sync:end-->", bodies[11])
	assert.Equal(t, "<!--jj-stack-sync:start-->\n- #11\n- 👉 #12\n<!--jj-stack-sync:end-->", bodies[12])
}

func TestSyncRebasesMismatchedBase(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a")

	existing := core.PullRequest{
		Number: 7,
		Head:   "feat-a",
		Base:   "develop",
		Body:   "Fixes #12\n<!--jj-stack-sync:start-->\nstale\n<!--jj-stack-sync:end-->\nThanks",
	}
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{"feat-a": existing}, nil)

	main := "main"
	host.EXPECT().Update(gomock.Any(), 7, &main, nil).Return(nil)

	var merged string
	host.EXPECT().Update(gomock.Any(), 7, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ *string, body *string) error {
			merged = *body
			return nil
		})

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main"})
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, core.ActionRebased, res.Entries[0].Action)
	assert.Equal(t,
		"Fixes #12\n\n<!--jj-stack-sync:start-->\n- 👉 #7\n<!--jj-stack-sync:end-->\n\nThanks",
		merged)
}

func TestSyncMatchingBaseRewritesBodyOnly(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a")

	existing := core.PullRequest{Number: 7, Head: "feat-a", Base: "main", Body: ""}
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{"feat-a": existing}, nil)

	host.EXPECT().Update(gomock.Any(), 7, nil, gomock.Any()).Return(nil)

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main"})
	require.NoError(t, err)
	assert.Equal(t, core.ActionUnchanged, res.Entries[0].Action)
}

func TestSyncDryRunIssuesNoMutations(t *testing.T) {
	vcs, host := newMocks(t)

	// No PushStack, Create, or Update expectations: any mutating call fails
	// the test through the controller.
	expectDiscovery(vcs, "feat-a", "feat-b")
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{}, nil)

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main", DryRun: true})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, []string{"feat-a", "feat-b"}, res.Order)
	require.Len(t, res.Entries, 2)
	for _, e := range res.Entries {
		assert.Equal(t, core.ActionPlanned, e.Action)
		assert.Zero(t, e.Number)
	}
	assert.Equal(t, "feat-a", res.Entries[1].Base)
}

func TestSyncEmptyStackIsNoOpAfterPush(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	vcs.EXPECT().ListBranches(gomock.Any()).Return(nil, nil)

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin"})
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Entries)
}

func TestSyncResolvesBaseThroughHost(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a")
	host.EXPECT().DefaultBranch(gomock.Any()).Return("develop", nil)
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{}, nil)
	host.EXPECT().Create(gomock.Any(), "feat-a", "develop", "feat-a", "").Return(3, nil)
	host.EXPECT().Update(gomock.Any(), 3, nil, gomock.Any()).Return(nil)

	rec := NewReconciler(vcs, host, nil)
	res, err := rec.Sync(context.Background(), Options{Remote: "origin"})
	require.NoError(t, err)
	assert.Equal(t, "develop", res.Base)
}

func TestSyncAbortsOnPushFailure(t *testing.T) {
	vcs, host := newMocks(t)

	pushErr := &core.CollaboratorError{Tool: "jj", Err: errors.New("remote rejected")}
	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(pushErr)

	rec := NewReconciler(vcs, host, nil)
	_, err := rec.Sync(context.Background(), Options{Remote: "origin"})
	require.ErrorIs(t, err, pushErr)
}

func TestSyncAbortsOnCreateFailure(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a", "feat-b")
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{}, nil)

	createErr := &core.CollaboratorError{Tool: "gh", Err: errors.New("422")}
	host.EXPECT().Create(gomock.Any(), "feat-a", "main", "feat-a", "").Return(0, createErr)

	rec := NewReconciler(vcs, host, nil)
	_, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main"})
	require.ErrorIs(t, err, createErr)
}

func TestSyncCustomMarkerKey(t *testing.T) {
	vcs, host := newMocks(t)

	vcs.EXPECT().PushStack(gomock.Any(), "origin").Return(nil)
	expectDiscovery(vcs, "feat-a")
	host.EXPECT().ListOpenByHead(gomock.Any()).Return(map[string]core.PullRequest{}, nil)
	host.EXPECT().Create(gomock.Any(), "feat-a", "main", "feat-a", "").Return(5, nil)

	var body string
	host.EXPECT().Update(gomock.Any(), 5, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ *string, b *string) error {
			body = *b
			return nil
		})

	rec := NewReconciler(vcs, host, nil)
	_, err := rec.Sync(context.Background(), Options{Remote: "origin", DefaultBase: "main", MarkerKey: "team-stack"})
	require.NoError(t, err)
	assert.Contains(t, body, "<!--team-stack:start-->")
}
