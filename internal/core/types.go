// Package core defines the domain types and error kinds shared by the
// collaborator clients and the stack reconciler. The types here are plain
// data; all behavior lives in the packages that produce or consume them.
package core

// Branch is a stack bookmark as reported by the VCS: a name plus the commit
// it points at. Target may be empty when the VCS could not resolve it; such
// branches still take part in ordering, they just sort to the end.
type Branch struct {
	Name   string
	Target string
}

// PullRequest is the slice of a code-host review request this tool reads and
// patches. Number and Head are owned by the host and never written here.
type PullRequest struct {
	Number int    `json:"number"`
	Head   string `json:"headRefName"`
	Base   string `json:"baseRefName"`
	Body   string `json:"body"`
}

// SyncAction describes what the reconciler did (or, in dry-run, would do)
// for one position of the stack.
type SyncAction string

const (
	ActionCreated   SyncAction = "created"
	ActionRebased   SyncAction = "rebased"
	ActionUnchanged SyncAction = "unchanged"
	// ActionPlanned marks a dry-run position that has no pull request yet.
	// Its Number is always 0.
	ActionPlanned SyncAction = "planned"
)

// SyncEntry is one position of the reconciled chain, oldest first.
type SyncEntry struct {
	Branch string
	Number int
	Base   string
	Action SyncAction
}

// SyncResult is what a reconciliation run reports back to the caller.
type SyncResult struct {
	Order   []string
	Base    string
	Entries []SyncEntry
	DryRun  bool
}
