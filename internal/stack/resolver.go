package stack

import "context"

// FallbackBase is the last-resort default base when every resolver fails.
const FallbackBase = "main"

// ResolverFunc is one strategy for finding the repository's default branch.
type ResolverFunc func(ctx context.Context) (string, error)

// ResolveDefaultBase picks the base for the bottom of the stack. A non-empty
// override wins outright; otherwise the resolvers run in order and the first
// success is taken. Resolution is read-only best-effort, so failures fall
// through to the next strategy and ultimately to FallbackBase rather than
// failing the run.
func ResolveDefaultBase(ctx context.Context, override string, resolvers ...ResolverFunc) string {
	if override != "" {
		return override
	}
	for _, resolve := range resolvers {
		if name, err := resolve(ctx); err == nil && name != "" {
			return name
		}
	}
	return FallbackBase
}
