package stack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultBase(t *testing.T) {
	boom := func(ctx context.Context) (string, error) { return "", errors.New("boom") }
	empty := func(ctx context.Context) (string, error) { return "", nil }
	develop := func(ctx context.Context) (string, error) { return "develop", nil }
	trunk := func(ctx context.Context) (string, error) { return "trunk", nil }

	tests := []struct {
		name      string
		override  string
		resolvers []ResolverFunc
		want      string
	}{
		{
			name:      "override wins",
			override:  "release",
			resolvers: []ResolverFunc{develop},
			want:      "release",
		},
		{
			name:      "first success wins",
			resolvers: []ResolverFunc{develop, trunk},
			want:      "develop",
		},
		{
			name:      "failures fall through",
			resolvers: []ResolverFunc{boom, empty, trunk},
			want:      "trunk",
		},
		{
			name:      "all failures fall back to main",
			resolvers: []ResolverFunc{boom, empty},
			want:      FallbackBase,
		},
		{
			name: "no resolvers fall back to main",
			want: FallbackBase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDefaultBase(context.Background(), tt.override, tt.resolvers...)
			assert.Equal(t, tt.want, got)
		})
	}
}
