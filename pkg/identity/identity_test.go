package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextWithIdentity(t *testing.T) {
	id := Identity{Username: "alice", IsAdmin: true}
	ctx := ContextWithIdentity(context.Background(), &id)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, id, *got)
}

func TestFromContextMissing(t *testing.T) {
	got, ok := FromContext(context.Background())
	require.False(t, ok)
	require.Nil(t, got)
}

func TestHasUsername(t *testing.T) {
	id := Identity{Username: "alice"}
	require.True(t, id.HasUsername("alice"))
	require.False(t, id.HasUsername("bob"))
}
