package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveConnections(t *testing.T) {
	reg := NewConnectionRegistry()

	reg.Register("alice")
	reg.Register("alice")
	reg.Register("bob")

	require.Len(t, reg.ActiveConnections(), 3)
	require.Len(t, reg.ActiveConnectionsForUser("alice"), 2)
	require.Len(t, reg.ActiveConnectionsForUser("bob"), 1)
	require.Empty(t, reg.ActiveConnectionsForUser("mallory"))
}

func TestTerminateRemovesConnection(t *testing.T) {
	reg := NewConnectionRegistry()
	conn := reg.Register("alice")

	require.False(t, conn.HasTerminated())
	conn.Terminate()
	require.True(t, conn.HasTerminated())
	require.Empty(t, reg.ActiveConnections())

	// Repeated termination stays a no-op.
	conn.Terminate()
	require.True(t, conn.HasTerminated())
}

func TestConnectionIDsUnique(t *testing.T) {
	reg := NewConnectionRegistry()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		seen[reg.Register("alice").ID()] = true
	}
	require.Len(t, seen, 10)
}

func TestTerminateConcurrent(t *testing.T) {
	reg := NewConnectionRegistry()
	conn := reg.Register("alice")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn.Terminate()
		}()
	}
	wg.Wait()

	require.True(t, conn.HasTerminated())
	require.Empty(t, reg.ActiveConnections())
}
