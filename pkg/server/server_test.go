package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphd-io/graphd/internal/registry"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
	"github.com/graphd-io/graphd/pkg/storage"
	"github.com/graphd-io/graphd/pkg/storage/memory"
)

type testEnv struct {
	server       *Server
	transactions *registry.TransactionRegistry
	connections  *registry.ConnectionRegistry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.New()
	for _, u := range []*storage.User{
		{Username: "root", IsAdmin: true},
		{Username: "alice"},
		{Username: "bob"},
	} {
		require.NoError(t, users.CreateUser(context.Background(), u))
	}

	transactions := registry.NewTransactionRegistry()
	connections := registry.NewConnectionRegistry()
	return &testEnv{
		server: New(&Dependencies{
			Transactions: transactions,
			Connections:  connections,
			Users:        users,
		}),
		transactions: transactions,
		connections:  connections,
	}
}

func callerCtx(username string, admin bool) context.Context {
	return identity.ContextWithIdentity(context.Background(), &identity.Identity{
		Username: username,
		IsAdmin:  admin,
	})
}

func TestServerListTransactions(t *testing.T) {
	env := newTestEnv(t)
	env.transactions.Begin("alice")
	env.transactions.Begin("alice")
	env.transactions.Begin("bob")

	results, err := env.server.ListTransactions(callerCtx("root", true))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "alice", results[0].Username)
	require.Equal(t, int64(2), results[0].ActiveTransactions)

	_, err = env.server.ListTransactions(callerCtx("alice", false))
	require.ErrorIs(t, err, serverErrors.ErrPermissionDenied)
}

func TestServerTerminateTransactionsSelfService(t *testing.T) {
	env := newTestEnv(t)
	own := env.transactions.Begin("alice")
	env.transactions.Begin("alice")

	ctx := kernel.ContextWithCallerTransaction(callerCtx("alice", false), own)
	result, err := env.server.TerminateTransactionsForUser(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), result.TransactionsTerminated)

	_, marked := own.TerminationReason()
	require.False(t, marked)
}

func TestServerConnectionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.connections.Register("alice")
	env.connections.Register("bob")

	results, err := env.server.ListConnections(callerCtx("root", true))
	require.NoError(t, err)
	require.Len(t, results, 2)

	killed, err := env.server.TerminateConnectionsForUser(callerCtx("root", true), "bob")
	require.NoError(t, err)
	require.Equal(t, int64(1), killed.ConnectionCount)

	results, err = env.server.ListConnections(callerCtx("root", true))
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "alice", results[0].Username)
}

func TestServerQueryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	tx := env.transactions.Begin("alice")
	id := tx.StartQuery("MATCH (n) RETURN n", nil)
	env.transactions.Begin("bob").StartQuery("RETURN 1", nil)

	queries, err := env.server.ListQueries(callerCtx("alice", false))
	require.NoError(t, err)
	require.Len(t, queries, 1)
	require.Equal(t, fmt.Sprintf("query-%d", id), queries[0].QueryID)

	killed, err := env.server.KillQuery(callerCtx("alice", false), queries[0].QueryID)
	require.NoError(t, err)
	require.Len(t, killed, 1)

	_, marked := tx.TerminationReason()
	require.True(t, marked)
}

func TestServerKillQueriesBulk(t *testing.T) {
	env := newTestEnv(t)
	id1 := env.transactions.Begin("alice").StartQuery("RETURN 1", nil)
	id2 := env.transactions.Begin("bob").StartQuery("RETURN 2", nil)

	results, err := env.server.KillQueries(callerCtx("root", true), []string{
		fmt.Sprintf("query-%d", id1),
		fmt.Sprintf("query-%d", id2),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestServerMissingIdentity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.server.ListTransactions(context.Background())
	require.ErrorIs(t, err, serverErrors.ErrMissingIdentity)

	_, err = env.server.ListQueries(context.Background())
	require.ErrorIs(t, err, serverErrors.ErrMissingIdentity)
}
