package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphd-io/graphd/internal/registry"
	"github.com/graphd-io/graphd/pkg/kernel"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

func TestListTransactionsGroupsByUsername(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	reg.Begin("alice")
	reg.Begin("alice")
	reg.Begin("bob")

	q := NewListTransactionsQuery(reg, newTestAuthorizer(t))
	results, err := q.Execute(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Equal(t, []TransactionResult{
		{Username: "alice", ActiveTransactions: 2},
		{Username: "bob", ActiveTransactions: 1},
	}, results)
}

func TestListTransactionsRequiresAdmin(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	reg.Begin("alice")

	q := NewListTransactionsQuery(reg, newTestAuthorizer(t))
	_, err := q.Execute(context.Background(), aliceCaller)
	require.ErrorIs(t, err, serverErrors.ErrPermissionDenied)
}

func TestListTransactionsExcludesTerminating(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	reg.Begin("alice")
	doomed := reg.Begin("alice")
	require.True(t, doomed.MarkForTermination(kernel.TerminationReasonTerminated))

	q := NewListTransactionsQuery(reg, newTestAuthorizer(t))
	results, err := q.Execute(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Equal(t, []TransactionResult{{Username: "alice", ActiveTransactions: 1}}, results)
}

func TestListTransactionsEmpty(t *testing.T) {
	q := NewListTransactionsQuery(registry.NewTransactionRegistry(), newTestAuthorizer(t))
	results, err := q.Execute(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Empty(t, results)
}
