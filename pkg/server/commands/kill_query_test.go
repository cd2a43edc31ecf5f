package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphd-io/graphd/internal/registry"
	"github.com/graphd-io/graphd/pkg/kernel"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

func TestKillQueryByOwner(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	id := tx.StartQuery("MATCH (n) DETACH DELETE n", nil)

	c := NewKillQueryCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, fmt.Sprintf("query-%d", id))
	require.NoError(t, err)
	require.Equal(t, []QueryTerminationResult{
		{QueryID: fmt.Sprintf("query-%d", id), Username: "alice"},
	}, results)

	reason, marked := tx.TerminationReason()
	require.True(t, marked)
	require.Equal(t, kernel.TerminationReasonTerminated, reason)
}

func TestKillQueryForeignDenied(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("bob")
	id := tx.StartQuery("RETURN 1", nil)

	c := NewKillQueryCommand(reg)
	_, err := c.Execute(context.Background(), aliceCaller, fmt.Sprintf("query-%d", id))
	require.ErrorIs(t, err, serverErrors.ErrPermissionDenied)

	_, marked := tx.TerminationReason()
	require.False(t, marked)
}

func TestKillQueryUnresolvedOwnerDeniedForNonAdmin(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("system")
	id := tx.StartQueryUnresolved("CALL internal.job()", nil)

	c := NewKillQueryCommand(reg)
	_, err := c.Execute(context.Background(), aliceCaller, fmt.Sprintf("query-%d", id))
	require.ErrorIs(t, err, serverErrors.ErrPermissionDenied)

	results, err := c.Execute(context.Background(), adminCaller, fmt.Sprintf("query-%d", id))
	require.NoError(t, err)
	require.Equal(t, []QueryTerminationResult{
		{QueryID: fmt.Sprintf("query-%d", id), Username: UnavailableUsername},
	}, results)
}

func TestKillQueryMalformedID(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	tx.StartQuery("RETURN 1", nil)

	c := NewKillQueryCommand(reg)
	_, err := c.Execute(context.Background(), adminCaller, "not-a-valid-id")
	require.True(t, serverErrors.IsInvalidArgument(err))

	_, marked := tx.TerminationReason()
	require.False(t, marked)
}

func TestKillQueryVanishedTarget(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	id := tx.StartQuery("RETURN 1", nil)
	tx.Close()

	c := NewKillQueryCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, fmt.Sprintf("query-%d", id))
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestKillQueryAlreadyTerminatingYieldsNoRow(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	id := tx.StartQuery("RETURN 1", nil)
	require.True(t, tx.MarkForTermination(kernel.TerminationReasonTerminated))

	c := NewKillQueryCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, fmt.Sprintf("query-%d", id))
	require.NoError(t, err)
	require.Empty(t, results)
}
