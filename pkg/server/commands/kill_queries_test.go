package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphd-io/graphd/internal/registry"
)

func TestKillQueriesMultipleTargets(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx1 := reg.Begin("alice")
	id1 := tx1.StartQuery("RETURN 1", nil)
	tx2 := reg.Begin("alice")
	id2 := tx2.StartQuery("RETURN 2", nil)

	c := NewKillQueriesCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, []string{
		fmt.Sprintf("query-%d", id1),
		fmt.Sprintf("query-%d", id2),
	})
	require.NoError(t, err)
	require.Equal(t, []QueryTerminationResult{
		{QueryID: fmt.Sprintf("query-%d", id1), Username: "alice"},
		{QueryID: fmt.Sprintf("query-%d", id2), Username: "alice"},
	}, results)

	_, marked := tx1.TerminationReason()
	require.True(t, marked)
	_, marked = tx2.TerminationReason()
	require.True(t, marked)
}

func TestKillQueriesDeduplicatesIDs(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	id := tx.StartQuery("RETURN 1", nil)

	c := NewKillQueriesCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, []string{
		fmt.Sprintf("query-%d", id),
		fmt.Sprintf("query-%d", id),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestKillQueriesSkipsForbiddenCandidates(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	own := reg.Begin("alice")
	ownID := own.StartQuery("RETURN 1", nil)
	foreign := reg.Begin("bob")
	foreignID := foreign.StartQuery("RETURN 2", nil)

	c := NewKillQueriesCommand(reg)
	results, err := c.Execute(context.Background(), aliceCaller, []string{
		fmt.Sprintf("query-%d", ownID),
		fmt.Sprintf("query-%d", foreignID),
	})
	require.NoError(t, err)
	require.Equal(t, []QueryTerminationResult{
		{QueryID: fmt.Sprintf("query-%d", ownID), Username: "alice"},
	}, results)

	// The forbidden candidate is untouched, not errored.
	_, marked := foreign.TerminationReason()
	require.False(t, marked)
}

func TestKillQueriesParseFailureAbortsBeforeMutation(t *testing.T) {
	reg := registry.NewTransactionRegistry()
	tx := reg.Begin("alice")
	id := tx.StartQuery("RETURN 1", nil)

	c := NewKillQueriesCommand(reg)
	_, err := c.Execute(context.Background(), adminCaller, []string{
		fmt.Sprintf("query-%d", id),
		"garbage",
	})
	require.Error(t, err)

	_, marked := tx.TerminationReason()
	require.False(t, marked)
}

func TestKillQueriesEmptyList(t *testing.T) {
	c := NewKillQueriesCommand(registry.NewTransactionRegistry())
	results, err := c.Execute(context.Background(), adminCaller, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestKillQueriesSameIDSetAsDeduplicated(t *testing.T) {
	makeRegistry := func() (*registry.TransactionRegistry, []string) {
		reg := registry.NewTransactionRegistry()
		id1 := reg.Begin("alice").StartQuery("RETURN 1", nil)
		id2 := reg.Begin("alice").StartQuery("RETURN 2", nil)
		return reg, []string{fmt.Sprintf("query-%d", id1), fmt.Sprintf("query-%d", id2)}
	}

	regA, idsA := makeRegistry()
	withDupes := append([]string{idsA[0]}, idsA...)
	resultsA, err := NewKillQueriesCommand(regA).Execute(context.Background(), aliceCaller, withDupes)
	require.NoError(t, err)

	regB, idsB := makeRegistry()
	resultsB, err := NewKillQueriesCommand(regB).Execute(context.Background(), aliceCaller, idsB)
	require.NoError(t, err)

	require.Len(t, resultsA, len(resultsB))
}
