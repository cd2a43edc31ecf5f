package commands

import (
	"context"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/queryid"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

// KillQueryCommand terminates every transaction executing the query with
// the given external id. The caller must be allowed to touch each matching
// query; any forbidden candidate aborts the whole call before side effects.
type KillQueryCommand struct {
	transactions kernel.TransactionRegistry
	logger       logger.Logger
}

type KillQueryCommandOption func(*KillQueryCommand)

func WithKillQueryCommandLogger(l logger.Logger) KillQueryCommandOption {
	return func(c *KillQueryCommand) {
		c.logger = l
	}
}

func NewKillQueryCommand(transactions kernel.TransactionRegistry, opts ...KillQueryCommandOption) *KillQueryCommand {
	c := &KillQueryCommand{
		transactions: transactions,
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute returns one row per query actually terminated. A query that
// finished between snapshot and kill yields no row and no error.
func (c *KillQueryCommand) Execute(ctx context.Context, caller *identity.Identity, idText string) ([]QueryTerminationResult, error) {
	if caller == nil {
		return nil, serverErrors.ErrMissingIdentity
	}

	qid, err := queryid.Parse(idText)
	if err != nil {
		return nil, serverErrors.InvalidQueryID(err)
	}

	candidates := queryCandidates(c.transactions, func(id int64) bool {
		return id == qid.InternalID()
	})

	// Authorize every candidate before touching any of them, so a denied
	// call leaves no partial terminations behind.
	for _, cand := range candidates {
		if !authz.CanObserveOrKill(caller, cand.query.Username) {
			return nil, serverErrors.ErrPermissionDenied
		}
	}

	results := make([]QueryTerminationResult, 0, len(candidates))
	for _, cand := range candidates {
		row, killed, err := killCandidate(cand)
		if err != nil {
			return nil, err
		}
		if killed {
			results = append(results, row)
		}
	}
	return results, nil
}
