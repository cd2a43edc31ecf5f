package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/queryid"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

// KillQueriesCommand terminates every transaction executing a query with
// any of the given external ids. Ids are deduplicated; unparseable ids
// abort the whole call before any termination. Candidates the caller may
// not touch are skipped, and only successful rows are returned.
type KillQueriesCommand struct {
	transactions kernel.TransactionRegistry
	logger       logger.Logger
}

type KillQueriesCommandOption func(*KillQueriesCommand)

func WithKillQueriesCommandLogger(l logger.Logger) KillQueriesCommandOption {
	return func(c *KillQueriesCommand) {
		c.logger = l
	}
}

func NewKillQueriesCommand(transactions kernel.TransactionRegistry, opts ...KillQueriesCommandOption) *KillQueriesCommand {
	c := &KillQueriesCommand{
		transactions: transactions,
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *KillQueriesCommand) Execute(ctx context.Context, caller *identity.Identity, idTexts []string) ([]QueryTerminationResult, error) {
	if caller == nil {
		return nil, serverErrors.ErrMissingIdentity
	}

	ids := make(map[int64]struct{}, len(idTexts))
	for _, idText := range idTexts {
		qid, err := queryid.Parse(idText)
		if err != nil {
			return nil, serverErrors.InvalidQueryID(err)
		}
		ids[qid.InternalID()] = struct{}{}
	}

	candidates := queryCandidates(c.transactions, func(id int64) bool {
		_, ok := ids[id]
		return ok
	})

	results := make([]QueryTerminationResult, 0, len(candidates))
	for _, cand := range candidates {
		if !authz.CanObserveOrKill(caller, cand.query.Username) {
			c.logger.Debug("skipping query the caller may not terminate",
				zap.Int64("internalQueryId", cand.query.InternalID),
				zap.String("caller", caller.Username))
			continue
		}

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
