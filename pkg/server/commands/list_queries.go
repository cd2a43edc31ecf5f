package commands

import (
	"context"
	"sort"

	"github.com/jonboulle/clockwork"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/queryid"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

// ListQueriesQuery lists the queries currently executing that are visible
// to the caller: all of them for administrators, the caller's own
// otherwise. Queries with an unresolvable owner are visible to
// administrators only.
type ListQueriesQuery struct {
	transactions kernel.TransactionRegistry
	clock        clockwork.Clock
	logger       logger.Logger
}

type ListQueriesQueryOption func(*ListQueriesQuery)

func WithListQueriesQueryLogger(l logger.Logger) ListQueriesQueryOption {
	return func(q *ListQueriesQuery) {
		q.logger = l
	}
}

// WithListQueriesQueryClock overrides the clock used to compute elapsed
// time, for deterministic tests.
func WithListQueriesQueryClock(clock clockwork.Clock) ListQueriesQueryOption {
	return func(q *ListQueriesQuery) {
		q.clock = clock
	}
}

func NewListQueriesQuery(transactions kernel.TransactionRegistry, opts ...ListQueriesQueryOption) *ListQueriesQuery {
	q := &ListQueriesQuery{
		transactions: transactions,
		clock:        clockwork.NewRealClock(),
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *ListQueriesQuery) Execute(ctx context.Context, caller *identity.Identity) ([]QueryStatusResult, error) {
	if caller == nil {
		return nil, serverErrors.ErrMissingIdentity
	}

	var visible []kernel.ExecutingQuery
	for _, handle := range q.transactions.ActiveTransactions() {
		for query := range handle.ExecutingQueries() {
			if authz.CanObserveOrKill(caller, query.Username) {
				visible = append(visible, query)
			}
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].InternalID < visible[j].InternalID })

	now := q.clock.Now().UnixMilli()
	results := make([]QueryStatusResult, 0, len(visible))
	for _, query := range visible {
		qid, err := queryid.New(query.InternalID)
		if err != nil {
			return nil, serverErrors.InvalidQueryID(err)
		}
		results = append(results, QueryStatusResult{
			QueryID:     qid.String(),
			Username:    usernameOrUnavailable(query.Username),
			Query:       query.QueryText,
			Parameters:  query.Parameters,
			StartTime:   formatStartTime(query.StartTime),
			ElapsedTime: formatInterval(now - query.StartTime),
		})
	}
	return results, nil
}
