package commands

import (
	"context"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
)

// ListTransactionsQuery lists active transactions grouped by owning user.
// Administrator only.
type ListTransactionsQuery struct {
	transactions kernel.TransactionRegistry
	authorizer   *authz.Authorizer
	logger       logger.Logger
}

type ListTransactionsQueryOption func(*ListTransactionsQuery)

func WithListTransactionsQueryLogger(l logger.Logger) ListTransactionsQueryOption {
	return func(q *ListTransactionsQuery) {
		q.logger = l
	}
}

func NewListTransactionsQuery(transactions kernel.TransactionRegistry, authorizer *authz.Authorizer, opts ...ListTransactionsQueryOption) *ListTransactionsQuery {
	q := &ListTransactionsQuery{
		transactions: transactions,
		authorizer:   authorizer,
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *ListTransactionsQuery) Execute(ctx context.Context, caller *identity.Identity) ([]TransactionResult, error) {
	if err := q.authorizer.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var usernames []string
	for _, handle := range q.transactions.ActiveTransactions() {
		// Transactions already flagged for termination are on their way
		// out and are not listed.
		if _, marked := handle.TerminationReason(); marked {
			continue
		}
		usernames = append(usernames, handle.Username())
	}

	counts := countByUsername(usernames)
	results := make([]TransactionResult, 0, len(counts))
	for _, c := range counts {
		results = append(results, TransactionResult{Username: c.username, ActiveTransactions: c.count})
	}
	return results, nil
}
