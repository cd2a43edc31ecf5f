package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
)

// TerminateTransactionsCommand marks every active transaction owned by a
// user for termination, excluding the transaction issuing the call itself.
// Self-service or administrator.
type TerminateTransactionsCommand struct {
	transactions kernel.TransactionRegistry
	authorizer   *authz.Authorizer
	logger       logger.Logger
}

type TerminateTransactionsCommandOption func(*TerminateTransactionsCommand)

func WithTerminateTransactionsCommandLogger(l logger.Logger) TerminateTransactionsCommandOption {
	return func(c *TerminateTransactionsCommand) {
		c.logger = l
	}
}

func NewTerminateTransactionsCommand(transactions kernel.TransactionRegistry, authorizer *authz.Authorizer, opts ...TerminateTransactionsCommandOption) *TerminateTransactionsCommand {
	c := &TerminateTransactionsCommand{
		transactions: transactions,
		authorizer:   authorizer,
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute reports how many transactions this call transitioned to
// terminating. Transactions that finished or were already marked between
// the snapshot and the mark are not counted.
func (c *TerminateTransactionsCommand) Execute(ctx context.Context, caller *identity.Identity, username string) (*TransactionTerminationResult, error) {
	if err := c.authorizer.RequireSelfOrAdmin(ctx, caller, username); err != nil {
		return nil, err
	}

	callerTx, _ := kernel.CallerTransactionFromContext(ctx)

	var terminated int64
	for _, handle := range c.transactions.ActiveTransactions() {
		if handle.Username() != username || handle.IsUnderlying(callerTx) {
			continue
		}
		if handle.MarkForTermination(kernel.TerminationReasonTerminated) {
			terminated++
		}
	}

	c.logger.Info("terminated transactions",
		zap.String("username", username),
		zap.Int64("count", terminated))

	return &TransactionTerminationResult{
		Username:               username,
		TransactionsTerminated: terminated,
	}, nil
}
