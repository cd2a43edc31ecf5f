package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
)

// TerminateConnectionsCommand closes every live session owned by a user.
// Self-service or administrator.
type TerminateConnectionsCommand struct {
	connections kernel.ConnectionRegistry
	authorizer  *authz.Authorizer
	logger      logger.Logger
}

type TerminateConnectionsCommandOption func(*TerminateConnectionsCommand)

func WithTerminateConnectionsCommandLogger(l logger.Logger) TerminateConnectionsCommandOption {
	return func(c *TerminateConnectionsCommand) {
		c.logger = l
	}
}

func NewTerminateConnectionsCommand(connections kernel.ConnectionRegistry, authorizer *authz.Authorizer, opts ...TerminateConnectionsCommandOption) *TerminateConnectionsCommand {
	c := &TerminateConnectionsCommand{
		connections: connections,
		authorizer:  authorizer,
		logger:      logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute terminates the user's sessions and reports how many the snapshot
// targeted. Termination of an already closed session is a harmless no-op.
func (c *TerminateConnectionsCommand) Execute(ctx context.Context, caller *identity.Identity, username string) (*ConnectionResult, error) {
	if err := c.authorizer.RequireSelfOrAdmin(ctx, caller, username); err != nil {
		return nil, err
	}

	var killed int64
	for _, conn := range c.connections.ActiveConnectionsForUser(username) {
		conn.Terminate()
		killed++
	}

	c.logger.Info("terminated connections",
		zap.String("username", username),
		zap.Int64("count", killed))

	return &ConnectionResult{Username: username, ConnectionCount: killed}, nil
}
