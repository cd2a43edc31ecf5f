package commands

import (
	"context"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
)

// ListConnectionsQuery lists live client sessions grouped by owning user.
// Administrator only.
type ListConnectionsQuery struct {
	connections kernel.ConnectionRegistry
	authorizer  *authz.Authorizer
	logger      logger.Logger
}

type ListConnectionsQueryOption func(*ListConnectionsQuery)

func WithListConnectionsQueryLogger(l logger.Logger) ListConnectionsQueryOption {
	return func(q *ListConnectionsQuery) {
		q.logger = l
	}
}

func NewListConnectionsQuery(connections kernel.ConnectionRegistry, authorizer *authz.Authorizer, opts ...ListConnectionsQueryOption) *ListConnectionsQuery {
	q := &ListConnectionsQuery{
		connections: connections,
		authorizer:  authorizer,
		logger:      logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *ListConnectionsQuery) Execute(ctx context.Context, caller *identity.Identity) ([]ConnectionResult, error) {
	if err := q.authorizer.RequireAdmin(caller); err != nil {
		return nil, err
	}

	var usernames []string
	for _, conn := range q.connections.ActiveConnections() {
		if conn.HasTerminated() {
			continue
		}
		usernames = append(usernames, conn.Username())
	}

	counts := countByUsername(usernames)
	results := make([]ConnectionResult, 0, len(counts))
	for _, c := range counts {
		results = append(results, ConnectionResult{Username: c.username, ConnectionCount: c.count})
	}
	return results, nil
}
