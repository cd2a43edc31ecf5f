// Package server exposes the admin operations of the graphd kernel as a
// transport-neutral service: listing and terminating transactions, client
// connections, and executing queries.
package server

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/server/commands"
	"github.com/graphd-io/graphd/pkg/storage"
)

var tracer = otel.Tracer("graphd/pkg/server")

// A Server implements the graphd admin service over the kernel registries
// and the user directory.
type Server struct {
	logger       logger.Logger
	transactions kernel.TransactionRegistry
	connections  kernel.ConnectionRegistry
	users        storage.UserStore
	authorizer   *authz.Authorizer
	clock        clockwork.Clock
}

// Dependencies are the collaborators a Server observes and mutates. All of
// them are owned by the caller; the Server never closes them.
type Dependencies struct {
	Logger       logger.Logger
	Transactions kernel.TransactionRegistry
	Connections  kernel.ConnectionRegistry
	Users        storage.UserStore
}

type Option func(*Server)

// WithClock overrides the clock used for elapsed-time computation.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// New creates a Server over the supplied registries and user directory.
func New(deps *Dependencies, opts ...Option) *Server {
	s := &Server{
		logger:       deps.Logger,
		transactions: deps.Transactions,
		connections:  deps.Connections,
		users:        deps.Users,
		clock:        clockwork.NewRealClock(),
	}
	if s.logger == nil {
		s.logger = logger.NewNoopLogger()
	}
	for _, opt := range opts {
		opt(s)
	}
	s.authorizer = authz.NewAuthorizer(s.users, s.logger)
	return s
}

// ListTransactions lists active transactions grouped by user.
// Administrator only.
func (s *Server) ListTransactions(ctx context.Context) ([]commands.TransactionResult, error) {
	ctx, span := tracer.Start(ctx, "ListTransactions")
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	q := commands.NewListTransactionsQuery(s.transactions, s.authorizer,
		commands.WithListTransactionsQueryLogger(s.logger))
	return q.Execute(ctx, caller)
}

// TerminateTransactionsForUser marks every transaction owned by username
// for termination, excluding the one issuing this call.
func (s *Server) TerminateTransactionsForUser(ctx context.Context, username string) (*commands.TransactionTerminationResult, error) {
	ctx, span := tracer.Start(ctx, "TerminateTransactionsForUser", trace.WithAttributes(
		attribute.String("username", username),
	))
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	c := commands.NewTerminateTransactionsCommand(s.transactions, s.authorizer,
		commands.WithTerminateTransactionsCommandLogger(s.logger))
	result, err := c.Execute(ctx, caller, username)
	if err != nil {
		return nil, err
	}

	terminatedTransactionsCounter.Add(float64(result.TransactionsTerminated))
	return result, nil
}

// ListConnections lists live client sessions grouped by user.
// Administrator only.
func (s *Server) ListConnections(ctx context.Context) ([]commands.ConnectionResult, error) {
	ctx, span := tracer.Start(ctx, "ListConnections")
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	q := commands.NewListConnectionsQuery(s.connections, s.authorizer,
		commands.WithListConnectionsQueryLogger(s.logger))
	return q.Execute(ctx, caller)
}

// TerminateConnectionsForUser closes every live session owned by username.
func (s *Server) TerminateConnectionsForUser(ctx context.Context, username string) (*commands.ConnectionResult, error) {
	ctx, span := tracer.Start(ctx, "TerminateConnectionsForUser", trace.WithAttributes(
		attribute.String("username", username),
	))
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	c := commands.NewTerminateConnectionsCommand(s.connections, s.authorizer,
		commands.WithTerminateConnectionsCommandLogger(s.logger))
	result, err := c.Execute(ctx, caller, username)
	if err != nil {
		return nil, err
	}

	terminatedConnectionsCounter.Add(float64(result.ConnectionCount))
	return result, nil
}

// ListQueries lists the executing queries visible to the caller.
func (s *Server) ListQueries(ctx context.Context) ([]commands.QueryStatusResult, error) {
	ctx, span := tracer.Start(ctx, "ListQueries")
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	q := commands.NewListQueriesQuery(s.transactions,
		commands.WithListQueriesQueryLogger(s.logger),
		commands.WithListQueriesQueryClock(s.clock))
	return q.Execute(ctx, caller)
}

// KillQuery terminates every transaction executing the query with the
// given external id.
func (s *Server) KillQuery(ctx context.Context, queryID string) ([]commands.QueryTerminationResult, error) {
	ctx, span := tracer.Start(ctx, "KillQuery", trace.WithAttributes(
		attribute.String("queryId", queryID),
	))
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	c := commands.NewKillQueryCommand(s.transactions,
		commands.WithKillQueryCommandLogger(s.logger))
	results, err := c.Execute(ctx, caller, queryID)
	if err != nil {
		return nil, err
	}

	terminatedQueriesCounter.Add(float64(len(results)))
	return results, nil
}

// KillQueries terminates every transaction executing a query with any of
// the given external ids.
func (s *Server) KillQueries(ctx context.Context, queryIDs []string) ([]commands.QueryTerminationResult, error) {
	ctx, span := tracer.Start(ctx, "KillQueries", trace.WithAttributes(
		attribute.Int("queryIds", len(queryIDs)),
	))
	defer span.End()

	caller, _ := identity.FromContext(ctx)
	c := commands.NewKillQueriesCommand(s.transactions,
		commands.WithKillQueriesCommandLogger(s.logger))
	results, err := c.Execute(ctx, caller, queryIDs)
	if err != nil {
		return nil, err
	}

	terminatedQueriesCounter.Add(float64(len(results)))
	return results, nil
}
