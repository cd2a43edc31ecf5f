// Package kernel defines the views the admin subsystem has of the database
// kernel: live transactions, the queries executing inside them, and client
// connections. The kernel owns every entity behind these interfaces; the
// admin layer only snapshots them and requests termination through them.
//
//go:generate mockgen -source kernel.go -destination ../../internal/mocks/mock_kernel.go -package mocks
package kernel

import "iter"

// TerminationReason records why a transaction was asked to stop. It fills
// the handle's termination-reason slot, which is empty while the
// transaction runs normally.
type TerminationReason string

const (
	// TerminationReasonTerminated marks transactions stopped through the
	// admin API.
	TerminationReasonTerminated TerminationReason = "Terminated"
)

// Transaction identifies the live kernel transaction a request is running
// in. Handles compare against it by reference so that a request never
// terminates its own transaction.
type Transaction interface {
	// SequenceNumber is unique per transaction for the process lifetime.
	SequenceNumber() uint64
}

// TransactionHandle is a thread-safe view of one live transaction. Any
// handle obtained from a snapshot may refer to a transaction that has since
// committed, rolled back, or been terminated; all methods stay safe to call
// regardless.
type TransactionHandle interface {
	// Username is the user the transaction was started for.
	Username() string

	// TerminationReason returns the reason the transaction was marked for
	// termination, if it was.
	TerminationReason() (TerminationReason, bool)

	// IsUnderlying reports whether this handle refers to the given live
	// transaction.
	IsUnderlying(tx Transaction) bool

	// MarkForTermination asks the kernel to stop the transaction. It
	// reports whether this call caused the transition; marking an already
	// terminated or finished transaction is a no-op returning false.
	// Completion happens asynchronously in the kernel.
	MarkForTermination(reason TerminationReason) bool

	// ExecutingQueries enumerates the queries currently executing in the
	// transaction. The sequence is finite, may be empty, and reflects the
	// state at the time it is consumed.
	ExecutingQueries() iter.Seq[ExecutingQuery]
}

// ExecutingQuery is a point-in-time view of one query running inside a
// transaction. InternalID is only unique within this process's transaction
// registry; pair it with the handle that produced it to address the query.
type ExecutingQuery struct {
	InternalID int64

	// Username is the owner of the query, or empty when the kernel could
	// not resolve one.
	Username string

	QueryText  string
	Parameters map[string]any

	// StartTime is epoch milliseconds.
	StartTime int64
}

// Connection is a thread-safe view of one live client session.
type Connection interface {
	Username() string
	HasTerminated() bool

	// Terminate closes the connection. Idempotent.
	Terminate()
}

// TransactionRegistry is the kernel-side tracker of live transactions.
type TransactionRegistry interface {
	// ActiveTransactions returns a point-in-time snapshot. It is safe to
	// call while transactions concurrently start and finish, and it never
	// blocks on them.
	ActiveTransactions() []TransactionHandle
}

// ConnectionRegistry is the kernel-side tracker of live client sessions.
type ConnectionRegistry interface {
	// ActiveConnections returns a point-in-time snapshot of all sessions.
	ActiveConnections() []Connection

	// ActiveConnectionsForUser returns the snapshot restricted to sessions
	// owned by the given user.
	ActiveConnectionsForUser(username string) []Connection
}
