// Package registry contains the in-process implementations of the kernel
// registries the admin subsystem observes. Snapshots are copy-on-read:
// enumerating never blocks transactions or connections from starting and
// finishing concurrently.
package registry

import (
	"iter"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/graphd-io/graphd/pkg/kernel"
)

// TransactionRegistry tracks live transactions and hands out snapshot
// handles over them.
type TransactionRegistry struct {
	clock clockwork.Clock

	mu          sync.RWMutex
	active      map[*Transaction]struct{}
	nextSeq     uint64
	nextQueryID int64
}

var _ kernel.TransactionRegistry = (*TransactionRegistry)(nil)

type TransactionRegistryOption func(*TransactionRegistry)

// WithClock overrides the clock used to stamp query start times.
func WithClock(clock clockwork.Clock) TransactionRegistryOption {
	return func(r *TransactionRegistry) {
		r.clock = clock
	}
}

func NewTransactionRegistry(opts ...TransactionRegistryOption) *TransactionRegistry {
	r := &TransactionRegistry{
		clock:  clockwork.NewRealClock(),
		active: make(map[*Transaction]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin starts tracking a transaction owned by username.
func (r *TransactionRegistry) Begin(username string) *Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	tx := &Transaction{
		registry: r,
		seq:      r.nextSeq,
		username: username,
		queries:  make(map[int64]kernel.ExecutingQuery),
	}
	r.active[tx] = struct{}{}
	return tx
}

// ActiveTransactions returns a point-in-time snapshot of the live
// transactions. Handles in the snapshot stay safe to use after the
// underlying transaction finishes.
func (r *TransactionRegistry) ActiveTransactions() []kernel.TransactionHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handles := make([]kernel.TransactionHandle, 0, len(r.active))
	for tx := range r.active {
		handles = append(handles, tx)
	}
	return handles
}

func (r *TransactionRegistry) remove(tx *Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, tx)
}

func (r *TransactionRegistry) allocateQueryID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextQueryID++
	return r.nextQueryID
}

// Transaction is a live transaction tracked by the registry. It doubles as
// the kernel.TransactionHandle snapshots hand out.
type Transaction struct {
	registry *TransactionRegistry
	seq      uint64
	username string

	mu      sync.Mutex
	done    bool
	marked  bool
	reason  kernel.TerminationReason
	queries map[int64]kernel.ExecutingQuery
}

var (
	_ kernel.Transaction       = (*Transaction)(nil)
	_ kernel.TransactionHandle = (*Transaction)(nil)
)

func (tx *Transaction) SequenceNumber() uint64 {
	return tx.seq
}

func (tx *Transaction) Username() string {
	return tx.username
}

func (tx *Transaction) TerminationReason() (kernel.TerminationReason, bool) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.reason, tx.marked
}

func (tx *Transaction) IsUnderlying(other kernel.Transaction) bool {
	self, ok := other.(*Transaction)
	return ok && self == tx
}

// MarkForTermination flags the transaction for asynchronous termination.
// Only the call that performs the transition returns true; a finished or
// already marked transaction is left alone.
func (tx *Transaction) MarkForTermination(reason kernel.TerminationReason) bool {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	if tx.done || tx.marked {
		return false
	}
	tx.marked = true
	tx.reason = reason
	return true
}

// ExecutingQueries enumerates the queries currently attached to the
// transaction. The sequence reflects the state at consumption time.
func (tx *Transaction) ExecutingQueries() iter.Seq[kernel.ExecutingQuery] {
	return func(yield func(kernel.ExecutingQuery) bool) {
		tx.mu.Lock()
		queries := make([]kernel.ExecutingQuery, 0, len(tx.queries))
		for _, q := range tx.queries {
			queries = append(queries, q)
		}
		tx.mu.Unlock()

		for _, q := range queries {
			if !yield(q) {
				return
			}
		}
	}
}

// StartQuery attaches an executing query to the transaction and returns its
// kernel-internal id, used to detach it on completion.
func (tx *Transaction) StartQuery(queryText string, parameters map[string]any) int64 {
	return tx.startQueryAs(tx.username, queryText, parameters)
}

// StartQueryUnresolved attaches a query whose owner the kernel could not
// resolve.
func (tx *Transaction) StartQueryUnresolved(queryText string, parameters map[string]any) int64 {
	return tx.startQueryAs("", queryText, parameters)
}

func (tx *Transaction) startQueryAs(username, queryText string, parameters map[string]any) int64 {
	id := tx.registry.allocateQueryID()
	query := kernel.ExecutingQuery{
		InternalID: id,
		Username:   username,
		QueryText:  queryText,
		Parameters: parameters,
		StartTime:  tx.registry.clock.Now().UnixMilli(),
	}

	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.queries[id] = query
	return id
}

// FinishQuery detaches a completed query. Unknown ids are ignored.
func (tx *Transaction) FinishQuery(id int64) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	delete(tx.queries, id)
}

// Close ends the transaction and removes it from the registry. Handles
// taken from earlier snapshots remain valid; marking them afterwards is a
// no-op.
func (tx *Transaction) Close() {
	tx.mu.Lock()
	tx.done = true
	tx.queries = make(map[int64]kernel.ExecutingQuery)
	tx.mu.Unlock()

	tx.registry.remove(tx)
}
