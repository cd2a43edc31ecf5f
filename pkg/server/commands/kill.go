package commands

import (
	"sort"

	"github.com/graphd-io/graphd/pkg/kernel"
	"github.com/graphd-io/graphd/pkg/queryid"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

// queryCandidate pairs an executing query with the handle of the
// transaction running it. Internal query ids are only unique within one
// registry, so the pair is the unit of addressing for kills.
type queryCandidate struct {
	handle kernel.TransactionHandle
	query  kernel.ExecutingQuery
}

// queryCandidates scans a fresh snapshot for queries whose internal id
// satisfies match, ordered by internal id.
func queryCandidates(transactions kernel.TransactionRegistry, match func(int64) bool) []queryCandidate {
	var candidates []queryCandidate
	for _, handle := range transactions.ActiveTransactions() {
		for query := range handle.ExecutingQueries() {
			if match(query.InternalID) {
				candidates = append(candidates, queryCandidate{handle: handle, query: query})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].query.InternalID < candidates[j].query.InternalID
	})
	return candidates
}

// killCandidate marks the candidate's transaction for termination and
// builds its result row. A candidate whose transaction already finished or
// was already terminating is a vanished target: no row, no error.
func killCandidate(cand queryCandidate) (QueryTerminationResult, bool, error) {
	if !cand.handle.MarkForTermination(kernel.TerminationReasonTerminated) {
		return QueryTerminationResult{}, false, nil
	}

	qid, err := queryid.New(cand.query.InternalID)
	if err != nil {
		return QueryTerminationResult{}, false, serverErrors.InvalidQueryID(err)
	}
	return QueryTerminationResult{
		QueryID:  qid.String(),
		Username: usernameOrUnavailable(cand.query.Username),
	}, true, nil
}
