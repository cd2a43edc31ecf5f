// Package queryid implements the externally visible identifier for an
// executing query. The kernel hands out numeric ids that are only unique
// within the transaction registry of one process; the external form adds a
// fixed prefix so clients pass an opaque, round-trippable string.
package queryid

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "query-"

// QueryID wraps the kernel-internal numeric id of an executing query.
type QueryID struct {
	id int64
}

// New constructs a QueryID from a kernel-internal id. Ids are allocated
// starting from 1; anything non-positive is malformed.
func New(internalID int64) (QueryID, error) {
	if internalID <= 0 {
		return QueryID{}, fmt.Errorf("negative query ids are not supported: %d", internalID)
	}
	return QueryID{id: internalID}, nil
}

// Parse decodes the external string form produced by String.
func Parse(external string) (QueryID, error) {
	raw, ok := strings.CutPrefix(external, prefix)
	if !ok {
		return QueryID{}, fmt.Errorf("expected a query id with prefix %q, got %q", prefix, external)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return QueryID{}, fmt.Errorf("could not parse query id %q: %w", external, err)
	}
	return New(id)
}

// InternalID returns the kernel-internal id.
func (q QueryID) InternalID() int64 {
	return q.id
}

func (q QueryID) String() string {
	return prefix + strconv.FormatInt(q.id, 10)
}
