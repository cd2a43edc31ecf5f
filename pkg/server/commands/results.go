// Package commands implements the admin operations: one command or query
// type per operation, each resolving targets from a registry snapshot,
// authorizing per candidate, and assembling response rows.
package commands

// UnavailableUsername is rendered in place of an owner the kernel could
// not resolve, so consumers always get a printable value.
const UnavailableUsername = "<unavailable>"

// TransactionResult is one row of ListTransactions: a user and how many
// transactions they have running.
type TransactionResult struct {
	Username           string `json:"username"`
	ActiveTransactions int64  `json:"activeTransactions"`
}

// TransactionTerminationResult reports how many transactions a
// TerminateTransactions call actually transitioned.
type TransactionTerminationResult struct {
	Username               string `json:"username"`
	TransactionsTerminated int64  `json:"transactionsTerminated"`
}

// ConnectionResult is one row of ListConnections and the result of
// TerminateConnections: a user and a session count.
type ConnectionResult struct {
	Username        string `json:"username"`
	ConnectionCount int64  `json:"connectionCount"`
}

// QueryStatusResult is one row of ListQueries.
type QueryStatusResult struct {
	QueryID     string         `json:"queryId"`
	Username    string         `json:"username"`
	Query       string         `json:"query"`
	Parameters  map[string]any `json:"parameters"`
	StartTime   string         `json:"startTime"`
	ElapsedTime string         `json:"elapsedTime"`
}

// QueryTerminationResult is one row of KillQuery/KillQueries, emitted per
// successfully targeted query.
type QueryTerminationResult struct {
	QueryID  string `json:"queryId"`
	Username string `json:"username"`
}

func usernameOrUnavailable(username string) string {
	if username == "" {
		return UnavailableUsername
	}
	return username
}
