package kernel

import "context"

type callerTransactionContextKey struct{}

// ContextWithCallerTransaction records the live transaction an admin
// request is running in, so bulk termination can exclude it.
func ContextWithCallerTransaction(ctx context.Context, tx Transaction) context.Context {
	return context.WithValue(ctx, callerTransactionContextKey{}, tx)
}

// CallerTransactionFromContext returns the request's own transaction, if
// the dispatch layer recorded one. Requests arriving from outside the
// kernel (for example over the HTTP gateway) have none.
func CallerTransactionFromContext(ctx context.Context) (Transaction, bool) {
	tx, ok := ctx.Value(callerTransactionContextKey{}).(Transaction)
	if !ok || tx == nil {
		return nil, false
	}
	return tx, true
}
