// Package identity carries the resolved caller identity through a request
// context. The authentication layer resolves the caller once per request;
// everything below only reads it.
package identity

import "context"

type identityContextKey struct{}

// Identity is the caller of an admin operation: the username the
// authentication layer resolved, and whether that user holds the
// administrator capability. Immutable for the lifetime of the request.
type Identity struct {
	Username string
	IsAdmin  bool
}

// HasUsername reports whether the identity names the given user.
func (i *Identity) HasUsername(username string) bool {
	return i.Username == username
}

// ContextWithIdentity injects the caller identity into the context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// FromContext extracts the caller identity, if one was injected.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
