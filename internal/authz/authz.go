// Package authz enforces the authorization policy of the admin API:
// listing other users' work takes administrator privilege, termination is
// self-service or administrator, per target.
package authz

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/logger"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
	"github.com/graphd-io/graphd/pkg/storage"
)

// Authorizer decides whether a caller may perform an admin operation,
// consulting the user directory for target existence.
type Authorizer struct {
	users  storage.UserStore
	logger logger.Logger
}

func NewAuthorizer(users storage.UserStore, logger logger.Logger) *Authorizer {
	return &Authorizer{
		users:  users,
		logger: logger,
	}
}

// RequireAdmin fails with PermissionDenied unless the caller holds the
// administrator capability.
func (a *Authorizer) RequireAdmin(id *identity.Identity) error {
	if id == nil {
		return serverErrors.ErrMissingIdentity
	}
	if !id.IsAdmin {
		return serverErrors.ErrPermissionDenied
	}
	return nil
}

// RequireSelfOrAdmin succeeds when the caller is an administrator or is the
// target user themselves, and the target user exists. The permission check
// runs before the existence check so a non-privileged caller probing a
// foreign username learns nothing from the error kind.
func (a *Authorizer) RequireSelfOrAdmin(ctx context.Context, id *identity.Identity, targetUsername string) error {
	if id == nil {
		return serverErrors.ErrMissingIdentity
	}
	if !id.IsAdmin && !id.HasUsername(targetUsername) {
		a.logger.Debug("denied admin operation",
			zap.String("caller", id.Username),
			zap.String("target", targetUsername))
		return serverErrors.ErrPermissionDenied
	}

	exists, err := a.users.UserExists(ctx, targetUsername)
	if err != nil {
		return serverErrors.NewInternalError("", fmt.Errorf("look up user %q: %w", targetUsername, err))
	}
	if !exists {
		return serverErrors.UserNotFound(targetUsername)
	}
	return nil
}

// CanObserveOrKill reports whether the caller may see or terminate an
// entity owned by ownerUsername. An empty ownerUsername means the kernel
// could not resolve the owner; such entities are visible to administrators
// only.
func CanObserveOrKill(id *identity.Identity, ownerUsername string) bool {
	if id == nil {
		return false
	}
	if id.IsAdmin {
		return true
	}
	return ownerUsername != "" && id.HasUsername(ownerUsername)
}
