package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/graphd-io/graphd/internal/mocks"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/logger"
	serverErrors "github.com/graphd-io/graphd/pkg/server/errors"
)

var (
	admin = &identity.Identity{Username: "root", IsAdmin: true}
	alice = &identity.Identity{Username: "alice"}
)

func newAuthorizer(t *testing.T, users *mocks.MockUserStore) *Authorizer {
	t.Helper()
	return NewAuthorizer(users, logger.NewNoopLogger())
}

func TestRequireAdmin(t *testing.T) {
	a := newAuthorizer(t, nil)

	require.NoError(t, a.RequireAdmin(admin))
	require.ErrorIs(t, a.RequireAdmin(alice), serverErrors.ErrPermissionDenied)
	require.ErrorIs(t, a.RequireAdmin(nil), serverErrors.ErrMissingIdentity)
}

func TestRequireSelfOrAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin_any_existing_target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserStore(ctrl)
		users.EXPECT().UserExists(gomock.Any(), "bob").Return(true, nil)

		require.NoError(t, newAuthorizer(t, users).RequireSelfOrAdmin(ctx, admin, "bob"))
	})

	t.Run("self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserStore(ctrl)
		users.EXPECT().UserExists(gomock.Any(), "alice").Return(true, nil)

		require.NoError(t, newAuthorizer(t, users).RequireSelfOrAdmin(ctx, alice, "alice"))
	})

	t.Run("non_admin_foreign_target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserStore(ctrl)
		// No UserExists expectation: the permission check must run first so
		// probing a foreign username cannot reveal whether it exists.

		err := newAuthorizer(t, users).RequireSelfOrAdmin(ctx, alice, "bob")
		require.ErrorIs(t, err, serverErrors.ErrPermissionDenied)
	})

	t.Run("admin_missing_target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserStore(ctrl)
		users.EXPECT().UserExists(gomock.Any(), "mallory").Return(false, nil)

		err := newAuthorizer(t, users).RequireSelfOrAdmin(ctx, admin, "mallory")
		require.True(t, serverErrors.IsInvalidArgument(err))
	})

	t.Run("directory_error_masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserStore(ctrl)
		users.EXPECT().UserExists(gomock.Any(), "bob").Return(false, errors.New("disk on fire"))

		err := newAuthorizer(t, users).RequireSelfOrAdmin(ctx, admin, "bob")
		require.Error(t, err)
		require.NotContains(t, err.Error(), "disk on fire")
	})

	t.Run("missing_identity", func(t *testing.T) {
		err := newAuthorizer(t, nil).RequireSelfOrAdmin(ctx, nil, "bob")
		require.ErrorIs(t, err, serverErrors.ErrMissingIdentity)
	})
}

func TestCanObserveOrKill(t *testing.T) {
	require.True(t, CanObserveOrKill(admin, "bob"))
	require.True(t, CanObserveOrKill(admin, ""))
	require.True(t, CanObserveOrKill(alice, "alice"))
	require.False(t, CanObserveOrKill(alice, "bob"))

	// Unresolvable owners fail closed for non-administrators.
	require.False(t, CanObserveOrKill(alice, ""))
	require.False(t, CanObserveOrKill(nil, "alice"))
}
