package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphd-io/graphd/internal/authz"
	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/storage"
	"github.com/graphd-io/graphd/pkg/storage/memory"
)

var (
	adminCaller = &identity.Identity{Username: "root", IsAdmin: true}
	aliceCaller = &identity.Identity{Username: "alice"}
	bobCaller   = &identity.Identity{Username: "bob"}
)

// newTestAuthorizer backs the authorizer with an in-memory directory
// containing the well-known test users.
func newTestAuthorizer(t *testing.T) *authz.Authorizer {
	t.Helper()

	users := memory.New()
	for _, u := range []*storage.User{
		{Username: "root", IsAdmin: true},
		{Username: "alice"},
		{Username: "bob"},
	} {
		require.NoError(t, users.CreateUser(context.Background(), u))
	}
	return authz.NewAuthorizer(users, logger.NewNoopLogger())
}
