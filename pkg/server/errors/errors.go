// Package errors defines the error space of the admin API. Failures are
// gRPC status errors so any transport can map them mechanically.
package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const InternalServerErrorMsg = "internal server error"

var (
	// ErrPermissionDenied if the caller lacks the privilege for the
	// operation or for a specific target.
	ErrPermissionDenied = status.Error(codes.PermissionDenied, "permission denied")

	// ErrMissingIdentity if the request context carries no resolved caller
	// identity. The authentication layer is expected to always inject one.
	ErrMissingIdentity = status.Error(codes.Internal, "caller identity not found in request context")
)

// UserNotFound if a target username does not denote an existing user.
func UserNotFound(username string) error {
	return status.Errorf(codes.InvalidArgument, "user '%s' does not exist", username)
}

// InvalidQueryID if an external query id string could not be parsed.
func InvalidQueryID(err error) error {
	return status.Errorf(codes.InvalidArgument, "invalid query id: %v", err)
}

// NewInternalError masks err behind a public message so internals never
// leak to clients. An empty message falls back to InternalServerErrorMsg.
func NewInternalError(public string, err error) error {
	if public == "" {
		public = InternalServerErrorMsg
	}
	return status.Error(codes.Internal, public)
}

// IsPermissionDenied reports whether err is a permission failure.
func IsPermissionDenied(err error) bool {
	return status.Code(err) == codes.PermissionDenied
}

// IsInvalidArgument reports whether err is a rejected-input failure.
func IsInvalidArgument(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}
