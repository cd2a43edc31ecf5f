// Package storage contains the user directory interface and shared storage
// errors. The directory backs the existence checks the authorization layer
// performs on target usernames.
//
//go:generate mockgen -source storage.go -destination ../../internal/mocks/mock_storage.go -package mocks UserStore
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound if the requested user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCollision if a user with the same name already exists.
	ErrCollision = errors.New("user already exists")
)

// User is one entry in the directory.
type User struct {
	Username  string
	IsAdmin   bool
	CreatedAt time.Time
}

// UserStore provides read/write access to the user directory.
type UserStore interface {
	// CreateUser adds a user, failing with ErrCollision on a duplicate name.
	CreateUser(ctx context.Context, user *User) error

	// GetUser returns the named user or ErrNotFound.
	GetUser(ctx context.Context, username string) (*User, error)

	// UserExists reports whether the named user exists.
	UserExists(ctx context.Context, username string) (bool, error)

	// ListUsers returns all users ordered by username.
	ListUsers(ctx context.Context) ([]*User, error)

	Close() error
}
