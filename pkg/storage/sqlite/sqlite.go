// Package sqlite provides the user directory backed by an embedded SQLite
// database, so a single-node deployment keeps its users across restarts
// without an external database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/graphd-io/graphd/pkg/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username   TEXT PRIMARY KEY,
	is_admin   INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`

// UserStore is a storage.UserStore over a SQLite database file.
type UserStore struct {
	db *sql.DB
}

var _ storage.UserStore = (*UserStore)(nil)

// Open opens (creating if needed) the directory database at path.
func Open(ctx context.Context, path string) (*UserStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &UserStore{db: db}, nil
}

func (s *UserStore) CreateUser(ctx context.Context, user *storage.User) error {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(username, is_admin, created_at) VALUES (?, ?, ?)`,
		user.Username, boolToInt(user.IsAdmin), createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrCollision
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, username string) (*storage.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT username, is_admin, created_at FROM users WHERE username = ?`, username)

	user, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	return user, err
}

func (s *UserStore) UserExists(ctx context.Context, username string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username = ?`, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return true, nil
}

func (s *UserStore) ListUsers(ctx context.Context) ([]*storage.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, is_admin, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*storage.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *UserStore) Close() error {
	return s.db.Close()
}

func scanUser(scan func(dest ...any) error) (*storage.User, error) {
	var (
		user      storage.User
		isAdmin   int
		createdAt string
	)
	if err := scan(&user.Username, &isAdmin, &createdAt); err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin != 0

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	user.CreatedAt = parsed
	return &user, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
