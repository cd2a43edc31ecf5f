// Package memory provides an in-memory user directory, used in tests and
// for single-node setups that provision users at boot.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/graphd-io/graphd/pkg/storage"
)

// UserStore is an in-memory storage.UserStore. Safe for concurrent use.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*storage.User
}

var _ storage.UserStore = (*UserStore)(nil)

func New() *UserStore {
	return &UserStore{users: make(map[string]*storage.User)}
}

func (s *UserStore) CreateUser(ctx context.Context, user *storage.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return storage.ErrCollision
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[user.Username] = &stored
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, username string) (*storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *UserStore) UserExists(ctx context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[username]
	return ok, nil
}

func (s *UserStore) ListUsers(ctx context.Context) ([]*storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*storage.User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *UserStore) Close() error {
	return nil
}
