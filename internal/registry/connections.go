package registry

import (
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/graphd-io/graphd/pkg/kernel"
)

// ConnectionRegistry tracks live client sessions.
type ConnectionRegistry struct {
	mu     sync.RWMutex
	active map[string]*Connection
}

var _ kernel.ConnectionRegistry = (*ConnectionRegistry)(nil)

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{active: make(map[string]*Connection)}
}

// Register starts tracking a session owned by username.
func (r *ConnectionRegistry) Register(username string) *Connection {
	conn := &Connection{
		id:       ulid.Make().String(),
		username: username,
		registry: r,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[conn.id] = conn
	return conn
}

// ActiveConnections returns a point-in-time snapshot of all live sessions.
func (r *ConnectionRegistry) ActiveConnections() []kernel.Connection {
	return r.snapshot(func(*Connection) bool { return true })
}

// ActiveConnectionsForUser returns the snapshot restricted to sessions
// owned by the given user.
func (r *ConnectionRegistry) ActiveConnectionsForUser(username string) []kernel.Connection {
	return r.snapshot(func(c *Connection) bool { return c.username == username })
}

func (r *ConnectionRegistry) snapshot(keep func(*Connection) bool) []kernel.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]kernel.Connection, 0, len(r.active))
	for _, conn := range r.active {
		if keep(conn) {
			conns = append(conns, conn)
		}
	}
	return conns
}

func (r *ConnectionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, id)
}

// Connection is a live client session. It doubles as the kernel.Connection
// view snapshots hand out.
type Connection struct {
	id         string
	username   string
	registry   *ConnectionRegistry
	terminated atomic.Bool
}

var _ kernel.Connection = (*Connection)(nil)

// ID is the session identifier assigned at registration.
func (c *Connection) ID() string {
	return c.id
}

func (c *Connection) Username() string {
	return c.username
}

func (c *Connection) HasTerminated() bool {
	return c.terminated.Load()
}

// Terminate closes the session. Concurrent and repeated calls collapse to
// a single transition.
func (c *Connection) Terminate() {
	if c.terminated.CompareAndSwap(false, true) {
		c.registry.remove(c.id)
	}
}
