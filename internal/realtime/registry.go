// Package realtime держит живые websocket соединения пользователей
// и доставляет им события уведомлений.
package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Connection : одно соединение пользователя. Исходящие сообщения идут через буферизованный канал,
// пишет в сокет только writePump.
type Connection struct {
	ID     string
	UserID int64

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewConnection(userID int64, buffer int) *Connection {
	if buffer <= 0 {
		buffer = 1
	}
	return &Connection{
		UserID: userID,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

// Send : неблокирующая отправка, false если буфер полон или соединение закрыто
func (c *Connection) Send(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Messages : очередь исходящих сообщений соединения
func (c *Connection) Messages() <-chan []byte {
	return c.send
}

// Close : идемпотентно
func (c *Connection) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Registry : userID -> соединения. Не источник истины, только оптимизация доставки.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]*Connection
	byUser map[int64]map[string]*Connection
}

func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Connection),
		byUser: make(map[int64]map[string]*Connection),
	}
}

// Register : добавляет соединение и возвращает его id.
// Соединения одного пользователя накапливаются, а не вытесняют друг друга.
func (r *Registry) Register(userID int64, conn *Connection) string {
	conn.ID = uuid.NewString()
	conn.UserID = userID

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[conn.ID] = conn
	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]*Connection)
	}
	r.byUser[userID][conn.ID] = conn

	return conn.ID
}

// Deregister : удаляет ровно это соединение
func (r *Registry) Deregister(connectionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.byID[connectionID]
	if !ok {
		return false
	}
	delete(r.byID, connectionID)

	userConns := r.byUser[conn.UserID]
	delete(userConns, connectionID)
	if len(userConns) == 0 {
		delete(r.byUser, conn.UserID)
	}
	return true
}

// ListConnections : снимок соединений пользователя
func (r *Registry) ListConnections(userID int64) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userConns := r.byUser[userID]
	result := make([]*Connection, 0, len(userConns))
	for _, c := range userConns {
		result = append(result, c)
	}
	return result
}

func (r *Registry) Online(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// Count : всего соединений
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
