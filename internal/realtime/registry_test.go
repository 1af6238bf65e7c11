package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterDeregister(t *testing.T) {
	r := NewRegistry()

	first := r.Register(1, NewConnection(1, 4))
	second := r.Register(1, NewConnection(1, 4))
	other := r.Register(2, NewConnection(2, 4))

	assert.NotEqual(t, first, second)
	assert.Len(t, r.ListConnections(1), 2)
	assert.Equal(t, 3, r.Count())

	assert.True(t, r.Deregister(first))
	assert.False(t, r.Deregister(first))
	assert.True(t, r.Online(1))
	assert.Len(t, r.ListConnections(1), 1)

	assert.True(t, r.Deregister(second))
	assert.False(t, r.Online(1))
	assert.Empty(t, r.ListConnections(1))
	assert.True(t, r.Online(2))
	assert.True(t, r.Deregister(other))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	hub := NewHub(r)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			id := r.Register(userID%5, NewConnection(userID%5, 1))
			hub.EmitToUser(userID%5, "ping", nil)
			r.ListConnections(userID % 5)
			r.Deregister(id)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count())
}

func TestHub_EmitToUser_AllConnections(t *testing.T) {
	r := NewRegistry()
	hub := NewHub(r)

	a := NewConnection(1, 4)
	b := NewConnection(1, 4)
	stranger := NewConnection(2, 4)
	r.Register(1, a)
	r.Register(1, b)
	r.Register(2, stranger)

	hub.EmitToUser(1, "new_notification", map[string]int{"orderId": 42})

	for _, conn := range []*Connection{a, b} {
		select {
		case msg := <-conn.send:
			var env struct {
				Event string         `json:"event"`
				Data  map[string]int `json:"data"`
			}
			require.NoError(t, json.Unmarshal(msg, &env))
			assert.Equal(t, "new_notification", env.Event)
			assert.Equal(t, 42, env.Data["orderId"])
		default:
			t.Fatal("сообщение не доставлено")
		}
	}
	assert.Empty(t, stranger.send)
}

func TestHub_EmitToUser_NoConnectionsIsNoop(t *testing.T) {
	hub := NewHub(NewRegistry())
	assert.NotPanics(t, func() { hub.EmitToUser(99, "unread_count", map[string]int{"unreadCount": 1}) })
}

func TestHub_EmitToUser_FullBufferDrops(t *testing.T) {
	r := NewRegistry()
	hub := NewHub(r)
	conn := NewConnection(1, 1)
	r.Register(1, conn)

	hub.EmitToUser(1, "first", nil)
	hub.EmitToUser(1, "second", nil)

	assert.Len(t, conn.send, 1)
	msg := <-conn.send
	assert.Contains(t, string(msg), "first")
}

func TestConnection_SendAfterClose(t *testing.T) {
	conn := NewConnection(1, 2)
	conn.Close()
	conn.Close()

	assert.False(t, conn.Send([]byte("x")))
}
