package realtime

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Envelope : формат всех сообщений в канале
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub : best-effort доставка событий всем соединениям пользователя
type Hub struct {
	registry *Registry
	log      *logrus.Entry
}

func NewHub(registry *Registry) *Hub {
	return &Hub{
		registry: registry,
		log:      logrus.WithField("component", "realtime"),
	}
}

// EmitToUser : без соединений no-op. Ничего не возвращает и не блокируется:
// переполненный буфер соединения означает потерю сообщения для него.
func (h *Hub) EmitToUser(userID int64, event string, payload any) {
	conns := h.registry.ListConnections(userID)
	if len(conns) == 0 {
		return
	}

	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.WithError(err).WithField("event", event).Error("не удалось сериализовать событие")
		return
	}

	for _, conn := range conns {
		if !conn.Send(msg) {
			h.log.WithFields(logrus.Fields{
				"user_id":       userID,
				"connection_id": conn.ID,
				"event":         event,
			}).Warn("буфер соединения переполнен, сообщение отброшено")
		}
	}
}

// sendTo : событие в одно конкретное соединение
func (h *Hub) sendTo(conn *Connection, event string, payload any) {
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.WithError(err).WithField("event", event).Error("не удалось сериализовать событие")
		return
	}
	if !conn.Send(msg) {
		h.log.WithFields(logrus.Fields{
			"user_id":       conn.UserID,
			"connection_id": conn.ID,
			"event":         event,
		}).Warn("буфер соединения переполнен, сообщение отброшено")
	}
}
