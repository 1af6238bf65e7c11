package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/security"

	"github.com/go-chi/render"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// EventGetUnreadCount : запрос клиента на текущий счётчик
	EventGetUnreadCount = "get_unread_count"

	protocolTokenPrefix = "access_token."
	maxMessageSize      = 4096
)

// UnreadCounter : источник счётчика непрочитанных
type UnreadCounter interface {
	CountUnread(ctx context.Context, userID int64) (int, error)
}

type clientMessage struct {
	Event string `json:"event"`
}

// Handler : GET /ws. Токен проверяется до Upgrade, анонимных соединений не бывает.
type Handler struct {
	verifier     security.TokenVerifier
	registry     *Registry
	hub          *Hub
	counter      UnreadCounter
	pingTimeout  time.Duration
	writeTimeout time.Duration
	sendBuffer   int
	upgrader     websocket.Upgrader
	log          *logrus.Entry
}

func NewHandler(
	verifier security.TokenVerifier,
	registry *Registry,
	hub *Hub,
	counter UnreadCounter,
	cfg config.RealtimeConfig,
	allowedOrigin string,
) *Handler {
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	return &Handler{
		verifier:     verifier,
		registry:     registry,
		hub:          hub,
		counter:      counter,
		pingTimeout:  cfg.PingTimeout,
		writeTimeout: cfg.WriteTimeout,
		sendBuffer:   cfg.SendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigin),
		},
		log: logrus.WithField("component", "realtime"),
	}
}

// ExtractToken : токен из query ?token=, заголовка Authorization или
// подпротокола "access_token.<jwt>". Второе значение: подпротокол, который надо вернуть клиенту.
func ExtractToken(r *http.Request) (string, string) {
	if token := r.URL.Query().Get("token"); token != "" {
		return token, ""
	}
	if token, ok := security.BearerToken(r.Header.Get("Authorization")); ok {
		return token, ""
	}
	for _, protocol := range websocket.Subprotocols(r) {
		if strings.HasPrefix(protocol, protocolTokenPrefix) {
			return strings.TrimPrefix(protocol, protocolTokenPrefix), protocol
		}
	}
	return "", ""
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, protocol := ExtractToken(r)

	claims, err := h.verifier.Verify(token)
	if err != nil {
		h.log.WithError(err).Debug("websocket рукопожатие отклонено")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, requestresponse.ErrorResponse{
			Error: requestresponse.ErrorDetail{Code: http.StatusUnauthorized, Text: "unauthorized"},
		})
		return
	}

	var header http.Header
	if protocol != "" {
		header = http.Header{"Sec-Websocket-Protocol": []string{protocol}}
	}

	ws, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.log.WithError(err).Warn("не удалось установить websocket соединение")
		return
	}

	conn := NewConnection(claims.UserID, h.sendBuffer)
	id := h.registry.Register(claims.UserID, conn)
	log := h.log.WithFields(logrus.Fields{"user_id": claims.UserID, "connection_id": id})
	log.Info("websocket подключен")

	go h.writePump(ws, conn, log)
	h.sendUnreadCount(conn, log)
	h.readPump(ws, conn, log)

	h.registry.Deregister(id)
	conn.Close()
	log.Info("websocket отключен")
}

// readPump : читает сообщения клиента и продлевает дедлайн по pong
func (h *Handler) readPump(ws *websocket.Conn, conn *Connection, log *logrus.Entry) {
	defer ws.Close()

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(h.pingTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.pingTimeout))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("соединение закрыто")
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Event {
		case EventGetUnreadCount:
			h.sendUnreadCount(conn, log)
		}
	}
}

// writePump : единственный писатель в сокет; пинг каждые 9/10 таймаута
func (h *Handler) writePump(ws *websocket.Conn, conn *Connection, log *logrus.Entry) {
	ticker := time.NewTicker(h.pingTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case msg := <-conn.Messages():
			_ = ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.WithError(err).Debug("ошибка записи в websocket")
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-conn.done:
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(h.writeTimeout))
			return
		}
	}
}

func (h *Handler) sendUnreadCount(conn *Connection, log *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
	defer cancel()

	count, err := h.counter.CountUnread(ctx, conn.UserID)
	if err != nil {
		log.WithError(err).Warn("не удалось получить счётчик непрочитанных")
		return
	}
	h.hub.sendTo(conn, model.EventUnreadCount, model.UnreadCountPayload{UnreadCount: count})
}

// checkOrigin : пустое значение или "*" разрешают любой origin
func checkOrigin(allowed string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if allowed == "" || allowed == "*" || origin == "" {
			return true
		}
		return strings.EqualFold(origin, allowed)
	}
}
