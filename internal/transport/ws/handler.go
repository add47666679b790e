package ws

import (
	"greenify/internal/i18n"
	"greenify/internal/service"
	"greenify/internal/transport/rest/apierror"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler handles WebSocket connections
type Handler struct {
	hub     *Hub
	authSvc *service.AuthService
	logger  *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, logger *slog.Logger) *Handler {
	return &Handler{
		hub:     hub,
		authSvc: authSvc,
		logger:  logger,
	}
}

// Events handles GET /v1/ws?token=
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		apierror.Write(w, r, apierror.MissingToken, i18n.MsgMissingToken)
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		apierror.Write(w, r, apierror.InvalidToken, i18n.MsgInvalidToken)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "userId", claims.ID, "error", err)
		return
	}

	c := &client{
		conn:   &Connection{UserID: claims.ID, Send: make(chan []byte, sendBuffer)},
		ws:     wsConn,
		hub:    h.hub,
		logger: h.logger.With("userId", claims.ID),
	}
	h.hub.Register(c.conn)

	go c.writeEvents()
	go c.drainInbound()
}

// client pairs one hub Connection with its socket.
type client struct {
	conn   *Connection
	ws     *websocket.Conn
	hub    *Hub
	logger *slog.Logger
}

// drainInbound keeps the read deadline moving on pongs and unregisters on the first read error.
// The stream is one-way, so frames from the client are dropped.
func (c *client) drainInbound() {
	defer func() {
		c.hub.Unregister(c.conn)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	extend := func(string) error { return c.ws.SetReadDeadline(time.Now().Add(pongWait)) }
	_ = extend("")
	c.ws.SetPongHandler(extend)

	for {
		if _, _, err := c.ws.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
	}
}

// writeEvents sends each queued event as one text frame and pings between them.
func (c *client) writeEvents() {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case event, open := <-c.conn.Send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				// Unregistered or hub closed.
				_ = c.ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, event); err != nil {
				c.logger.Debug("websocket write failed", "error", err)
				return
			}
		case <-ping.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
