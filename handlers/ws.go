package handlers

import (
	"net/http"
	"time"

	"campuscare/models"
	"campuscare/services/notification"
	"campuscare/services/realtime"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Close code sent when the connection's token does not validate. Sits in
// the 4000-4999 range reserved for application use.
const closeUnauthorized = 4401

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients cannot set custom headers on WebSocket dials, so
	// auth travels in the query string and origins are not restricted here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler serves the real-time notification channel.
type WSHandler struct {
	Hub           *realtime.Hub
	Notifications notification.NotificationService
}

// NewWSHandler constructs a WSHandler.
func NewWSHandler(hub *realtime.Hub, notifs notification.NotificationService) *WSHandler {
	return &WSHandler{Hub: hub, Notifications: notifs}
}

func closeDeadline() time.Time {
	return time.Now().Add(time.Second)
}

// NotificationSocketHandler upgrades the request and pumps events for one
// user. The token is validated after the upgrade so the client receives a
// proper close frame instead of a failed handshake.
func (h *WSHandler) NotificationSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	userID, err := utils.ExtractIDFromToken(c.Query("token"))
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(closeUnauthorized, "invalid token"), closeDeadline())
		_ = conn.Close()
		return
	}

	session := realtime.NewSession(conn)
	h.Hub.Register(userID, session)
	defer func() {
		h.Hub.Unregister(userID, session)
		_ = session.Close()
	}()

	// Opening snapshot. A count failure is logged and swallowed; the
	// channel stays open and later pushes still arrive.
	if count, err := h.Notifications.UnreadCount(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Warn("initial unread count failed",
			zap.String("userID", userID), zap.Error(err))
	} else {
		_ = session.Send(models.Event{Type: models.EventUnreadCount, Count: &count})
	}

	// Inbound messages are only keepalives. Any text gets a pong; a read
	// error means the peer is gone.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		if err := session.Send(models.Event{Type: models.EventPong}); err != nil {
			return
		}
	}
}
