package handlers

import (
	"log"
	"net/http"

	"github.com/arturxdev/interview-helper/internal/practice"
	"github.com/arturxdev/interview-helper/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SessionReader reports whether a practice session exists.
type SessionReader interface {
	State(id string) (practice.View, error)
}

type WSHandler struct {
	hub      *ws.Hub
	sessions SessionReader
}

func NewWSHandler(hub *ws.Hub, sessions SessionReader) *WSHandler {
	return &WSHandler{hub: hub, sessions: sessions}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for practice feedback
// @Description  Receive feedback_ready / feedback_failed messages for a practice session
// @Tags         websocket
// @Param        id path string true "Session ID"
// @Failure      404 {object} ErrorResponse
// @Router       /ws/practice/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.sessions.State(sessionID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(sessionID, conn)
	defer h.hub.RemoveConnection(sessionID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
