package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	MessageFeedbackReady  = "feedback_ready"
	MessageFeedbackFailed = "feedback_failed"
	MessageSessionClosed  = "session_closed"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans messages out to every client watching a practice session.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[Conn]bool),
	}
}

func (h *Hub) AddConnection(sessionID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[Conn]bool)
	}
	h.sessions[sessionID][conn] = true
	log.Printf("ws: client connected to session %s (total: %d)", sessionID, len(h.sessions[sessionID]))
}

func (h *Hub) RemoveConnection(sessionID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.sessions[sessionID]; ok {
		if !conns[conn] {
			return
		}
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.sessions, sessionID)
		}
		log.Printf("ws: client disconnected from session %s", sessionID)
	}
}

func (h *Hub) Broadcast(sessionID string, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.sessions, sessionID)
	}
}

// CloseSession notifies and disconnects every client of a session that ended.
func (h *Hub) CloseSession(sessionID string) {
	h.Broadcast(sessionID, WSMessage{Type: MessageSessionClosed, Data: map[string]string{"session_id": sessionID}})

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.sessions[sessionID] {
		conn.Close()
	}
	delete(h.sessions, sessionID)
}

func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions[sessionID])
}
