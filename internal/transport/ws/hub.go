package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgChatEscalation   MessageType = "chat_escalation"
	MsgEscalationRaised MessageType = "escalation_raised"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans escalation alerts out to connected counsellors
type Hub struct {
	conns map[string]*Connection // counsellorID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one counsellor's WebSocket connection
type Connection struct {
	CounsellorID string
	Send         chan []byte
	Hub          *Hub
}

// NewHub creates a new alert hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if replaced, ok := h.conns[conn.CounsellorID]; ok {
				// A reconnect supersedes the old socket
				close(replaced.Send)
				log.Info().Str("counsellor_id", conn.CounsellorID).Msg("replacing stale alert connection")
			}
			h.conns[conn.CounsellorID] = conn
			h.mu.Unlock()
			log.Info().Str("counsellor_id", conn.CounsellorID).Msg("counsellor connected to alert feed")

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.CounsellorID]; ok && existing == conn {
				delete(h.conns, conn.CounsellorID)
				close(conn.Send)
				log.Info().Str("counsellor_id", conn.CounsellorID).Msg("counsellor disconnected from alert feed")
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for _, conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastAlert sends an alert to all connected counsellors
// (implements service.Broadcaster)
func (h *Hub) BroadcastAlert(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &Message{
		Type:    MessageType(msgType),
		Payload: data,
	}
}
