package services

import (
	"encoding/json"
	"sync"
	"time"

	"backend/models"

	"github.com/gorilla/websocket"
)

// Record feed event types.
const (
	EventRecordCreated = "record_created"
	EventRecordUpdated = "record_updated"
	EventRecordDeleted = "record_deleted"
)

const pingWriteWait = 5 * time.Second

type RecordEvent struct {
	Type   string         `json:"type"`
	Record *models.Record `json:"record"`
}

// WSClient wraps one websocket connection. The connection permits only
// one concurrent writer, so all data frames go through a mutex.
type WSClient struct {
	UserID uint

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{UserID: userID, conn: conn}
}

func (c *WSClient) send(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Ping writes a control frame. Control frames may be written
// concurrently with data frames, so no lock is needed here.
func (c *WSClient) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWriteWait))
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// RealtimeHub fans record events out to the owning user's open
// websocket connections. Delivery is best-effort: write failures are
// ignored and the read loop tears the connection down.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Close()
}

func (h *RealtimeHub) BroadcastRecordEvent(userID uint, event RecordEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.send(msg)
	}
}
