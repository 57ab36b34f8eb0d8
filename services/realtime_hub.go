package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Dayabrar/Eco-Eats/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub pushes updated daily totals to a user's connected dashboards.
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
	_ = c.Conn.Close()
}

type summaryEvent struct {
	Type    string           `json:"type"`
	Date    string           `json:"date"`
	Summary models.Nutrients `json:"summary"`
}

// BroadcastSummary sends the date's totals to every connection the user has
// open. Fire-and-forget; slow or dead connections are dropped on their next
// read loop, not here.
func (h *RealtimeHub) BroadcastSummary(userID uint, date time.Time, summary models.Nutrients) {
	msg, _ := json.Marshal(summaryEvent{
		Type:    "daily_summary",
		Date:    models.DateOf(date).Format("2006-01-02"),
		Summary: summary,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
