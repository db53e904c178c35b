// Package display pushes refresh events to the customer-facing TV screens.
// Displays hold a WebSocket open and re-fetch the menu when told a publish
// happened.
package display

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Displays connect from the restaurant LAN
	},
}

// Event is a message broadcast to connected displays.
type Event struct {
	Type string `json:"type"`
	Date string `json:"date,omitempty"`
}

// Hub tracks connected displays and broadcasts events to all of them.
type Hub struct {
	mu    sync.Mutex
	conns map[*connection]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]bool)}
}

type connection struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Handle upgrades the request and registers the display.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wc := &connection{
		conn: conn,
		send: make(chan []byte, 16),
		hub:  h,
	}
	h.mu.Lock()
	h.conns[wc] = true
	h.mu.Unlock()

	go wc.writePump()
	go wc.readPump()
}

// Broadcast sends an event to every connected display. Slow consumers are
// skipped rather than blocking the publish path.
func (h *Hub) Broadcast(evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Error marshaling display event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for wc := range h.conns {
		select {
		case wc.send <- data:
		default:
			log.Println("Display buffer full, dropping event")
		}
	}
}

// ConnectedDisplays returns the number of open display connections.
func (h *Hub) ConnectedDisplays() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) remove(wc *connection) {
	h.mu.Lock()
	delete(h.conns, wc)
	h.mu.Unlock()
}

// readPump drains incoming frames; displays only listen, so anything other
// than pongs just resets the read deadline.
func (c *connection) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}

// writePump pumps events to the display and keeps the connection alive.
func (c *connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
