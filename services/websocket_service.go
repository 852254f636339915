package services

import (
	"encoding/json"
	"sync"
	"time"

	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gorilla/websocket"
)

// AlertHub manages websocket subscribers and pushes alert lifecycle events
// (created, status changed) to all of them.
type AlertHub struct {
	clients    map[*AlertClient]bool
	broadcast  chan models.BroadcastMessage
	register   chan *AlertClient
	unregister chan *AlertClient
	mutex      sync.RWMutex
}

// AlertClient represents one subscriber connection.
type AlertClient struct {
	hub  *AlertHub
	conn *websocket.Conn
	send chan []byte
}

func NewAlertHub() *AlertHub {
	return &AlertHub{
		clients:    make(map[*AlertClient]bool),
		broadcast:  make(chan models.BroadcastMessage),
		register:   make(chan *AlertClient),
		unregister: make(chan *AlertClient),
	}
}

// Start runs the hub loop. Call it in its own goroutine.
func (h *AlertHub) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Info("Alert subscriber registered")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			log.Info("Alert subscriber unregistered")

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- h.serializeMessage(message):
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// RegisterClient attaches a new subscriber connection to the hub.
func (h *AlertHub) RegisterClient(conn *websocket.Conn) {
	client := &AlertClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// Broadcast pushes an alert event to all subscribers. Safe to call from any
// goroutine.
func (h *AlertHub) Broadcast(message models.BroadcastMessage) {
	h.broadcast <- message
}

// ConnectedClients returns the current subscriber count.
func (h *AlertHub) ConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *AlertHub) serializeMessage(message models.BroadcastMessage) []byte {
	data, err := json.Marshal(message)
	if err != nil {
		log.Errorf("Failed to serialize broadcast message: %v", err)
		return []byte("{}")
	}
	return data
}

// readPump drains the connection so pings and close frames are processed.
func (c *AlertClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Errorf("Websocket read error: %v", err)
			}
			break
		}
	}
}

// writePump pumps hub messages to the connection and keeps it alive with
// pings.
func (c *AlertClient) writePump() {
	ticker := time.NewTicker(54 * time.Second)
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

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
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
