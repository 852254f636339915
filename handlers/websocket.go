package handlers

import (
	"net/http"

	"terrasense-service/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocketHandler upgrades subscriber connections for the live alert feed.
type WebSocketHandler struct {
	hub *services.AlertHub
}

func NewWebSocketHandler(hub *services.AlertHub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// ListenAlerts handles websocket connections for the live alert feed.
func (h *WebSocketHandler) ListenAlerts(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("Error upgrading connection to WebSocket: %v", err)
		return
	}

	h.hub.RegisterClient(conn)
	log.Infof("Alert feed subscriber connected (%d active)", h.hub.ConnectedClients())
}
