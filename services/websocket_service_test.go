package services

import (
	"encoding/json"
	"testing"
	"time"

	"terrasense-service/models"
)

func TestAlertHubBroadcast(t *testing.T) {
	h := NewAlertHub()
	go h.Start()

	client := &AlertClient{hub: h, send: make(chan []byte, 1)}
	h.register <- client

	deadline := time.After(time.Second)
	for h.ConnectedClients() != 1 {
		select {
		case <-deadline:
			t.Fatal("client never registered")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	alert := &models.Alert{ID: 4, Region: "Narok", Severity: "High", Status: models.AlertActive}
	h.Broadcast(models.BroadcastMessage{Type: "alert_created", Alert: alert})

	select {
	case raw := <-client.send:
		var msg models.BroadcastMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("bad broadcast payload: %v", err)
		}
		if msg.Type != "alert_created" || msg.Alert == nil || msg.Alert.ID != 4 {
			t.Errorf("broadcast %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the subscriber")
	}

	h.unregister <- client
	deadline = time.After(time.Second)
	for h.ConnectedClients() != 0 {
		select {
		case <-deadline:
			t.Fatal("client never unregistered")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestAlertHubDropsStalledSubscriber(t *testing.T) {
	h := NewAlertHub()
	go h.Start()

	// Full send buffer: the hub drops the client instead of blocking.
	client := &AlertClient{hub: h, send: make(chan []byte)}
	h.register <- client

	deadline := time.After(time.Second)
	for h.ConnectedClients() != 1 {
		select {
		case <-deadline:
			t.Fatal("client never registered")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	h.Broadcast(models.BroadcastMessage{Type: "alert_created"})

	deadline = time.After(time.Second)
	for h.ConnectedClients() != 0 {
		select {
		case <-deadline:
			t.Fatal("stalled subscriber was never dropped")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}
