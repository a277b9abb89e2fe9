package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/l-sayginsoy/drk-display/internal/application/services"
	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
)

// streamMessage is the envelope pushed to connected kiosks.
type streamMessage struct {
	Type    string                 `json:"type"` // "focus" or "content"
	Focus   *entities.FocusContent `json:"focus,omitempty"`
	Content *entities.AppData      `json:"content,omitempty"`
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans content and focus changes out to connected kiosk clients. A
// 1-second ticker re-evaluates the focus selection; a broadcast goes out
// whenever the selection changes and after every document mutation.
type Hub struct {
	display  *services.DisplayService
	logger   *logger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*hubClient]struct{}
}

// NewHub creates a new kiosk push hub
func NewHub(display *services.DisplayService, appLogger *logger.Logger) *Hub {
	return &Hub{
		display: display,
		logger:  appLogger.WithComponent("hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Kiosks are same-origin or on the facility network.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*hubClient]struct{}),
	}
}

// Handle upgrades the request and serves the client until it disconnects.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &hubClient{
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Infow("Kiosk connected", "clients", count)

	// Send the current state immediately so a fresh kiosk renders without
	// waiting for the next change.
	h.sendTo(client, streamMessage{Type: "focus", Focus: focusPtr(h.display.Focus(time.Now()))})

	go h.writePump(client)
	h.readPump(client)
	return nil
}

// Run drives the 1-second focus ticker until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	last := h.encodeFocus(h.display.Focus(time.Now()))

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case now := <-ticker.C:
			current := h.encodeFocus(h.display.Focus(now))
			if current != last {
				last = current
				h.Broadcast(streamMessage{Type: "focus", Focus: focusPtr(h.display.Focus(now))})
			}
		}
	}
}

// NotifyContent pushes a full document snapshot, called after every admin
// mutation.
func (h *Hub) NotifyContent(doc entities.AppData) {
	h.Broadcast(streamMessage{Type: "content", Content: &doc})
	// A mutation may also flip the focus; the ticker picks that up within
	// a second.
}

// Broadcast sends a message to every connected client. Slow clients are
// dropped rather than allowed to stall the hub.
func (h *Hub) Broadcast(msg streamMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Errorw("Could not encode stream message", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			h.dropLocked(client)
		}
	}
}

func (h *Hub) sendTo(client *hubClient, msg streamMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case client.send <- payload:
	default:
	}
}

func (h *Hub) writePump(client *hubClient) {
	for payload := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.drop(client)
			return
		}
	}
	client.conn.Close()
}

func (h *Hub) readPump(client *hubClient) {
	defer h.drop(client)
	client.conn.SetReadLimit(512)
	for {
		// Kiosks never send payloads; reading only detects disconnects.
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(client *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client)
}

func (h *Hub) dropLocked(client *hubClient) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	client.conn.Close()
	h.logger.Infow("Kiosk disconnected", "clients", len(h.clients))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.dropLocked(client)
	}
}

func (h *Hub) encodeFocus(focus entities.FocusContent) string {
	payload, err := json.Marshal(focus)
	if err != nil {
		return ""
	}
	return string(payload)
}

func focusPtr(focus entities.FocusContent) *entities.FocusContent {
	return &focus
}
