package main

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsIdlePing bounds how long a quiet game leaves the socket silent; AI
// turns at higher depths can take a while, so the writer keeps proxies
// from cutting the connection in between broadcasts.
const wsIdlePing = 30 * time.Second

type Hub struct {
	mu              sync.Mutex
	clients         map[*Client]struct{}
	broadcastStatus chan StatusResponse
	broadcastReset  chan StatusResponse
}

// Client buffers outbound game messages for one socket. The queue drops
// on overflow: a slow spectator only loses intermediate positions, and the
// next status broadcast carries the full game anyway.
type Client struct {
	send chan wsMessage
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:         make(map[*Client]struct{}),
		broadcastStatus: make(chan StatusResponse, 32),
		broadcastReset:  make(chan StatusResponse, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.fanOut(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastReset:
			h.fanOut(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) fanOut(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.enqueue(msg)
	}
	h.mu.Unlock()
}

func (h *Hub) NewClient() *Client {
	client := &Client{send: make(chan wsMessage, 16)}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) enqueue(msg wsMessage) {
	select {
	case c.send <- msg:
	default:
	}
}

// writeLoop owns the write side of the connection: it serializes queued
// game messages and emits a ping once the socket has been idle for
// wsIdlePing. Returns when the client is unregistered or the write fails.
func (c *Client) writeLoop(conn *websocket.Conn) {
	defer conn.Close()
	ticker := time.NewTicker(wsIdlePing)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePing {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, mustMarshal(wsMessage{Type: "ping"})); err != nil {
				return
			}
			lastWrite = time.Now()
		}
	}
}
