// Package tracker fans truck GPS pings out to dashboard map viewers over
// websockets. Pings arrive from the ingestor or the simulator, get persisted
// to the telemetry store, and are broadcast to every connected viewer.
package tracker

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
)

// Hub maintains the set of connected map viewers and broadcasts truck
// positions to them.
type Hub struct {
	logger *zap.Logger

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *db.TruckPosition
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *db.TruckPosition, 64),
	}
}

// Run owns the client set. All registration and broadcast traffic goes
// through here, so no locking is needed. Returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Debug("Map viewer connected", zap.Int("viewers", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("Map viewer disconnected", zap.Int("viewers", len(h.clients)))
			}
		case position := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- position:
				default:
					// Slow consumer, drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast queues a position for delivery to every connected viewer.
// Never blocks; the position is dropped if the hub is saturated.
func (h *Hub) Broadcast(p *db.TruckPosition) {
	select {
	case h.broadcast <- p:
	default:
		h.logger.Warn("Broadcast queue full, dropping position", zap.String("route_id", p.RouteID))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ServeWS upgrades an HTTP request to a websocket and attaches the viewer
// to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Websocket upgrade failed", zap.Error(err))
		return
	}

	client := newClient(h, conn)
	h.register <- client
	client.start()
}
