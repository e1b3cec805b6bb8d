package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
)

// Ping is the wire format published by the on-truck GPS units.
type Ping struct {
	RouteID    string    `json:"route_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Ingestor consumes GPS pings from a Pub/Sub subscription, persists them,
// and pushes them to connected map viewers.
type Ingestor struct {
	sub    *pubsub.Subscription
	trucks db.TruckStore
	hub    *Hub
	logger *zap.Logger
}

func NewIngestor(client *pubsub.Client, subscription string, trucks db.TruckStore, hub *Hub, logger *zap.Logger) *Ingestor {
	return &Ingestor{
		sub:    client.Subscription(subscription),
		trucks: trucks,
		hub:    hub,
		logger: logger,
	}
}

// Run blocks receiving pings until ctx is cancelled. Malformed messages are
// acked and dropped; store failures are nacked for redelivery.
func (i *Ingestor) Run(ctx context.Context) error {
	i.logger.Info("GPS ingest started", zap.String("subscription", i.sub.ID()))

	err := i.sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		var ping Ping
		if err := json.Unmarshal(msg.Data, &ping); err != nil {
			i.logger.Warn("Dropping malformed ping", zap.Error(err))
			msg.Ack()
			return
		}
		if ping.RouteID == "" {
			i.logger.Warn("Dropping ping without route_id")
			msg.Ack()
			return
		}
		if ping.RecordedAt.IsZero() {
			ping.RecordedAt = msg.PublishTime
		}

		position := &db.TruckPosition{
			RouteID:    ping.RouteID,
			Latitude:   ping.Latitude,
			Longitude:  ping.Longitude,
			RecordedAt: ping.RecordedAt,
		}
		if err := i.trucks.InsertPosition(ctx, position); err != nil {
			i.logger.Error("Failed to persist ping", zap.String("route_id", ping.RouteID), zap.Error(err))
			msg.Nack()
			return
		}

		i.hub.Broadcast(position)
		msg.Ack()
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("pubsub receive failed: %w", err)
	}
	return nil
}
