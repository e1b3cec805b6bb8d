package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
)

// Simulator walks each route's polyline at a fixed cadence, persisting and
// broadcasting a synthetic ping per step. Used for demos and for exercising
// the map before real trackers are fitted to the trucks.
type Simulator struct {
	routes   db.RouteStore
	trucks   db.TruckStore
	hub      *Hub
	logger   *zap.Logger
	interval time.Duration
}

func NewSimulator(routes db.RouteStore, trucks db.TruckStore, hub *Hub, logger *zap.Logger, interval time.Duration) *Simulator {
	return &Simulator{
		routes:   routes,
		trucks:   trucks,
		hub:      hub,
		logger:   logger,
		interval: interval,
	}
}

// Run loads the drivable routes once, then advances every truck one
// waypoint per tick until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	all, err := s.routes.ListRoutes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list routes: %w", err)
	}

	drivable := make([]db.Route, 0, len(all))
	for _, r := range all {
		if len(r.Coordinates) >= 2 {
			drivable = append(drivable, r)
		}
	}
	if len(drivable) == 0 {
		return fmt.Errorf("no routes with a drivable polyline")
	}

	s.logger.Info("Truck simulation started",
		zap.Int("trucks", len(drivable)),
		zap.Duration("interval", s.interval))

	steps := make([]int, len(drivable))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Truck simulation stopped")
			return nil
		case <-ticker.C:
			for i, route := range drivable {
				point := pointAtStep(route.Coordinates, steps[i])
				steps[i]++

				position := &db.TruckPosition{
					RouteID:    route.ID,
					Latitude:   point.Latitude,
					Longitude:  point.Longitude,
					RecordedAt: time.Now().UTC(),
				}
				if err := s.trucks.InsertPosition(ctx, position); err != nil {
					s.logger.Error("Failed to persist simulated position",
						zap.String("route_id", route.ID),
						zap.Error(err))
					continue
				}
				s.hub.Broadcast(position)
			}
		}
	}
}

// pointAtStep walks the polyline forward then backward, looping forever,
// so a truck sweeps its route in both directions like the real ones do.
func pointAtStep(coords []db.Coordinate, step int) db.Coordinate {
	n := len(coords)
	if n == 1 {
		return coords[0]
	}
	cycle := 2 * (n - 1)
	pos := step % cycle
	if pos < n {
		return coords[pos]
	}
	return coords[cycle-pos]
}
