package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/dashboard"
	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/db"
)

// Summary loads every stored schedule and reduces it to the dashboard counts.
func Summary(ctx context.Context, store db.RouteStore, logger *zap.Logger) (*dashboard.Summary, error) {
	routes, err := store.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	s := dashboard.Summarize(routes)
	logger.Debug("Dashboard summary computed",
		zap.Int("total_schedules", s.TotalSchedules),
		zap.Int("unique_routes", s.UniqueRouteCount))
	return &s, nil
}

// UpcomingCollections expands a route's frequency into its next collection
// dates starting from now.
func UpcomingCollections(ctx context.Context, store db.RouteStore, logger *zap.Logger, routeID string, from time.Time, count int) ([]time.Time, error) {
	route, err := store.GetRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load route: %w", err)
	}

	dates, err := schedule.Upcoming(*route, from, count)
	if err != nil {
		return nil, fmt.Errorf("failed to expand frequency %q: %w", route.Frequency, err)
	}

	logger.Debug("Upcoming collections expanded",
		zap.String("route_id", routeID),
		zap.Int("count", len(dates)))
	return dates, nil
}
