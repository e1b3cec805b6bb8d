package db

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a document with the given ID does not exist.
var ErrNotFound = errors.New("record not found")

// CollectorStore defines collector roster operations against the document store.
type CollectorStore interface {
	// ListCollectors returns all collectors ordered by driver name.
	ListCollectors(ctx context.Context) ([]Collector, error)
	GetCollector(ctx context.Context, id string) (*Collector, error)
	CreateCollector(ctx context.Context, c *Collector) (string, error)
	UpdateCollector(ctx context.Context, id string, c *Collector) error
	DeleteCollector(ctx context.Context, id string) error
}

// RouteStore defines schedule operations against the document store.
type RouteStore interface {
	// ListRoutes returns all routes ordered by route number.
	ListRoutes(ctx context.Context) ([]Route, error)
	GetRoute(ctx context.Context, id string) (*Route, error)
	CreateRoute(ctx context.Context, r *Route) (string, error)
	UpdateRoute(ctx context.Context, id string, r *Route) error
	// DeleteRoutesForDriver removes every route assigned to the driver and
	// returns how many were removed.
	DeleteRoutesForDriver(ctx context.Context, driver string) (int, error)
}

// ReportStore defines citizen report operations against the document store.
type ReportStore interface {
	// ListReports returns all reports ordered by status.
	ListReports(ctx context.Context) ([]Report, error)
	UpdateReportStatus(ctx context.Context, id, status string) error
}

// TruckStore defines truck telemetry operations.
type TruckStore interface {
	InsertPosition(ctx context.Context, p *TruckPosition) error
	// LatestPositions returns the most recent ping per route.
	LatestPositions(ctx context.Context) ([]TruckPosition, error)
	PositionsSince(ctx context.Context, routeID string, since time.Time) ([]TruckPosition, error)
}
