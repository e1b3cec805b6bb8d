package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gwaste/gwaste/pkg/db"
)

// InsertPosition records one GPS ping. An empty ID is filled in with a
// fresh UUID; RecordedAt defaults to now.
func (d *DB) InsertPosition(ctx context.Context, p *db.TruckPosition) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now().UTC()
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO truck_position (id, route_id, latitude, longitude, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.RouteID, p.Latitude, p.Longitude, p.RecordedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert truck position: %w", err)
	}
	return nil
}

// LatestPositions retrieves the most recent ping per route
func (d *DB) LatestPositions(ctx context.Context) ([]db.TruckPosition, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT DISTINCT ON (route_id) id, route_id, latitude, longitude, recorded_at
		FROM truck_position
		ORDER BY route_id, recorded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest positions: %w", err)
	}
	defer rows.Close()

	var positions []db.TruckPosition
	for rows.Next() {
		var p db.TruckPosition
		if err := rows.Scan(&p.ID, &p.RouteID, &p.Latitude, &p.Longitude, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan truck position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating truck positions: %w", err)
	}

	return positions, nil
}

// PositionsSince retrieves a route's pings newer than the given instant,
// oldest first
func (d *DB) PositionsSince(ctx context.Context, routeID string, since time.Time) ([]db.TruckPosition, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, route_id, latitude, longitude, recorded_at
		FROM truck_position
		WHERE route_id = $1 AND recorded_at > $2
		ORDER BY recorded_at ASC
	`, routeID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query positions since: %w", err)
	}
	defer rows.Close()

	var positions []db.TruckPosition
	for rows.Next() {
		var p db.TruckPosition
		if err := rows.Scan(&p.ID, &p.RouteID, &p.Latitude, &p.Longitude, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan truck position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating truck positions: %w", err)
	}

	return positions, nil
}
