package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/conflict"
	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/db"
)

// SaveRoute validates a schedule submission, checks the crew against every
// other stored route, and creates or updates the schedule. A non-empty
// editID makes this an update of that route.
//
// The conflict check runs against a snapshot of the route list; two
// concurrent saves naming the same collector can both pass.
func SaveRoute(ctx context.Context, store db.RouteStore, logger *zap.Logger, form schedule.Form, editID string) (*db.Route, error) {
	if errs := schedule.Validate(form); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	all, err := store.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	candidates := append(schedule.NonBlank(form.Crew), form.Driver)
	if conflicts := conflict.FindConflicts(candidates, all, editID); len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	route := &db.Route{
		Route:       form.Route,
		Driver:      form.Driver,
		Crew:        schedule.NonBlank(form.Crew),
		Areas:       schedule.NonBlank(form.Areas),
		Time:        form.Time,
		EndTime:     form.EndTime,
		Type:        form.Type,
		Frequency:   form.Frequency,
		DayOff:      form.DayOff,
		Coordinates: fixupCoordinates(form.Coordinates),
	}

	if editID == "" {
		route.Color = colorForRoute(form.Route)
		id, err := store.CreateRoute(ctx, route)
		if err != nil {
			return nil, fmt.Errorf("failed to create route: %w", err)
		}
		route.ID = id
		logger.Info("Schedule created",
			zap.String("id", id),
			zap.String("route", route.Route),
			zap.String("driver", route.Driver))
		return route, nil
	}

	existing, err := store.GetRoute(ctx, editID)
	if err != nil {
		return nil, fmt.Errorf("failed to load route: %w", err)
	}
	route.ID = editID
	route.Color = existing.Color
	if route.Color == "" {
		route.Color = colorForRoute(form.Route)
	}

	if err := store.UpdateRoute(ctx, editID, route); err != nil {
		return nil, fmt.Errorf("failed to update route: %w", err)
	}
	logger.Info("Schedule updated",
		zap.String("id", editID),
		zap.String("route", route.Route),
		zap.String("driver", route.Driver))
	return route, nil
}

// fixupCoordinates duplicates a lone point so the map layer always has a
// drawable segment.
func fixupCoordinates(coords []db.Coordinate) []db.Coordinate {
	if len(coords) == 1 {
		return []db.Coordinate{coords[0], coords[0]}
	}
	return coords
}

// colorForRoute picks the palette entry for the route number, or a random
// palette color when the number falls outside the palette.
func colorForRoute(routeNumber string) string {
	n, err := strconv.Atoi(routeNumber)
	if err == nil && n >= 1 && n <= len(model.RouteColors) {
		return model.RouteColors[n-1]
	}
	return model.RouteColors[rand.Intn(len(model.RouteColors))]
}
