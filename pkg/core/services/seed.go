package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/db"
)

// seedSchedules are the starter schedules for a fresh deployment, one per
// collection truck currently in service.
var seedSchedules = []db.Route{
	{
		Route:     "1",
		Driver:    "Mario Alagase",
		Crew:      []string{"Joseph Mahinay", "Ricky Francisco", "Jerry Lumacang"},
		Areas:     []string{"Gairan", "Nailon", "Bungtod"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
		Color:     model.RouteColors[0],
		Coordinates: []db.Coordinate{
			{Latitude: 11.0517, Longitude: 123.9866},
			{Latitude: 11.0601, Longitude: 123.9901},
			{Latitude: 11.0801, Longitude: 123.9957},
		},
	},
	{
		Route:     "2",
		Driver:    "Rey Owatan",
		Crew:      []string{"Nilo Mondido", "Jun Tautho", "Edgar Cornita"},
		Areas:     []string{"Cogon", "Lourdes", "Marangog"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
		Color:     model.RouteColors[1],
		Coordinates: []db.Coordinate{
			{Latitude: 11.0489, Longitude: 124.0003},
			{Latitude: 11.0412, Longitude: 124.0057},
			{Latitude: 11.0355, Longitude: 124.0121},
		},
	},
	{
		Route:     "3",
		Driver:    "Vicente Subingsubing",
		Crew:      []string{"Allan Dayday", "Bernie Sasan", "Rico Ynclino"},
		Areas:     []string{"Taytayan", "Cayang", "Banban"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
		Color:     model.RouteColors[2],
		Coordinates: []db.Coordinate{
			{Latitude: 11.0623, Longitude: 123.9788},
			{Latitude: 11.0688, Longitude: 123.9812},
			{Latitude: 11.0745, Longitude: 123.9869},
		},
	},
	{
		Route:     "4",
		Driver:    "Ricardo Olivar",
		Crew:      []string{"Danilo Ynot", "Marlon Dakay", "Pedro Sinining"},
		Areas:     []string{"Polambato", "Carbon", "Pandan"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
		Color:     model.RouteColors[3],
		Coordinates: []db.Coordinate{
			{Latitude: 11.0311, Longitude: 123.9934},
			{Latitude: 11.0267, Longitude: 123.9988},
			{Latitude: 11.0214, Longitude: 124.0042},
		},
	},
}

// SeedRoutes inserts the starter schedules, skipping route numbers that
// already exist. Returns how many schedules were created.
func SeedRoutes(ctx context.Context, store db.RouteStore, logger *zap.Logger) (int, error) {
	existing, err := store.ListRoutes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list routes: %w", err)
	}

	taken := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		taken[r.Route] = struct{}{}
	}

	created := 0
	for i := range seedSchedules {
		route := seedSchedules[i]
		if _, ok := taken[route.Route]; ok {
			logger.Debug("Route already present, skipping", zap.String("route", route.Route))
			continue
		}
		id, err := store.CreateRoute(ctx, &route)
		if err != nil {
			return created, fmt.Errorf("failed to seed route %s: %w", route.Route, err)
		}
		logger.Info("Seeded schedule",
			zap.String("id", id),
			zap.String("route", route.Route),
			zap.String("driver", route.Driver))
		created++
	}

	return created, nil
}
