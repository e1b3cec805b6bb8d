package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/db"
)

func validForm() schedule.Form {
	return schedule.Form{
		Route:     "1",
		Driver:    "Mario Alagase",
		Crew:      []string{"Ricky Francisco", ""},
		Areas:     []string{"Gairan"},
		Time:      "07:00",
		EndTime:   "15:00",
		Type:      "Dili Malata",
		Frequency: "Daily",
		DayOff:    "Sunday",
	}
}

func TestSaveRoute_Create(t *testing.T) {
	mock := &mockRouteStore{}
	logger := zap.NewNop()

	route, err := SaveRoute(context.Background(), mock, logger, validForm(), "")
	require.NoError(t, err)
	require.NotNil(t, route)

	assert.Equal(t, "route-1", route.ID)
	assert.Equal(t, "Mario Alagase", route.Driver)
	// Blank crew entries are dropped before persistence.
	assert.Equal(t, []string{"Ricky Francisco"}, route.Crew)
	// Route 1 takes the first palette color.
	assert.Equal(t, model.RouteColors[0], route.Color)

	require.Len(t, mock.created, 1)
	assert.Equal(t, route, mock.created[0])
}

func TestSaveRoute_ValidationError(t *testing.T) {
	mock := &mockRouteStore{}
	logger := zap.NewNop()

	form := validForm()
	form.Route = ""
	form.EndTime = "10:00"

	route, err := SaveRoute(context.Background(), mock, logger, form, "")
	assert.Nil(t, route)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Route number is required", verr.Fields["route"])
	assert.Equal(t, "End time must be in the afternoon", verr.Fields["endTime"])

	assert.Empty(t, mock.created, "the write must never be attempted")
}

func TestSaveRoute_CrewConflict(t *testing.T) {
	mock := &mockRouteStore{
		routes: []db.Route{
			{ID: "r2", Route: "2", Driver: "Rey Owatan", Crew: []string{"Ricky Francisco"}},
		},
	}
	logger := zap.NewNop()

	route, err := SaveRoute(context.Background(), mock, logger, validForm(), "")
	assert.Nil(t, route)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Len(t, cerr.Conflicts, 1)
	assert.Equal(t, "Ricky Francisco", cerr.Conflicts[0].Name)
	assert.Equal(t, "2", cerr.Conflicts[0].Route)
	assert.Equal(t, "Rey Owatan", cerr.Conflicts[0].Driver)

	assert.Empty(t, mock.created)
}

func TestSaveRoute_DriverConflict(t *testing.T) {
	mock := &mockRouteStore{
		routes: []db.Route{
			{ID: "r3", Route: "3", Driver: "Mario Alagase", Crew: []string{"Jun Tautho"}},
		},
	}
	logger := zap.NewNop()

	_, err := SaveRoute(context.Background(), mock, logger, validForm(), "")

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Len(t, cerr.Conflicts, 1)
	assert.Equal(t, "Mario Alagase", cerr.Conflicts[0].Name)
}

func TestSaveRoute_EditExcludesSelf(t *testing.T) {
	mock := &mockRouteStore{
		routes: []db.Route{
			{ID: "r1", Route: "1", Driver: "Mario Alagase", Crew: []string{"Ricky Francisco"}, Color: "#fd7e14"},
		},
	}
	logger := zap.NewNop()

	route, err := SaveRoute(context.Background(), mock, logger, validForm(), "r1")
	require.NoError(t, err)

	// The stored color survives an edit.
	assert.Equal(t, "#fd7e14", route.Color)
	require.Contains(t, mock.updated, "r1")
	assert.Empty(t, mock.created)
}

func TestSaveRoute_SingleCoordinateDuplicated(t *testing.T) {
	mock := &mockRouteStore{}
	logger := zap.NewNop()

	form := validForm()
	form.Coordinates = []db.Coordinate{{Latitude: 11.05, Longitude: 123.98}}

	route, err := SaveRoute(context.Background(), mock, logger, form, "")
	require.NoError(t, err)
	require.Len(t, route.Coordinates, 2)
	assert.Equal(t, route.Coordinates[0], route.Coordinates[1])
}

func TestSaveRoute_ListFailure(t *testing.T) {
	mock := &mockRouteStore{listErr: errors.New("store down")}
	logger := zap.NewNop()

	_, err := SaveRoute(context.Background(), mock, logger, validForm(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list routes")
}

func TestColorForRoute(t *testing.T) {
	assert.Equal(t, model.RouteColors[0], colorForRoute("1"))
	assert.Equal(t, model.RouteColors[4], colorForRoute("5"))

	// Out-of-palette numbers still land on a palette color.
	assert.Contains(t, model.RouteColors, colorForRoute("99"))
	assert.Contains(t, model.RouteColors, colorForRoute("not-a-number"))
}
