package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gwaste/gwaste/pkg/db"
)

func TestPointAtStep_SweepsBothDirections(t *testing.T) {
	coords := []db.Coordinate{
		{Latitude: 1, Longitude: 1},
		{Latitude: 2, Longitude: 2},
		{Latitude: 3, Longitude: 3},
	}

	// Forward to the end, back to the start, forward again.
	expected := []float64{1, 2, 3, 2, 1, 2, 3, 2, 1}
	for step, lat := range expected {
		assert.Equal(t, lat, pointAtStep(coords, step).Latitude, "step %d", step)
	}
}

func TestPointAtStep_TwoPoints(t *testing.T) {
	coords := []db.Coordinate{
		{Latitude: 1, Longitude: 1},
		{Latitude: 2, Longitude: 2},
	}

	assert.Equal(t, 1.0, pointAtStep(coords, 0).Latitude)
	assert.Equal(t, 2.0, pointAtStep(coords, 1).Latitude)
	assert.Equal(t, 1.0, pointAtStep(coords, 2).Latitude)
	assert.Equal(t, 2.0, pointAtStep(coords, 3).Latitude)
}

func TestPointAtStep_SinglePoint(t *testing.T) {
	coords := []db.Coordinate{{Latitude: 5, Longitude: 5}}
	for step := 0; step < 4; step++ {
		assert.Equal(t, 5.0, pointAtStep(coords, step).Latitude)
	}
}
