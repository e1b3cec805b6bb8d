package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gwaste/gwaste/pkg/db"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalSchedules)
	assert.Equal(t, 0, s.UniqueRouteCount)
	assert.Equal(t, 0, s.UniqueDriverCount)
	assert.Equal(t, 0, s.TotalCrew)
	assert.Equal(t, map[string]int{"Malata": 0, "Dili Malata": 0}, s.CountByType)
}

// Deduplication by route number keeps the first record seen, so the first
// schedule's crew size is the one counted even when a later schedule for the
// same route carries a bigger crew. This mirrors the dashboard as shipped.
func TestSummarize_FirstWinsDedup(t *testing.T) {
	routes := []db.Route{
		{Route: "1", Crew: []string{"a", "b"}},
		{Route: "1", Crew: []string{"a", "b", "c"}},
		{Route: "2", Crew: []string{"a"}},
	}
	s := Summarize(routes)
	assert.Equal(t, 3, s.TotalSchedules)
	assert.Equal(t, 2, s.UniqueRouteCount)
	assert.Equal(t, 3, s.TotalCrew) // 2 from the first "1" record, 1 from "2"
}

func TestSummarize_DriversNormalized(t *testing.T) {
	routes := []db.Route{
		{Route: "1", Driver: "Mario Alagase"},
		{Route: "2", Driver: "  MARIO   ALAGASE "},
		{Route: "3", Driver: "Rey Owatan"},
		{Route: "4", Driver: ""},
	}
	s := Summarize(routes)
	assert.Equal(t, 2, s.UniqueDriverCount)
}

func TestSummarize_CountByType(t *testing.T) {
	routes := []db.Route{
		{Route: "1", Type: "Malata"},
		{Route: "1", Type: "Dili Malata"},
		{Route: "2", Type: "Dili Malata"},
		{Route: "3", Type: "Compost"}, // unknown types are not counted
	}
	s := Summarize(routes)
	assert.Equal(t, 1, s.CountByType["Malata"])
	assert.Equal(t, 2, s.CountByType["Dili Malata"])
	assert.Len(t, s.CountByType, 2)

	// Type counts run over the full list, not the deduplicated one.
	assert.Equal(t, 4, s.TotalSchedules)
	assert.Equal(t, 3, s.UniqueRouteCount)
}
