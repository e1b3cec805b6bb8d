// Package dashboard reduces the stored schedules into the summary counts
// shown on the admin landing page.
package dashboard

import (
	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/core/roster"
	"github.com/gwaste/gwaste/pkg/db"
)

// Summary holds the aggregate counts for the dashboard cards.
type Summary struct {
	// TotalSchedules counts every stored schedule document, so a route
	// with both a Malata and a Dili Malata entry counts twice.
	TotalSchedules int `json:"totalSchedules"`
	// UniqueRouteCount counts distinct route numbers.
	UniqueRouteCount int `json:"uniqueRouteCount"`
	// UniqueDriverCount counts distinct drivers by normalized name across
	// the full list.
	UniqueDriverCount int `json:"uniqueDriverCount"`
	// TotalCrew sums crew sizes over one schedule per route number: the
	// first-encountered schedule wins, so a second entry for the same
	// route with a different crew size does not contribute.
	TotalCrew int `json:"totalCrew"`
	// CountByType counts schedules per waste type over the full list.
	CountByType map[string]int `json:"countByType"`
}

// Summarize reduces routes into the dashboard summary. Input order matters
// for TotalCrew: deduplication by route number keeps the first record seen.
func Summarize(routes []db.Route) Summary {
	s := Summary{
		TotalSchedules: len(routes),
		CountByType:    make(map[string]int, len(model.WasteTypes)),
	}
	for _, t := range model.WasteTypes {
		s.CountByType[string(t)] = 0
	}

	firstPerRoute := make(map[string]db.Route, len(routes))
	order := make([]string, 0, len(routes))
	drivers := make(map[string]struct{}, len(routes))

	for _, r := range routes {
		if _, seen := firstPerRoute[r.Route]; !seen {
			firstPerRoute[r.Route] = r
			order = append(order, r.Route)
		}
		if key := roster.NormalizeFull(r.Driver); key != "" {
			drivers[key] = struct{}{}
		}
		if _, known := s.CountByType[r.Type]; known {
			s.CountByType[r.Type]++
		}
	}

	s.UniqueRouteCount = len(firstPerRoute)
	s.UniqueDriverCount = len(drivers)
	for _, number := range order {
		s.TotalCrew += len(firstPerRoute[number].Crew)
	}

	return s
}
