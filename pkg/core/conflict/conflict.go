// Package conflict decides whether a candidate crew assignment collides with
// the routes already on file. A crew member may be assigned to at most one
// route at a time; the check is advisory only. It runs against the snapshot
// it is handed, with no locking between the read and the caller's write, so
// two admins submitting at once can still both pass.
package conflict

import (
	"fmt"

	"github.com/gwaste/gwaste/pkg/core/roster"
	"github.com/gwaste/gwaste/pkg/db"
)

// Conflict records one crew member found on another route.
type Conflict struct {
	// Name is the candidate name as submitted, not its normalized form.
	Name string `json:"name"`
	// Route is the route number of the colliding route.
	Route string `json:"route"`
	// Driver is the driver of the colliding route.
	Driver string `json:"driver"`
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s (Route %s - %s)", c.Name, c.Route, c.Driver)
}

// FindConflicts reports every candidate name that already appears as the
// driver or a crew member on a route other than excludeRouteID. Comparison is case and
// whitespace insensitive. An empty result means the assignment is clear to
// persist; it is never an error. Pass excludeRouteID when editing so a route
// does not conflict with itself.
func FindConflicts(candidates []string, routes []db.Route, excludeRouteID string) []Conflict {
	conflicts := []Conflict{}
	if len(candidates) == 0 {
		return conflicts
	}

	// Normalized candidate -> submitted spelling, for readable messages.
	wanted := make(map[string]string, len(candidates))
	for _, name := range candidates {
		if key := roster.NormalizeFull(name); key != "" {
			wanted[key] = name
		}
	}

	for _, route := range routes {
		if excludeRouteID != "" && route.ID == excludeRouteID {
			continue
		}
		if submitted, ok := wanted[roster.NormalizeFull(route.Driver)]; ok {
			conflicts = append(conflicts, Conflict{
				Name:   submitted,
				Route:  route.Route,
				Driver: route.Driver,
			})
		}
		for _, member := range route.Crew {
			if submitted, ok := wanted[roster.NormalizeFull(member)]; ok {
				conflicts = append(conflicts, Conflict{
					Name:   submitted,
					Route:  route.Route,
					Driver: route.Driver,
				})
			}
		}
	}

	return conflicts
}
