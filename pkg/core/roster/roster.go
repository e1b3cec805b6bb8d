// Package roster canonicalizes collector names and builds the lookup sets
// used for duplicate detection. Two names refer to the same person iff their
// normalized forms are equal.
package roster

import (
	"strings"

	"github.com/gwaste/gwaste/pkg/db"
)

// Normalize lowercases and trims "first last" for comparison. Runs of
// internal whitespace collapse to a single space, so "  RICKY   Francisco "
// and "Ricky Francisco" normalize to the same key. Empty segments are
// treated as empty strings.
func Normalize(first, last string) string {
	parts := strings.Fields(first)
	parts = append(parts, strings.Fields(last)...)
	return strings.ToLower(strings.Join(parts, " "))
}

// NormalizeFull normalizes an already-joined display name.
func NormalizeFull(name string) string {
	return Normalize(name, "")
}

// MemberName joins a crew member's non-blank name parts with a space,
// matching how the dashboard renders crew entries.
func MemberName(m db.CrewMember) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(m.FirstName) != "" {
		parts = append(parts, strings.TrimSpace(m.FirstName))
	}
	if strings.TrimSpace(m.LastName) != "" {
		parts = append(parts, strings.TrimSpace(m.LastName))
	}
	return strings.Join(parts, " ")
}

// FilterCrew drops crew entries with a blank first or last name. This runs
// before any persistence so half-filled form rows never reach the store.
func FilterCrew(crew []db.CrewMember) []db.CrewMember {
	kept := make([]db.CrewMember, 0, len(crew))
	for _, m := range crew {
		if strings.TrimSpace(m.FirstName) != "" && strings.TrimSpace(m.LastName) != "" {
			kept = append(kept, m)
		}
	}
	return kept
}

// BuildNameSet returns the set of normalized driver and crew names across
// all collectors, used to reject a new collector whose names collide with
// an existing one. The collector with excludeID is skipped so an edit never
// conflicts with itself. Blank names never produce entries.
func BuildNameSet(collectors []db.Collector, excludeID string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, c := range collectors {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		if key := Normalize(c.FirstName, c.LastName); key != "" {
			names[key] = struct{}{}
		}
		for _, m := range c.Crew {
			if key := Normalize(m.FirstName, m.LastName); key != "" {
				names[key] = struct{}{}
			}
		}
	}
	return names
}
