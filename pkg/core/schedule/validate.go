// Package schedule validates collection schedule submissions and expands a
// route's frequency into concrete collection dates.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/db"
)

// Form is the serializable schedule submission, exactly as the dashboard
// posts it. Times are 24-hour "HH:MM"; Date, when present, is "YYYY-MM-DD".
type Form struct {
	Route       string          `json:"route"`
	Driver      string          `json:"driver"`
	Crew        []string        `json:"crew"`
	Areas       []string        `json:"areas"`
	Time        string          `json:"time"`
	EndTime     string          `json:"endTime"`
	Type        string          `json:"type"`
	Frequency   string          `json:"frequency"`
	DayOff      string          `json:"dayOff"`
	Date        string          `json:"date,omitempty"`
	Coordinates []db.Coordinate `json:"coordinates,omitempty"`
}

// Errors maps a field name to its validation message. An absent key means
// the field is valid; an empty map means the form can be persisted.
type Errors map[string]string

// noon, in minutes since midnight. Starts before this hour count as morning.
const noonMinutes = 12 * 60

// Validate checks the form against the caller's local clock.
func Validate(form Form) Errors {
	return ValidateAt(form, time.Now())
}

// ValidateAt checks required fields, enumerations, and the time cross-rules.
// Collections that start in the morning must end in the afternoon, and the
// end time must always be strictly after the start. The form is not mutated.
func ValidateAt(form Form, now time.Time) Errors {
	errs := Errors{}

	switch {
	case form.Route == "":
		errs["route"] = "Route number is required"
	case !model.IsRouteNumber(form.Route):
		errs["route"] = "Unknown route number"
	}

	if form.Driver == "" {
		errs["driver"] = "Driver is required"
	}
	if countNonBlank(form.Crew) == 0 {
		errs["crew"] = "At least one crew member"
	}
	if countNonBlank(form.Areas) == 0 {
		errs["areas"] = "At least one area"
	}

	start, startOK := parseClock(form.Time)
	end, endOK := parseClock(form.EndTime)
	switch {
	case form.Time == "":
		errs["time"] = "Collection start time is required"
	case !startOK:
		errs["time"] = "Invalid start time"
	}
	switch {
	case form.EndTime == "":
		errs["endTime"] = "Collection end time is required"
	case !endOK:
		errs["endTime"] = "Invalid end time"
	case startOK && start < noonMinutes && end < noonMinutes:
		errs["endTime"] = "End time must be in the afternoon"
	case startOK && end <= start:
		errs["endTime"] = "End time must be after start time"
	}

	switch {
	case form.Type == "":
		errs["type"] = "Waste type is required"
	case !model.WasteType(form.Type).IsValid():
		errs["type"] = "Unknown waste type"
	}
	switch {
	case form.Frequency == "":
		errs["frequency"] = "Frequency is required"
	case !model.IsFrequency(form.Frequency):
		errs["frequency"] = "Unknown frequency"
	}
	switch {
	case form.DayOff == "":
		errs["dayOff"] = "Day off is required"
	case !model.IsDayOff(form.DayOff):
		errs["dayOff"] = "Unknown day off"
	}

	if form.Date != "" {
		if date, err := time.ParseInLocation("2006-01-02", form.Date, now.Location()); err != nil {
			errs["date"] = "Invalid date"
		} else if beforeToday(date, now) {
			errs["date"] = "Cannot add a schedule for a past date."
		}
	}

	return errs
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func countNonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// beforeToday compares at calendar-day granularity in now's location.
func beforeToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(today)
}

// NonBlank returns the values with blank entries removed, preserving order.
func NonBlank(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
