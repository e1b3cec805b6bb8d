package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/gwaste/gwaste/pkg/db"
)

var weekdays = map[string]rrule.Weekday{
	"Sunday":    rrule.SU,
	"Monday":    rrule.MO,
	"Tuesday":   rrule.TU,
	"Wednesday": rrule.WE,
	"Thursday":  rrule.TH,
	"Friday":    rrule.FR,
	"Saturday":  rrule.SA,
}

// Upcoming expands a route's frequency into its next count collection dates
// on or after from. "Daily" runs every day except the crew's day off;
// "Every <weekday>" runs weekly on that day.
func Upcoming(route db.Route, from time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	opt := rrule.ROption{
		Dtstart: start,
		Count:   count,
	}

	switch {
	case route.Frequency == "Daily":
		opt.Freq = rrule.DAILY
		days := make([]rrule.Weekday, 0, 6)
		for name, day := range weekdays {
			if name != route.DayOff {
				days = append(days, day)
			}
		}
		opt.Byweekday = days
	case strings.HasPrefix(route.Frequency, "Every "):
		day, ok := weekdays[strings.TrimPrefix(route.Frequency, "Every ")]
		if !ok {
			return nil, fmt.Errorf("unknown frequency %q", route.Frequency)
		}
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{day}
	default:
		return nil, fmt.Errorf("unknown frequency %q", route.Frequency)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	return rule.All(), nil
}
