// Package schedule decides whether the bedtime check applies on a given day.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultEnforcementDays are Monday through Friday mornings, i.e. Sunday
// through Thursday nights.
var DefaultEnforcementDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// ShouldEnforce reports whether weekday is one of the enforcement days.
func ShouldEnforce(weekday time.Weekday, days []time.Weekday) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// ParseWeekdays parses a comma separated list such as "1,2,3,4,5"
// (0=Sunday..6=Saturday). Duplicates are dropped, order is kept.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("schedule: invalid weekday %q", part)
		}
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("schedule: weekday %d out of range 0-6", n)
		}
		d := time.Weekday(n)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, nil
}
