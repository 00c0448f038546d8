package service

import (
	"time"

	"github.com/brendanm12345/bedtime-bully/internal"
)

// BedtimeLayout matches the en-US locale time string, e.g. "01:15:00 AM".
const BedtimeLayout = "03:04:05 PM"

// IsBedtimeLate reports whether bedtime, read as a wall clock time in loc,
// falls after target and before noon. Afternoon and evening bedtimes are
// always on time.
func IsBedtimeLate(bedtime time.Time, target internal.BedtimeTarget, loc *time.Location) bool {
	local := bedtime.In(loc)
	hour, minute := local.Hour(), local.Minute()

	if hour > target.Hour && hour < 12 {
		return true
	}
	if hour == target.Hour && minute > target.Minute {
		return true
	}
	return false
}

func FormatBedtime(bedtime time.Time, loc *time.Location) string {
	return bedtime.In(loc).Format(BedtimeLayout)
}
