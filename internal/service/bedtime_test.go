package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brendanm12345/bedtime-bully/internal"
)

var pacific = time.FixedZone("PST", -8*60*60)

func TestIsBedtimeLate_Table(t *testing.T) {
	target := internal.BedtimeTarget{Hour: 0, Minute: 30}
	cases := []struct {
		clock string
		late  bool
	}{
		{"23:59", false},
		{"00:00", false},
		{"00:30", false},
		{"00:31", true},
		{"05:00", true},
		{"11:59", true},
		{"12:00", false},
		{"18:00", false},
	}
	for _, tc := range cases {
		clock, err := time.Parse("15:04", tc.clock)
		assert.NoError(t, err)
		bedtime := time.Date(2024, 1, 15, clock.Hour(), clock.Minute(), 0, 0, pacific)
		assert.Equal(t, tc.late, IsBedtimeLate(bedtime, target, pacific), tc.clock)
	}
}

func TestIsBedtimeLate_ConvertsToLocalZone(t *testing.T) {
	target := internal.BedtimeTarget{Hour: 0, Minute: 30}
	// 09:15 UTC is 01:15 in Pacific time.
	bedtime := time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC)
	assert.True(t, IsBedtimeLate(bedtime, target, pacific))
	// The same instant is 19:15 in UTC+10.
	assert.False(t, IsBedtimeLate(bedtime, target, time.FixedZone("AEST", 10*60*60)))
}

func TestIsBedtimeLate_NonMidnightTarget(t *testing.T) {
	target := internal.BedtimeTarget{Hour: 1, Minute: 0}
	at := func(h, m int) time.Time { return time.Date(2024, 1, 15, h, m, 0, 0, pacific) }

	assert.False(t, IsBedtimeLate(at(0, 45), target, pacific))
	assert.False(t, IsBedtimeLate(at(1, 0), target, pacific))
	assert.True(t, IsBedtimeLate(at(1, 1), target, pacific))
	assert.True(t, IsBedtimeLate(at(3, 0), target, pacific))
}

func TestFormatBedtime(t *testing.T) {
	bedtime, err := time.Parse(time.RFC3339, "2024-01-15T01:15:00-08:00")
	assert.NoError(t, err)
	assert.Equal(t, "01:15:00 AM", FormatBedtime(bedtime, pacific))
	assert.Equal(t, "09:15:00 AM", FormatBedtime(bedtime, time.UTC))
}
