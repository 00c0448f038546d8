package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SleepRecord is one nightly entry from the Oura sleep collection.
type SleepRecord struct {
	ID                 string    `json:"id"`
	Day                string    `json:"day"` // "2024-01-15"
	Type               string    `json:"type,omitempty"`
	BedtimeStart       time.Time `json:"bedtime_start"`
	BedtimeEnd         time.Time `json:"bedtime_end"`
	TotalSleepDuration int       `json:"total_sleep_duration,omitempty"` // seconds
}

// PenaltyEvent exists only for the duration of one run.
type PenaltyEvent struct {
	BedtimeStr string
	Target     string
	Amount     decimal.Decimal
	Payee      string
	PaymentURL string
}

type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeNoData    Outcome = "no_data"
	OutcomeOnTime    Outcome = "on_time"
	OutcomePenalized Outcome = "penalized"
)

// Result summarizes a single check run.
type Result struct {
	RunID      string
	Outcome    Outcome
	Bedtime    time.Time
	BedtimeStr string
	MessageID  string
}

// BedtimeTarget is the local time of day after which a bedtime counts as late.
// It must fall between midnight and noon.
type BedtimeTarget struct {
	Hour   int `validate:"gte=0,lt=12"`
	Minute int `validate:"gte=0,lte=59"`
}

// ParseBedtimeTarget accepts "HH:MM" in 24-hour form, from 00:00 to 11:59.
func ParseBedtimeTarget(s string) (BedtimeTarget, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return BedtimeTarget{}, fmt.Errorf("bedtime target %q must be HH:MM: %w", s, err)
	}
	if t.Hour() >= 12 {
		return BedtimeTarget{}, fmt.Errorf("bedtime target %q must be after midnight and before noon", s)
	}
	return BedtimeTarget{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (b BedtimeTarget) String() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

// Display renders the target for humans, e.g. "12:30 AM".
func (b BedtimeTarget) Display() string {
	return time.Date(2000, 1, 1, b.Hour, b.Minute, 0, 0, time.UTC).Format("3:04 PM")
}
