package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brendanm12345/bedtime-bully/internal"
	"github.com/brendanm12345/bedtime-bully/internal/config"
	"github.com/brendanm12345/bedtime-bully/internal/notify"
	"github.com/brendanm12345/bedtime-bully/internal/schedule"
)

type SleepProvider interface {
	FetchLastNightSleep(ctx context.Context, now time.Time) (*internal.SleepRecord, error)
}

type PenaltyNotifier interface {
	Notify(ctx context.Context, event internal.PenaltyEvent) (string, error)
}

// Runner performs one bedtime check: gate, fetch, classify, notify.
type Runner struct {
	cfg      *config.Config
	sleep    SleepProvider
	notifier PenaltyNotifier
	logger   internal.Logger
}

func NewRunner(cfg *config.Config, sleep SleepProvider, notifier PenaltyNotifier, logger internal.Logger) *Runner {
	return &Runner{cfg: cfg, sleep: sleep, notifier: notifier, logger: logger}
}

// Run returns an error only for provider or mail failures. Skipped days and
// missing data are successful outcomes.
func (r *Runner) Run(ctx context.Context, now time.Time) (internal.Result, error) {
	res := internal.Result{RunID: uuid.NewString()}
	log := r.logger.With("run_id", res.RunID)

	weekday := now.In(r.cfg.Location).Weekday()
	if !schedule.ShouldEnforce(weekday, r.cfg.EnforcementDays) {
		log.Infof("%s is not an enforcement morning - no enforcement today!", weekday)
		res.Outcome = internal.OutcomeSkipped
		return res, nil
	}

	log.Info("Checking last night's bedtime...")
	rec, err := r.sleep.FetchLastNightSleep(ctx, now)
	if err != nil {
		return res, err
	}
	if rec == nil {
		log.Info("No sleep data found for last night")
		res.Outcome = internal.OutcomeNoData
		return res, nil
	}

	res.Bedtime = rec.BedtimeStart
	res.BedtimeStr = FormatBedtime(rec.BedtimeStart, r.cfg.Location)
	log.Infof("Bedtime was: %s", res.BedtimeStr)

	if !IsBedtimeLate(rec.BedtimeStart, r.cfg.Target, r.cfg.Location) {
		log.Info("On time! No penalty.")
		res.Outcome = internal.OutcomeOnTime
		return res, nil
	}

	log.Info("LATE! Sending penalty email...")
	event := internal.PenaltyEvent{
		BedtimeStr: res.BedtimeStr,
		Target:     r.cfg.Target.Display(),
		Amount:     r.cfg.PenaltyAmount,
		Payee:      r.cfg.VenmoUsername,
		PaymentURL: notify.PaymentURL(r.cfg.VenmoUsername, r.cfg.PenaltyAmount, notify.PenaltyNote(res.BedtimeStr)),
	}
	id, err := r.notifier.Notify(ctx, event)
	if err != nil {
		return res, err
	}

	res.MessageID = id
	res.Outcome = internal.OutcomePenalized
	log.Infof("Email sent: %s", id)
	log.Info("Penalty email sent to you and your friend!")
	return res, nil
}
