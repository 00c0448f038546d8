// Command bedtime checks last night's Oura bedtime and emails a Venmo
// penalty request when it was late. Run it once each morning from cron.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/brendanm12345/bedtime-bully/internal"
	"github.com/brendanm12345/bedtime-bully/internal/config"
	"github.com/brendanm12345/bedtime-bully/internal/notify"
	"github.com/brendanm12345/bedtime-bully/internal/oura"
	"github.com/brendanm12345/bedtime-bully/internal/service"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "bedtime",
		Short:         "Charge a penalty for going to bed after the target bedtime",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bedtime: %v\n", err)
		return err
	}

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bedtime: %v\n", err)
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := oura.NewClient(cfg.OuraBaseURL, cfg.OuraToken, cfg.Location, cfg.OuraTimeout, logger)
	sender := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.MyEmail,
		Password: cfg.EmailAppPassword,
		Timeout:  cfg.SMTPTimeout,
	})
	notifier := notify.NewNotifier(sender, cfg.MyEmail, cfg.MyEmail, cfg.FriendEmail, logger)
	runner := service.NewRunner(cfg, client, notifier, logger)

	res, err := runner.Run(ctx, time.Now())
	if err != nil {
		return err
	}
	logger.With("run_id", res.RunID).Debugf("outcome=%s", res.Outcome)
	return nil
}
