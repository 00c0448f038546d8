package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/brendanm12345/bedtime-bully/internal"
	"github.com/brendanm12345/bedtime-bully/internal/schedule"
)

const (
	DefaultOuraBaseURL = "https://api.ouraring.com"
	DefaultSMTPHost    = "smtp.gmail.com"
	DefaultSMTPPort    = 587
	defaultTimeout     = 30 * time.Second
)

var validate = validator.New()

type Config struct {
	Env      string `validate:"oneof=development staging production"`
	LogLevel string `validate:"required"`

	OuraToken   string        `validate:"required"`
	OuraBaseURL string        `validate:"required,url"`
	OuraTimeout time.Duration `validate:"gt=0"`

	VenmoUsername    string        `validate:"required"`
	MyEmail          string        `validate:"required,email"`
	FriendEmail      string        `validate:"required,email"`
	EmailAppPassword string        `validate:"required"`
	SMTPHost         string        `validate:"required"`
	SMTPPort         int           `validate:"gte=1,lte=65535"`
	SMTPTimeout      time.Duration `validate:"gt=0"`

	Target          internal.BedtimeTarget
	PenaltyAmount   decimal.Decimal `validate:"-"`
	EnforcementDays []time.Weekday  `validate:"dive,gte=0,lte=6"`
	Location        *time.Location  `validate:"-"`
}

// Load reads an optional .env file and then builds the config from the
// process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, internal.NewAppError(internal.KindConfig, "load .env", err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:              get("APP_ENV", "production"),
		LogLevel:         get("LOG_LEVEL", "info"),
		OuraToken:        getenv("OURA_TOKEN"),
		OuraBaseURL:      get("OURA_API_URL", DefaultOuraBaseURL),
		VenmoUsername:    getenv("FRIEND_VENMO_USERNAME"),
		MyEmail:          getenv("MY_EMAIL"),
		FriendEmail:      getenv("FRIEND_EMAIL"),
		EmailAppPassword: getenv("EMAIL_APP_PASSWORD"),
		SMTPHost:         get("SMTP_HOST", DefaultSMTPHost),
	}

	var errs []error
	var err error
	if cfg.OuraTimeout, err = time.ParseDuration(get("OURA_TIMEOUT", defaultTimeout.String())); err != nil {
		errs = append(errs, fmt.Errorf("OURA_TIMEOUT: %w", err))
	}
	if cfg.SMTPTimeout, err = time.ParseDuration(get("SMTP_TIMEOUT", defaultTimeout.String())); err != nil {
		errs = append(errs, fmt.Errorf("SMTP_TIMEOUT: %w", err))
	}
	if cfg.SMTPPort, err = strconv.Atoi(get("SMTP_PORT", strconv.Itoa(DefaultSMTPPort))); err != nil {
		errs = append(errs, fmt.Errorf("SMTP_PORT: %w", err))
	}
	if cfg.Target, err = internal.ParseBedtimeTarget(get("BEDTIME_TARGET", "00:30")); err != nil {
		errs = append(errs, fmt.Errorf("BEDTIME_TARGET: %w", err))
	}
	if cfg.PenaltyAmount, err = decimal.NewFromString(get("PENALTY_AMOUNT", "1")); err != nil {
		errs = append(errs, fmt.Errorf("PENALTY_AMOUNT: %w", err))
	}
	if cfg.EnforcementDays, err = schedule.ParseWeekdays(get("ENFORCEMENT_DAYS", "1,2,3,4,5")); err != nil {
		errs = append(errs, fmt.Errorf("ENFORCEMENT_DAYS: %w", err))
	}
	if cfg.Location, err = time.LoadLocation(get("TIMEZONE", "Local")); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	if len(errs) > 0 {
		return nil, internal.NewAppError(internal.KindConfig, "parse environment", errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, internal.NewAppError(internal.KindConfig, "validate", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !c.PenaltyAmount.IsPositive() {
		return errors.New("PENALTY_AMOUNT must be greater than zero")
	}
	if c.Location == nil {
		return errors.New("TIMEZONE must resolve to a location")
	}
	return nil
}
