package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrParameterNotSet = errors.New("config parameter is not set")
)

type Config struct {
	LogLevel    string
	RunAddress  string
	DatabaseURI string
	JWTSecret   string `json:"-"`

	FlutterwaveAddress     string
	FlutterwaveSecretKey   string `json:"-"`
	FlutterwaveWebhookHash string `json:"-"`

	MailServiceAddress string

	ReconcileInterval time.Duration
	OutboxInterval    time.Duration
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RUN_ADDRESS", ":8080")
	v.SetDefault("RECONCILE_INTERVAL", "30s")
	v.SetDefault("OUTBOX_INTERVAL", "5s")

	cfg := &Config{
		LogLevel:    v.GetString("LOG_LEVEL"),
		RunAddress:  v.GetString("RUN_ADDRESS"),
		DatabaseURI: v.GetString("DATABASE_URI"),
		JWTSecret:   v.GetString("JWT_SECRET"),

		FlutterwaveAddress:     v.GetString("FLUTTERWAVE_ADDRESS"),
		FlutterwaveSecretKey:   v.GetString("FLUTTERWAVE_SECRET_KEY"),
		FlutterwaveWebhookHash: v.GetString("FLUTTERWAVE_WEBHOOK_HASH"),

		MailServiceAddress: v.GetString("MAIL_SERVICE_ADDRESS"),

		ReconcileInterval: v.GetDuration("RECONCILE_INTERVAL"),
		OutboxInterval:    v.GetDuration("OUTBOX_INTERVAL"),
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI error %w", ErrParameterNotSet)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("no jwt secret set %w", ErrParameterNotSet)
	}

	if cfg.FlutterwaveAddress == "" || cfg.FlutterwaveSecretKey == "" {
		return nil, fmt.Errorf("flutterwave settings error %w", ErrParameterNotSet)
	}

	if cfg.FlutterwaveWebhookHash == "" {
		return nil, fmt.Errorf("flutterwave webhook hash error %w", ErrParameterNotSet)
	}

	if cfg.MailServiceAddress == "" {
		return nil, fmt.Errorf("mail service address error %w", ErrParameterNotSet)
	}

	return cfg, nil
}

func (c *Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	return string(b)
}
