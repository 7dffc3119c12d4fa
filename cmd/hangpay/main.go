package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"hangpay/internal/api/router"
	"hangpay/internal/config"
	"hangpay/internal/mailer"
	"hangpay/internal/provider/flutterwave"
	"hangpay/internal/service/authz"
	"hangpay/internal/service/healthcheck"
	"hangpay/internal/service/outbox"
	reconciler "hangpay/internal/service/transfer-reconciler"
	"hangpay/internal/service/wallets"
	"hangpay/internal/service/withdrawals"
	"hangpay/internal/storage/postgresql"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case slog.LevelDebug.String():
		logLevel = slog.LevelDebug
	case slog.LevelWarn.String():
		logLevel = slog.LevelWarn
	case slog.LevelError.String():
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cfg.LogLevel == "debug" {
		slog.Debug("running with config")
		fmt.Println(cfg.String())
	}

	slog.Info("starting app")

	st, err := postgresql.NewRepositories(ctx, cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to initialize storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer st.Close()

	provider := flutterwave.NewClient(
		cfg.FlutterwaveAddress,
		cfg.FlutterwaveSecretKey,
	)
	mailClient := mailer.NewClient(cfg.MailServiceAddress)

	authzSvc := authz.NewService(st.Events, st.Groups)
	walletsSvc := wallets.NewService(st.Wallets, authzSvc, st.Outbox)
	withdrawalsSvc := withdrawals.NewService(
		walletsSvc,
		provider,
		st.Withdrawals,
		st.BankAccounts,
		st.Outbox,
	)
	healthSvc := healthcheck.NewHealthcheckService(st.Health)

	apiRouter := router.NewRouter(router.Deps{
		JWTSecret:          cfg.JWTSecret,
		WebhookSecretHash:  cfg.FlutterwaveWebhookHash,
		HealthService:      healthSvc,
		WalletsService:     walletsSvc,
		WithdrawalsService: withdrawalsSvc,
		AdminService:       walletsSvc,
		Finalizer:          withdrawalsSvc,
	})

	wg := &sync.WaitGroup{}
	var exitCode int32

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting api", slog.String("address", cfg.RunAddress))
		if err := apiRouter.Run(ctx, cfg.RunAddress); err != nil {
			slog.Error("api failed", slog.Any("error", err))
			atomic.StoreInt32(&exitCode, 1)
			cancel()
			return
		}
		slog.Info("api shut down gracefully")
	}()

	rec := reconciler.NewReconciler(
		cfg.ReconcileInterval,
		st.Withdrawals,
		provider,
		withdrawalsSvc,
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info(
			"starting reconciler",
			slog.Duration("interval", cfg.ReconcileInterval),
		)
		if err := rec.Run(ctx); err != nil {
			slog.Error("reconciler failed", slog.Any("error", err))
			atomic.StoreInt32(&exitCode, 1)
			cancel()
			return
		}
		slog.Info("reconciler shut down gracefully")
	}()

	dispatcher := outbox.NewDispatcher(cfg.OutboxInterval, st.Outbox, mailClient)

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info(
			"starting outbox dispatcher",
			slog.Duration("interval", cfg.OutboxInterval),
		)
		if err := dispatcher.Run(ctx); err != nil {
			slog.Error("outbox dispatcher failed", slog.Any("error", err))
			atomic.StoreInt32(&exitCode, 1)
			cancel()
			return
		}
		slog.Info("outbox dispatcher shut down gracefully")
	}()

	wg.Wait()

	ec := int(atomic.LoadInt32(&exitCode))
	if ec != 0 {
		slog.Error("app failed", slog.Int("exit_code", ec))
		os.Exit(ec)
	}

	slog.Info("app shut down successfully")
}
