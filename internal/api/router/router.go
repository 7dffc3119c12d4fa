package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"hangpay/internal/api/handlers"
	"hangpay/internal/api/middleware"
)

const apiShutdownTimeout = 5 * time.Second

type Deps struct {
	JWTSecret         string
	WebhookSecretHash string

	HealthService      handlers.HealthService
	WalletsService     handlers.WalletsService
	WithdrawalsService handlers.WithdrawalsService
	AdminService       handlers.AdminService
	Finalizer          handlers.TransferFinalizer
}

type Router struct {
	router http.Handler
}

func NewRouter(deps Deps) *Router {
	mux := http.NewServeMux()

	authed := middleware.RequireJWT(deps.JWTSecret)
	admin := middleware.RequireAdmin()

	mux.Handle("GET /health", handlers.NewHealthHandler(deps.HealthService))

	mux.Handle(
		"GET /api/wallets/{ownerType}/{ownerID}/balance",
		authed(handlers.NewWalletBalanceHandler(deps.WalletsService)),
	)
	mux.Handle(
		"GET /api/wallets/{ownerType}/{ownerID}/entries",
		authed(handlers.NewWalletEntriesHandler(deps.WalletsService)),
	)

	mux.Handle(
		"POST /api/withdrawals",
		authed(handlers.NewWithdrawalRequestHandler(deps.WithdrawalsService)),
	)
	mux.Handle(
		"GET /api/withdrawals",
		authed(handlers.NewWithdrawalsListHandler(deps.WithdrawalsService)),
	)

	mux.Handle(
		"POST /api/admin/wallets/adjust",
		authed(admin(handlers.NewAdjustmentHandler(deps.AdminService))),
	)
	mux.Handle(
		"POST /api/admin/ticket-sales",
		authed(admin(handlers.NewTicketSaleHandler(deps.AdminService))),
	)
	mux.Handle(
		"POST /api/admin/ticket-refunds",
		authed(admin(handlers.NewTicketRefundHandler(deps.AdminService))),
	)

	mux.Handle(
		"POST /api/webhooks/flutterwave",
		handlers.NewFlutterwaveWebhookHandler(
			deps.Finalizer,
			deps.WebhookSecretHash,
		),
	)

	return &Router{
		router: middleware.Log()(mux),
	}
}

func (r *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: r.router,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.Any("error", err))
			errChan <- err
			return
		}
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error(
				"failed to shutdown server gracefully",
				slog.Any("error", err),
			)
			return err
		}
	}

	return nil
}
