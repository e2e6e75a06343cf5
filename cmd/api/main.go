package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/advisory"
	advisoryStore "github.com/fundexio/fundexio/internal/advisory/store"
	"github.com/fundexio/fundexio/internal/config"
	"github.com/fundexio/fundexio/internal/dashboard"
	"github.com/fundexio/fundexio/internal/database"
	fundexioHttp "github.com/fundexio/fundexio/internal/http"
	advisoryHandler "github.com/fundexio/fundexio/internal/http/advisory"
	dashboardHandler "github.com/fundexio/fundexio/internal/http/dashboard"
	investmentHandler "github.com/fundexio/fundexio/internal/http/investment"
	loanHandler "github.com/fundexio/fundexio/internal/http/loan"
	notificationHandler "github.com/fundexio/fundexio/internal/http/notification"
	proposalHandler "github.com/fundexio/fundexio/internal/http/proposal"
	"github.com/fundexio/fundexio/internal/investment"
	investmentStore "github.com/fundexio/fundexio/internal/investment/store"
	"github.com/fundexio/fundexio/internal/loan"
	loanStore "github.com/fundexio/fundexio/internal/loan/store"
	"github.com/fundexio/fundexio/internal/notification"
	notificationStore "github.com/fundexio/fundexio/internal/notification/store"
	"github.com/fundexio/fundexio/internal/proposal"
	proposalStore "github.com/fundexio/fundexio/internal/proposal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.LogLevel})).
		With("app", cfg.App.Name))

	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		proposalService     = proposal.NewService(proposalStore.New(db))
		notificationService = notification.NewService(notificationStore.New(db))
		investmentService   = investment.NewService(investmentStore.New(db),
			investment.WithMaxAttempts(cfg.Ledger.MaxAttempts))
		loanService      = loan.NewService(loanStore.New(db))
		advisoryService  = advisory.NewService(advisoryStore.New(db))
		dashboardService = dashboard.NewService(proposalService, investmentService, notificationService,
			loanService, advisoryService)
	)

	var (
		proposalH     = proposalHandler.NewHandler(proposalService)
		investmentH   = investmentHandler.NewHandler(investmentService, cfg.Ledger.MinInvestment)
		notificationH = notificationHandler.NewHandler(notificationService)
		dashboardH    = dashboardHandler.NewHandler(dashboardService)
		loanH         = loanHandler.NewHandler(loanService)
		advisoryH     = advisoryHandler.NewHandler(advisoryService)
	)

	router := fundexioHttp.New(fundexioHttp.Options{
		AccessTokenSecret: cfg.Auth.AccessTokenSecret,
		CORSOrigins:       cfg.CORS.Origins,
		Timeout:           cfg.Server.Timeout,
	}, db, proposalH, investmentH, notificationH, dashboardH, loanH, advisoryH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
