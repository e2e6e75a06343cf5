package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fundexio/fundexio/internal/http/advisory"
	"github.com/fundexio/fundexio/internal/http/auth"
	"github.com/fundexio/fundexio/internal/http/dashboard"
	"github.com/fundexio/fundexio/internal/http/investment"
	"github.com/fundexio/fundexio/internal/http/loan"
	"github.com/fundexio/fundexio/internal/http/notification"
	"github.com/fundexio/fundexio/internal/http/proposal"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	AccessTokenSecret string
	CORSOrigins       []string
	Timeout           time.Duration
}

func New(
	opts Options,
	db Pinger,
	proposalsV1 *proposal.Handler,
	investmentsV1 *investment.Handler,
	notificationsV1 *notification.Handler,
	dashboardV1 *dashboard.Handler,
	loansV1 *loan.Handler,
	advisoryV1 *advisory.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthz(db))
	router.Handle("/metrics", promhttp.Handler())

	authenticate := auth.Authenticate(opts.AccessTokenSecret)

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Route("/proposals", func(r chi.Router) {
			proposalsV1.Routes(r, authenticate)
		})

		r.Route("/investments", func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.AllowContentType("application/json"))
			investmentsV1.Routes(r)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(authenticate)
			notificationsV1.Routes(r)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(authenticate)
			dashboardV1.Routes(r)
		})

		r.Route("/loans", func(r chi.Router) {
			loansV1.Routes(r, authenticate)
		})

		r.Route("/advisory", func(r chi.Router) {
			advisoryV1.Routes(r, authenticate)
		})
	})

	return router
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
