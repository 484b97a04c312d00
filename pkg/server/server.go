package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/handlers/analytics"
	salesatlasmiddleware "github.com/bo-tools/sales-atlas/pkg/server/middleware"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports report.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := analytics.NewHandler(config.Dependencies.Reports)

	router := chi.NewRouter()

	router.Use(salesatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", handler.Health)
	router.Route("/api/v1/analytics", func(r chi.Router) {
		r.Get("/sales", handler.GetSales)
		r.Get("/inventory", handler.GetInventory)
		r.Get("/profit", handler.GetProfit)
		r.Get("/trends", handler.GetTrends)
		r.Get("/top-items", handler.GetTopItems)
		r.Get("/dashboard", handler.GetDashboard)
		r.Get("/hourly", handler.GetHourly)
		r.Route("/brands", func(r chi.Router) {
			r.Get("/sales", handler.GetBrandSales)
			r.Get("/popularity", handler.GetBrandPopularity)
			r.Get("/average", handler.GetBrandAverages)
		})
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
