package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/services"
)

const (
	requestTimeout  = 15 * time.Second
	idleTimeout     = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg     *config.Config
	service services.RegistryInterface
}

func New(cfg *config.Config, service services.RegistryInterface) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
	}
}

// Start runs the API server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := s.cfg.Api.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router(),
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down API server")
		}
	}()

	log.Info().Msgf("Starting API server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server failed: %w", err)
	}

	return nil
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Database ping failed")
		http.Error(w, "db not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(s.tracingMiddleware, s.loggingMiddleware, s.accountMiddleware)

	router.Get("/healthz", s.handleHealthcheck)

	router.Route("/v1", func(r chi.Router) {
		r.Put("/storage-providers", s.handleUpsertStorageProviders)
		r.Get("/storage-providers", s.handleGetStorageProviders)
		r.Post("/storage-providers/delete", s.handleDeleteStorageProviders)

		r.Put("/price-snapshots", s.handleUpsertPriceSnapshot)
		r.Get("/price-snapshots", s.handleGetPriceSnapshots)
		r.Get("/price-snapshots/latest", s.handleGetLatestPriceSnapshot)
		r.Post("/price-snapshots/delete", s.handleDeletePriceSnapshots)

		r.Put("/active-per-region", s.handleSetActivePerRegion)
		r.Get("/active-per-region", s.handleGetActivePerRegion)
	})

	return router
}
