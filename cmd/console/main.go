package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/medagenda/console/internal/api"
	"github.com/medagenda/console/internal/api/metrics"
	"github.com/medagenda/console/internal/core/ports"
	"github.com/medagenda/console/internal/core/service"
	upstream "github.com/medagenda/console/internal/infrastructure/api"
	"github.com/medagenda/console/internal/infrastructure/token"
	"github.com/medagenda/console/internal/pkg/config"
	"github.com/medagenda/console/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Token store ---
	var tokens ports.TokenStore
	if cfg.TokenDB == "" {
		tokens = token.NewMemoryStore()
		log.Warn().Msg("TOKEN_DB empty, session will not survive restarts")
	} else {
		store, err := token.NewSQLiteStore(cfg.TokenDB)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.TokenDB).Msg("failed to open token store")
		}
		defer store.Close()
		tokens = store
	}

	// --- Gateway and session ---
	var opts []upstream.Option
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, upstream.WithTimeout(cfg.HTTPTimeout))
	}
	gateway := upstream.NewClient(cfg.APIURL, tokens, log, opts...)

	session := service.NewSessionService(gateway, tokens, log)
	session.Resolve(context.Background())
	if session.IsAuthenticated() {
		metrics.SessionAuthenticated.Set(1)
	}

	// --- HTTP server ---
	loginLimiter := rate.NewLimiter(rate.Limit(float64(cfg.LoginRatePerMin)/60.0), cfg.LoginBurst)
	e := api.NewRouter(session, gateway, gateway, loginLimiter, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("api_url", cfg.APIURL).Msg("console starting")
		serverErrors <- e.Start(":" + cfg.Port)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
