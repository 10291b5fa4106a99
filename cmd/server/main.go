package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"boxscore/internal/config"
	"boxscore/internal/constants"
	"boxscore/internal/feed"
	fxmodules "boxscore/internal/fx"
	"boxscore/internal/logger"
	"boxscore/internal/metrics"
	"boxscore/internal/middleware"
	"boxscore/internal/server"
	"boxscore/internal/service"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	boxScoreServer *server.BoxScoreServer,
	primer *service.Primer,
	feedClient *feed.Client,
	rec *metrics.Recorder,
	cfg *config.Config,
	db *sql.DB,
	log zerolog.Logger,
) error {
	if err := logger.ApplyLevel(cfg.LogLevel); err != nil {
		return err
	}

	mux := http.NewServeMux()
	boxScoreServer.Register(mux)
	mux.Handle("GET /metrics", rec.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	handler := c.Handler(middleware.RequestID(log)(middleware.Metrics(rec)(mux)))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.PrimeOnStart {
				primeCtx, cancel := context.WithTimeout(ctx, constants.PrimeTimeout)
				defer cancel()
				// A sport that fails to prime answers with a cache miss until the
				// process restarts; the others are still served.
				if err := primer.PrimeAll(primeCtx); err != nil {
					log.Error().Err(err).Msg("cache priming incomplete")
				}
			}

			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			feedClient.Close()

			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing database connection")
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
	return nil
}
