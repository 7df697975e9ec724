// Command tmed serves the t.me preview extraction operations over a
// JSON HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	tmegoquery "github.com/previewkit/tme/goquery"
	tmehttp "github.com/previewkit/tme/http"
	"github.com/previewkit/tme/resolve"
	tmezerolog "github.com/previewkit/tme/zerolog"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("tmed: load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := tmehttp.NewFetcher(tmehttp.WithRateLimit(cfg.RPS))
	defer fetcher.Close()

	extractor := tmegoquery.NewExtractor(
		tmegoquery.WithBaseURL(cfg.BaseURL),
		tmegoquery.WithLogger(logger.With().Str("component", "extractor").Logger()),
	)

	resolver := tmezerolog.NewLoggingResolver(
		resolve.NewResolver(fetcher, extractor,
			resolve.WithBaseURL(cfg.BaseURL),
			resolve.WithProfileTimeout(cfg.ProfileTimeout),
			resolve.WithListTimeout(cfg.ListTimeout),
		),
		logger.With().Str("component", "resolver").Logger(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newServer(resolver, logger.With().Str("component", "http").Logger()),
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("tmed: listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("tmed: server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("tmed: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
