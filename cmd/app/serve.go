package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/chat"
	"github.com/akyairhashvil/momentum/internal/config"
	"github.com/akyairhashvil/momentum/internal/database"
	"github.com/akyairhashvil/momentum/internal/logging"
	"github.com/akyairhashvil/momentum/internal/server"
)

const janitorInterval = time.Hour

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Production: cfg.IsProduction(), Service: config.ServiceName})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(ctx, cfg.DatabaseURL, database.WithTimeout(cfg.DBTimeout))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logger.Info("database ready", zap.String("dialect", db.Dialect()))

	authSvc := auth.NewService(db, auth.Config{TTL: cfg.SessionTTL, SecureCookies: cfg.IsProduction()}, logger)

	var streamer chat.Streamer
	if cfg.ChatEnabled() {
		s, err := chat.NewOpenAIStreamer(chat.Config{
			APIKey:  cfg.OpenAIAPIKey.Value(),
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.AIModel,
		})
		if err != nil {
			return err
		}
		streamer = s
	} else {
		logger.Warn("OPENAI_API_KEY not set, chat routes disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := chat.NewLimiter(cfg.ChatRatePerMinute)
	srv, err := server.New(server.Options{
		Repo:              db,
		Auth:              authSvc,
		Logger:            logger,
		Registry:          reg,
		Streamer:          streamer,
		ChatLimiter:       limiter,
		Production:        cfg.IsProduction(),
		DevSeedToken:      cfg.DevSeedToken.Value(),
	})
	if err != nil {
		return err
	}

	go runJanitor(ctx, authSvc, limiter, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(cfg.Addr()) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func runJanitor(ctx context.Context, svc *auth.Service, limiter *chat.Limiter, logger *zap.Logger) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep(ctx, svc, limiter, logger)
		}
	}
}

// sweep deletes expired sessions and forgets chat buckets idle for a full interval.
func sweep(ctx context.Context, svc *auth.Service, limiter *chat.Limiter, logger *zap.Logger) {
	if pruned := limiter.Prune(janitorInterval); pruned > 0 {
		logger.Debug("pruned idle chat limiters", zap.Int("count", pruned))
	}
	n, err := svc.PurgeExpired(ctx)
	if err != nil {
		logger.Warn("purge expired sessions", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Debug("purged expired sessions", zap.Int64("count", n))
	}
}
