// Package server exposes Momentum over HTTP with echo.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/chat"
	"github.com/akyairhashvil/momentum/internal/database"
)

// Options wires the server's collaborators.
type Options struct {
	Repo     database.Repository
	Auth     *auth.Service
	Logger   *zap.Logger
	Registry *prometheus.Registry

	// Streamer relays chat replies; nil disables the assistant.
	Streamer          chat.Streamer
	ChatRatePerMinute int
	// ChatLimiter, when set, replaces the limiter built from ChatRatePerMinute.
	ChatLimiter       *chat.Limiter

	Production   bool
	DevSeedToken string

	// Now overrides the clock used for the active sprint lookup.
	Now func() time.Time
}

// Server provides the HTTP API.
type Server struct {
	echo    *echo.Echo
	repo    database.Repository
	auth    *auth.Service
	chat    *chat.Handler
	logger  *zap.Logger
	metrics *Metrics
	opts    Options
	now     func() time.Time
}

// New builds the server and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if opts.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		repo:    opts.Repo,
		auth:    opts.Auth,
		logger:  logger,
		metrics: NewMetrics(reg),
		opts:    opts,
		now:     now,
	}
	limiter := opts.ChatLimiter
	if limiter == nil {
		limiter = chat.NewLimiter(opts.ChatRatePerMinute)
	}
	s.chat = chat.NewHandler(opts.Repo, opts.Streamer, limiter, logger, s.metrics.ChatChunks)

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestID())
	e.Use(s.observe)
	e.Use(middleware.Recover())

	s.registerRoutes()
	return s, nil
}

// ServeHTTP lets the server be mounted or driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting http server", zap.String("addr", addr), zap.Bool("production", s.opts.Production))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
