package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
)

// observe logs and counts every request. Errors are rendered here so the
// recorded status matches what the client received.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		duration := time.Since(start)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().Status
		method := c.Request().Method

		s.metrics.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		s.metrics.Duration.WithLabelValues(method, route).Observe(duration.Seconds())

		s.logger.Info("http request",
			zap.String("method", method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.String("user_id", auth.UserID(c)),
		)
		return nil
	}
}
