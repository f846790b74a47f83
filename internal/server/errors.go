package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/chat"
	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/database"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// handleError maps domain errors to status codes. Anything unrecognised is
// logged and collapsed to a generic 500.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.Error("write error response", zap.Error(err))
	}
}

func mapError(err error) (int, ErrorResponse) {
	var (
		verr  *contract.ValidationError
		httpE *echo.HTTPError
		opErr *database.OpError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{Message: verr.Message, Field: verr.Field}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password"}
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"}
	case errors.Is(err, database.ErrNotFound):
		msg := "Not found"
		if errors.As(err, &opErr) && opErr.Entity != "" {
			msg = capitalize(opErr.Entity) + " not found"
		}
		return http.StatusNotFound, ErrorResponse{Message: msg}
	case errors.Is(err, database.ErrInvalidReference):
		return http.StatusBadRequest, ErrorResponse{Message: "Invalid reference"}
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusBadRequest, ErrorResponse{Message: "Already exists"}
	case errors.Is(err, chat.ErrRateLimited):
		return http.StatusTooManyRequests, ErrorResponse{Message: "Too many requests"}
	case errors.Is(err, chat.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Message: "Chat is not configured"}
	case errors.As(err, &httpE):
		return httpE.Code, ErrorResponse{Message: httpMessage(httpE)}
	}
	return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
}

func httpMessage(he *echo.HTTPError) string {
	if he.Code >= http.StatusInternalServerError {
		return "Internal server error"
	}
	if m, ok := he.Message.(string); ok {
		return m
	}
	return fmt.Sprint(he.Message)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
