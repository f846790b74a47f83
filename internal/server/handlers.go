package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
)

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into req and validates it.
func bind(c echo.Context, req validatable) error {
	if err := contract.DecodeJSON(c.Request().Body, req); err != nil {
		return err
	}
	return req.Validate()
}

func pathID(c echo.Context) (int64, error) {
	return contract.ParseID(c.Param("id"))
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	if err := s.repo.Ping(c.Request().Context()); err != nil {
		s.logger.Warn("health check: database unreachable")
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) export(c echo.Context) error {
	out, err := s.repo.Export(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="momentum-export.json"`)
	return c.JSON(http.StatusOK, out)
}
