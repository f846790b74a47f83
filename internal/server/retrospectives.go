package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
)

func (s *Server) listRetrospectives(c echo.Context) error {
	filter, err := contract.ParseRetrospectiveFilter(c.QueryParams())
	if err != nil {
		return err
	}
	retros, err := s.repo.ListRetrospectives(c.Request().Context(), auth.UserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, retros)
}

func (s *Server) createRetrospective(c echo.Context) error {
	var req contract.CreateRetrospectiveRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	retro, err := s.repo.CreateRetrospective(c.Request().Context(), auth.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, retro)
}
