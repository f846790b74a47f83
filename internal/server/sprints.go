package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/report"
)

func (s *Server) listSprints(c echo.Context) error {
	sprints, err := s.repo.ListSprints(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprints)
}

func (s *Server) activeSprint(c echo.Context) error {
	sprint, err := s.repo.GetActiveSprint(c.Request().Context(), auth.UserID(c), s.now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprint)
}

func (s *Server) getSprint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sprint, err := s.repo.GetSprint(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprint)
}

func (s *Server) createSprint(c echo.Context) error {
	var req contract.CreateSprintRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	sprint, err := s.repo.CreateSprint(c.Request().Context(), auth.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sprint)
}

func (s *Server) updateSprint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req contract.UpdateSprintRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	sprint, err := s.repo.UpdateSprint(c.Request().Context(), auth.UserID(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sprint)
}

func (s *Server) sprintSummary(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	summary, err := s.repo.SprintSummary(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) sprintReport(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	userID := auth.UserID(c)

	sprint, err := s.repo.GetSprint(ctx, userID, id)
	if err != nil {
		return err
	}
	goals, err := s.repo.ListGoals(ctx, userID, contract.GoalFilter{SprintID: &id})
	if err != nil {
		return err
	}
	summary, err := s.repo.SprintSummary(ctx, userID, id)
	if err != nil {
		return err
	}
	retros, err := s.repo.ListRetrospectives(ctx, userID, contract.RetrospectiveFilter{SprintID: &id})
	if err != nil {
		return err
	}

	pdf, err := report.SprintReport(sprint, goals, summary, retros)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename(sprint)))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
