package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
)

func (s *Server) listGoals(c echo.Context) error {
	filter, err := contract.ParseGoalFilter(c.QueryParams())
	if err != nil {
		return err
	}
	goals, err := s.repo.ListGoals(c.Request().Context(), auth.UserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

func (s *Server) getGoal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	goal, err := s.repo.GetGoal(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

func (s *Server) createGoal(c echo.Context) error {
	var req contract.CreateGoalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	goal, err := s.repo.CreateGoal(c.Request().Context(), auth.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, goal)
}

func (s *Server) updateGoal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req contract.UpdateGoalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	goal, err := s.repo.UpdateGoal(c.Request().Context(), auth.UserID(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

func (s *Server) deleteGoal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteGoal(c.Request().Context(), auth.UserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
