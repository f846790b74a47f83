package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
)

func (s *Server) listTasks(c echo.Context) error {
	filter, err := contract.ParseTaskFilter(c.QueryParams())
	if err != nil {
		return err
	}
	tasks, err := s.repo.ListTasks(c.Request().Context(), auth.UserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	task, err := s.repo.GetTask(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) createTask(c echo.Context) error {
	var req contract.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	task, err := s.repo.CreateTask(c.Request().Context(), auth.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req contract.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	task, err := s.repo.UpdateTask(c.Request().Context(), auth.UserID(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTask(c.Request().Context(), auth.UserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
