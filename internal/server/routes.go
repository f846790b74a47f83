package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.gatherer, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api")
	api.GET("/health", s.handleHealth)
	if !s.opts.Production {
		api.POST("/dev/seed", s.handleSeed)
	}
	s.auth.Mount(api)

	protected := api.Group("", s.auth.RequireUser())

	protected.GET("/sprints", s.listSprints)
	protected.GET("/sprints/active", s.activeSprint)
	protected.GET("/sprints/:id", s.getSprint)
	protected.POST("/sprints", s.createSprint)
	protected.PUT("/sprints/:id", s.updateSprint)
	protected.GET("/sprints/:id/summary", s.sprintSummary)
	protected.GET("/sprints/:id/report", s.sprintReport)

	protected.GET("/goals", s.listGoals)
	protected.GET("/goals/:id", s.getGoal)
	protected.POST("/goals", s.createGoal)
	protected.PUT("/goals/:id", s.updateGoal)
	protected.DELETE("/goals/:id", s.deleteGoal)

	protected.GET("/tasks", s.listTasks)
	protected.GET("/tasks/:id", s.getTask)
	protected.POST("/tasks", s.createTask)
	protected.PUT("/tasks/:id", s.updateTask)
	protected.DELETE("/tasks/:id", s.deleteTask)

	protected.GET("/retrospectives", s.listRetrospectives)
	protected.POST("/retrospectives", s.createRetrospective)

	protected.GET("/export", s.export)

	s.chat.Mount(protected)
}
