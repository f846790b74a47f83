package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/database"
	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

// Demo account used by POST /api/dev/seed when the caller has no session.
const (
	DemoEmail    = "demo@momentum.local"
	DemoPassword = "Momentum1"

	seedTokenHeader = "X-Seed-Token"
)

// SeedResult is the body returned by the dev seed endpoint.
type SeedResult struct {
	User          models.User          `json:"user"`
	Token         string               `json:"token,omitempty"`
	Sprint        models.Sprint        `json:"sprint"`
	Goals         []models.Goal        `json:"goals"`
	Tasks         []models.Task        `json:"tasks"`
	Retrospective models.Retrospective `json:"retrospective"`
}

func (s *Server) handleSeed(c echo.Context) error {
	if want := s.opts.DevSeedToken; want != "" {
		got := c.Request().Header.Get(seedTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			return auth.ErrUnauthorized
		}
	}
	ctx := c.Request().Context()

	var result SeedResult
	user, err := s.auth.AuthenticateRequest(ctx, c.Request())
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		sess, err := s.demoSession(ctx)
		if err != nil {
			return err
		}
		user, result.Token = sess.User, sess.Token
	case err != nil:
		return err
	}
	result.User = user

	if err := Seed(ctx, s.repo, user.ID, s.now(), &result); err != nil {
		return err
	}
	s.logger.Info("seeded demo data", zap.String("user_id", user.ID), zap.Int("goals", len(result.Goals)), zap.Int("tasks", len(result.Tasks)))
	return c.JSON(http.StatusCreated, result)
}

func (s *Server) demoSession(ctx context.Context) (auth.Session, error) {
	sess, err := s.auth.Login(ctx, contract.LoginRequest{Email: DemoEmail, Password: DemoPassword})
	if errors.Is(err, auth.ErrInvalidCredentials) {
		first := "Demo"
		return s.auth.Register(ctx, contract.RegisterRequest{Email: DemoEmail, Password: DemoPassword, FirstName: &first})
	}
	return sess, err
}

// Seed fills userID's account with a sprint around now and a handful of goals,
// tasks and a retrospective. result receives the created rows.
func Seed(ctx context.Context, repo database.Repository, userID string, now time.Time, result *SeedResult) error {
	today := contract.NewTime(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	start := contract.NewTime(today.AddDate(0, 0, -3))
	end := contract.NewTime(today.AddDate(0, 0, 11))

	sprint, err := repo.CreateSprint(ctx, userID, contract.CreateSprintRequest{
		Title: "Demo Sprint", StartDate: &start, EndDate: &end,
	})
	if err != nil {
		return fmt.Errorf("seed sprint: %w", err)
	}
	result.Sprint = sprint

	inSprint := contract.Some(sprint.ID)
	inProgress := models.GoalInProgress
	goalReqs := []contract.CreateGoalRequest{
		{
			SprintID: inSprint, Title: "Ship the MVP", Type: models.GoalWeekly,
			Description: contract.Some("Get the first version in front of users"),
			Status:      &inProgress, Progress: util.Ptr(40),
		},
		{SprintID: inSprint, Title: "Exercise three times", Type: models.GoalWeekly},
		{Title: "Inbox zero", Type: models.GoalDaily, Date: contract.Some(today)},
	}
	for _, req := range goalReqs {
		g, err := repo.CreateGoal(ctx, userID, req)
		if err != nil {
			return fmt.Errorf("seed goal: %w", err)
		}
		result.Goals = append(result.Goals, g)
	}

	mvp, gym := contract.Some(result.Goals[0].ID), contract.Some(result.Goals[1].ID)
	taskReqs := []contract.CreateTaskRequest{
		seedTask(mvp, "Write API docs", models.TaskInProgress, models.PriorityHigh),
		seedTask(mvp, "Fix login bug", models.TaskDone, models.PriorityHigh),
		seedTask(gym, "Book a gym class", models.TaskTodo, models.PriorityMedium),
		seedTask(contract.Nullable[int64]{}, "Read a chapter", models.TaskTodo, models.PriorityLow),
	}
	for _, req := range taskReqs {
		t, err := repo.CreateTask(ctx, userID, req)
		if err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
		result.Tasks = append(result.Tasks, t)
	}

	retro, err := repo.CreateRetrospective(ctx, userID, contract.CreateRetrospectiveRequest{
		SprintID: inSprint,
		Summary:  "Kickoff notes",
		Content:  "Keep mornings for deep work. Batch meetings after lunch.",
	})
	if err != nil {
		return fmt.Errorf("seed retrospective: %w", err)
	}
	result.Retrospective = retro
	return nil
}

func seedTask(goal contract.Nullable[int64], title string, status models.TaskStatus, priority models.TaskPriority) contract.CreateTaskRequest {
	return contract.CreateTaskRequest{GoalID: goal, Title: title, Status: &status, Priority: &priority}
}
