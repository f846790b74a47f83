package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/database"
	"github.com/akyairhashvil/momentum/internal/models"
)

func newTestServer(t *testing.T, mutate ...func(*Options)) (*Server, *database.Database) {
	t.Helper()
	db, err := database.Open(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	opts := Options{
		Repo:     db,
		Auth:     auth.NewService(db, auth.Config{TTL: time.Hour, PasswordCost: bcrypt.MinCost}, zap.NewNop()),
		Logger:   zap.NewNop(),
		Registry: prometheus.NewRegistry(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	srv, err := New(opts)
	require.NoError(t, err)
	return srv, db
}

type client struct {
	t     *testing.T
	srv   *Server
	token string
	user  models.User
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(c.t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.srv.ServeHTTP(rec, req)
	return rec
}

func signUp(t *testing.T, srv *Server, email string) *client {
	t.Helper()
	anon := &client{t: t, srv: srv}
	rec := anon.do(http.MethodPost, "/api/register", map[string]string{"email": email, "password": "Passw0rd!"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sess := decode[auth.Session](t, rec)
	return &client{t: t, srv: srv, token: sess.Token, user: sess.User}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := (&client{t: t, srv: srv}).do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	srv, _ := newTestServer(t)
	anon := &client{t: t, srv: srv}
	for _, path := range []string{"/api/goals", "/api/tasks", "/api/sprints", "/api/retrospectives", "/api/export", "/api/auth/user"} {
		rec := anon.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String(), path)
	}

	anon.token = "not-a-session"
	rec := anon.do(http.MethodGet, "/api/goals", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	c := signUp(t, srv, "flow@example.com")

	rec := c.do(http.MethodGet, "/api/auth/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "flow@example.com", decode[models.User](t, rec).Email)
	assert.NotContains(t, rec.Body.String(), "password")

	anon := &client{t: t, srv: srv}
	rec = anon.do(http.MethodPost, "/api/login", map[string]string{"email": "flow@example.com", "password": "Wrong0000"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, rec.Body.String())

	rec = anon.do(http.MethodPost, "/api/register", map[string]string{"email": "flow@example.com", "password": "Passw0rd!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decode[ErrorResponse](t, rec).Field)

	rec = anon.do(http.MethodPost, "/api/register", map[string]string{"email": "weak@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password", decode[ErrorResponse](t, rec).Field)

	rec = c.do(http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = c.do(http.MethodGet, "/api/auth/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSprintRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	c := signUp(t, srv, "sprints@example.com")
	now := time.Now().UTC()

	rec := c.do(http.MethodPost, "/api/sprints", map[string]string{
		"title":     "Past",
		"startDate": now.AddDate(0, 0, -30).Format("2006-01-02"),
		"endDate":   now.AddDate(0, 0, -16).Format("2006-01-02"),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	past := decode[models.Sprint](t, rec)
	assert.Equal(t, models.SprintActive, past.Status)
	assert.Equal(t, c.user.ID, past.UserID)

	rec = c.do(http.MethodPost, "/api/sprints", map[string]string{
		"title":     "Current",
		"startDate": now.Add(-48 * time.Hour).Format(time.RFC3339),
		"endDate":   now.Add(48 * time.Hour).Format(time.RFC3339),
		"userId":    "someone-else",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	current := decode[models.Sprint](t, rec)
	assert.Equal(t, c.user.ID, current.UserID)

	rec = c.do(http.MethodGet, "/api/sprints", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.Sprint](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, current.ID, list[0].ID)

	rec = c.do(http.MethodGet, "/api/sprints/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, current.ID, decode[models.Sprint](t, rec).ID)

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/sprints/%d", current.ID), map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SprintCompleted, decode[models.Sprint](t, rec).Status)

	rec = c.do(http.MethodGet, "/api/sprints/active", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/sprints/%d", past.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodGet, "/api/sprints/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Sprint not found"}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/api/sprints/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id", decode[ErrorResponse](t, rec).Field)

	rec = c.do(http.MethodPost, "/api/sprints", map[string]string{"startDate": "2024-01-01", "endDate": "2024-01-14"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrorResponse{Message: "title is required", Field: "title"}, decode[ErrorResponse](t, rec))

	rec = c.do(http.MethodPost, "/api/sprints", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPut, "/api/sprints/9999", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoalAndTaskRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	c := signUp(t, srv, "board@example.com")

	rec := c.do(http.MethodPost, "/api/sprints", map[string]string{"title": "S", "startDate": "2024-06-03", "endDate": "2024-06-17"})
	require.Equal(t, http.StatusCreated, rec.Code)
	sprint := decode[models.Sprint](t, rec)

	rec = c.do(http.MethodPost, "/api/goals", map[string]interface{}{"title": "Weekly", "type": "weekly", "sprintId": sprint.ID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	weekly := decode[models.Goal](t, rec)
	assert.Equal(t, models.GoalNotStarted, weekly.Status)
	assert.Equal(t, 0, weekly.Progress)
	require.NotNil(t, weekly.SprintID)

	rec = c.do(http.MethodPost, "/api/goals", map[string]interface{}{"title": "Daily", "type": "daily", "date": "2024-06-04"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPost, "/api/goals", map[string]interface{}{"title": "Bad", "type": "weekly", "sprintId": 9999})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid reference"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/goals", map[string]interface{}{"title": "Bad", "type": "monthly"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "type", decode[ErrorResponse](t, rec).Field)

	rec = c.do(http.MethodPost, "/api/goals", map[string]interface{}{"title": "Bad", "type": "weekly", "progress": 101})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodGet, "/api/goals?type=weekly", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Goal](t, rec), 1)

	rec = c.do(http.MethodGet, "/api/goals?date=2024-06-04", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Goal](t, rec), 1)

	rec = c.do(http.MethodGet, "/api/goals?type=yearly", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/goals/%d", weekly.ID), map[string]interface{}{"progress": 50, "status": "in_progress", "description": "half"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Goal](t, rec)
	assert.Equal(t, 50, updated.Progress)
	require.NotNil(t, updated.Description)

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/goals/%d", weekly.ID), map[string]interface{}{"description": nil})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[models.Goal](t, rec).Description)

	var taskIDs []int64
	for _, p := range []string{"low", "high", "medium"} {
		rec = c.do(http.MethodPost, "/api/tasks", map[string]interface{}{"title": "Task " + p, "priority": p, "goalId": weekly.ID})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		taskIDs = append(taskIDs, decode[models.Task](t, rec).ID)
	}

	rec = c.do(http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]models.Task](t, rec)
	require.Len(t, tasks, 3)
	assert.Equal(t, []models.TaskPriority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow},
		[]models.TaskPriority{tasks[0].Priority, tasks[1].Priority, tasks[2].Priority})

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskIDs[0]), map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.TaskDone, decode[models.Task](t, rec).Status)

	rec = c.do(http.MethodGet, "/api/tasks?status=done", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Task](t, rec), 1)

	rec = c.do(http.MethodGet, "/api/tasks?q=priority:high", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Task](t, rec), 1)

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/tasks?goalId=%d", weekly.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Task](t, rec), 3)

	rec = c.do(http.MethodGet, "/api/tasks?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/goals/%d", weekly.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, id := range taskIDs {
		rec = c.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	rec = c.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d", taskIDs[0]), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/goals/%d", weekly.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = c.do(http.MethodGet, fmt.Sprintf("/api/goals/%d", weekly.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/goals/%d", weekly.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRowsAreScopedToOwner(t *testing.T) {
	srv, _ := newTestServer(t)
	alice := signUp(t, srv, "alice@example.com")
	bob := signUp(t, srv, "bob@example.com")

	rec := alice.do(http.MethodPost, "/api/goals", map[string]string{"title": "Private", "type": "weekly"})
	require.Equal(t, http.StatusCreated, rec.Code)
	goal := decode[models.Goal](t, rec)
	path := fmt.Sprintf("/api/goals/%d", goal.ID)

	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodPut, path, map[string]int{"progress": 10}).Code)
	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodDelete, path, nil).Code)

	rec = bob.do(http.MethodPost, "/api/tasks", map[string]interface{}{"title": "Sneaky", "goalId": goal.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = bob.do(http.MethodGet, "/api/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusOK, alice.do(http.MethodGet, path, nil).Code)
}

func TestSummaryReportAndExport(t *testing.T) {
	srv, _ := newTestServer(t)
	c := signUp(t, srv, "report@example.com")

	rec := c.do(http.MethodPost, "/api/dev/seed", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	seeded := decode[SeedResult](t, rec)
	assert.Empty(t, seeded.Token)
	assert.Equal(t, c.user.ID, seeded.User.ID)
	sprintPath := fmt.Sprintf("/api/sprints/%d", seeded.Sprint.ID)

	rec = c.do(http.MethodGet, sprintPath+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[models.SprintSummary](t, rec)
	assert.Equal(t, 2, summary.TotalGoals)
	assert.Equal(t, 0, summary.CompletedGoals)
	assert.Equal(t, 20, summary.AverageProgress)
	assert.Equal(t, 1, summary.TasksByStatus[models.TaskDone])
	assert.Equal(t, 1, summary.TasksByStatus[models.TaskInProgress])
	assert.Equal(t, 1, summary.TasksByStatus[models.TaskTodo])

	rec = c.do(http.MethodGet, sprintPath+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = c.do(http.MethodGet, "/api/sprints/9999/report", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/retrospectives?sprintId=%d", seeded.Sprint.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Retrospective](t, rec), 1)

	rec = c.do(http.MethodPost, "/api/retrospectives", map[string]string{"summary": "Loose", "content": "No sprint"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, decode[models.Retrospective](t, rec).SprintID)

	rec = c.do(http.MethodPost, "/api/retrospectives", map[string]string{"summary": "Missing content"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "content", decode[ErrorResponse](t, rec).Field)

	rec = c.do(http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	export := decode[models.Export](t, rec)
	assert.Equal(t, c.user.ID, export.User.ID)
	assert.Len(t, export.Sprints, 1)
	assert.Len(t, export.Goals, 3)
	assert.Len(t, export.Tasks, 4)
	assert.Len(t, export.Retrospectives, 2)
}

func TestDevSeed(t *testing.T) {
	t.Run("creates demo account", func(t *testing.T) {
		srv, _ := newTestServer(t)
		anon := &client{t: t, srv: srv}
		rec := anon.do(http.MethodPost, "/api/dev/seed", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		res := decode[SeedResult](t, rec)
		assert.Equal(t, DemoEmail, res.User.Email)
		assert.NotEmpty(t, res.Token)

		rec = anon.do(http.MethodPost, "/api/dev/seed", nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, res.User.ID, decode[SeedResult](t, rec).User.ID)
	})

	t.Run("token required when configured", func(t *testing.T) {
		srv, _ := newTestServer(t, func(o *Options) { o.DevSeedToken = "s3cret" })
		anon := &client{t: t, srv: srv}
		assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodPost, "/api/dev/seed", nil).Code)

		req := httptest.NewRequest(http.MethodPost, "/api/dev/seed", nil)
		req.Header.Set(seedTokenHeader, "s3cret")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("absent in production", func(t *testing.T) {
		srv, _ := newTestServer(t, func(o *Options) { o.Production = true })
		c := signUp(t, srv, "prod@example.com")
		assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/dev/seed", nil).Code)
	})
}

func TestChatDisabledWithoutStreamer(t *testing.T) {
	srv, _ := newTestServer(t)
	c := signUp(t, srv, "chat@example.com")
	rec := c.do(http.MethodGet, "/api/conversations", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"Chat is not configured"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	anon := &client{t: t, srv: srv}
	require.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/api/health", nil).Code)
	require.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/api/goals", nil).Code)

	rec := anon.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `momentum_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
	assert.Contains(t, body, `momentum_http_requests_total{method="GET",route="/api/goals",status="401"} 1`)
	assert.Contains(t, body, "momentum_http_request_duration_seconds")
}
