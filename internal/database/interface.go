package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

// SprintRepository defines sprint-related database operations.
type SprintRepository interface {
	ListSprints(ctx context.Context, userID string) ([]models.Sprint, error)
	GetSprint(ctx context.Context, userID string, id int64) (models.Sprint, error)
	GetActiveSprint(ctx context.Context, userID string, now time.Time) (models.Sprint, error)
	CreateSprint(ctx context.Context, userID string, req contract.CreateSprintRequest) (models.Sprint, error)
	UpdateSprint(ctx context.Context, userID string, id int64, req contract.UpdateSprintRequest) (models.Sprint, error)
	SprintSummary(ctx context.Context, userID string, sprintID int64) (models.SprintSummary, error)
}

// GoalRepository defines goal-related database operations.
type GoalRepository interface {
	ListGoals(ctx context.Context, userID string, f contract.GoalFilter) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID string, id int64) (models.Goal, error)
	CreateGoal(ctx context.Context, userID string, req contract.CreateGoalRequest) (models.Goal, error)
	UpdateGoal(ctx context.Context, userID string, id int64, req contract.UpdateGoalRequest) (models.Goal, error)
	DeleteGoal(ctx context.Context, userID string, id int64) error
}

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	ListTasks(ctx context.Context, userID string, f contract.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID string, id int64) (models.Task, error)
	CreateTask(ctx context.Context, userID string, req contract.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, userID string, id int64, req contract.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID string, id int64) error
}

// RetrospectiveRepository defines retrospective-related database operations.
type RetrospectiveRepository interface {
	ListRetrospectives(ctx context.Context, userID string, f contract.RetrospectiveFilter) ([]models.Retrospective, error)
	CreateRetrospective(ctx context.Context, userID string, req contract.CreateRetrospectiveRequest) (models.Retrospective, error)
}

// UserRepository covers accounts and their sessions.
type UserRepository interface {
	CreateUser(ctx context.Context, nu NewUser) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) (models.Session, error)
	GetSessionUser(ctx context.Context, tokenHash string) (models.User, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// ConversationRepository stores chat threads.
type ConversationRepository interface {
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	CreateConversation(ctx context.Context, userID, title string) (models.Conversation, error)
	GetConversation(ctx context.Context, userID string, id int64) (models.ConversationWithMessages, error)
	DeleteConversation(ctx context.Context, userID string, id int64) error
	AddMessage(ctx context.Context, userID string, conversationID int64, role models.MessageRole, content string) (models.Message, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/akyairhashvil/momentum/internal/database Repository
type Repository interface {
	SprintRepository
	GoalRepository
	TaskRepository
	RetrospectiveRepository
	UserRepository
	ConversationRepository
	Export(ctx context.Context, userID string) (models.Export, error)
	Ping(ctx context.Context) error
}

var _ Repository = (*Database)(nil)
