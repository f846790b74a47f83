package models

import "time"

// SprintStatus enumerates the possible states of a sprint.
type SprintStatus string

const (
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// GoalType separates daily objectives from weekly ones.
type GoalType string

const (
	GoalDaily  GoalType = "daily"
	GoalWeekly GoalType = "weekly"
)

// GoalStatus tracks how far along a goal is.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

// TaskPriority orders tasks within a column.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Valid enum values, in display order.
var (
	SprintStatuses = []SprintStatus{SprintActive, SprintCompleted}
	GoalTypes      = []GoalType{GoalDaily, GoalWeekly}
	GoalStatuses   = []GoalStatus{GoalNotStarted, GoalInProgress, GoalCompleted}
	TaskStatuses   = []TaskStatus{TaskTodo, TaskInProgress, TaskDone, TaskBlocked}
	TaskPriorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}
)

// Sprint is a time-boxed period grouping weekly goals and retrospectives.
type Sprint struct {
	ID        int64        `json:"id"`
	UserID    string       `json:"userId"`
	Title     string       `json:"title"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    SprintStatus `json:"status"`
}

// Goal is a daily or weekly objective, optionally attached to a sprint.
type Goal struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"userId"`
	SprintID    *int64     `json:"sprintId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        GoalType   `json:"type"`
	Status      GoalStatus `json:"status"`
	Progress    int        `json:"progress"`
	Date        *time.Time `json:"date"` // daily goals only
	CreatedAt   time.Time  `json:"createdAt"`
}

// Task is a kanban item, optionally linked to a goal.
type Task struct {
	ID          int64        `json:"id"`
	GoalID      *int64       `json:"goalId"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Progress    int          `json:"progress"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Retrospective is a free-text reflection, usually written at the end of a sprint.
type Retrospective struct {
	ID        int64     `json:"id"`
	SprintID  *int64    `json:"sprintId"`
	UserID    string    `json:"userId"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// User owns every other entity.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session binds a hashed bearer token to a user until it expires.
type Session struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Conversation is a chat thread with the coaching assistant.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a single turn in a conversation.
type Message struct {
	ID             int64       `json:"id"`
	ConversationID int64       `json:"conversationId"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ConversationWithMessages is the detail view of a conversation.
type ConversationWithMessages struct {
	Conversation
	Messages []Message `json:"messages"`
}

// SprintSummary aggregates goal and task progress for one sprint.
type SprintSummary struct {
	SprintID        int64              `json:"sprintId"`
	TotalGoals      int                `json:"totalGoals"`
	CompletedGoals  int                `json:"completedGoals"`
	AverageProgress int                `json:"averageProgress"`
	TasksByStatus   map[TaskStatus]int `json:"tasksByStatus"`
}

// Export is a full dump of one user's data.
type Export struct {
	ExportedAt     time.Time       `json:"exportedAt"`
	User           User            `json:"user"`
	Sprints        []Sprint        `json:"sprints"`
	Goals          []Goal          `json:"goals"`
	Tasks          []Task          `json:"tasks"`
	Retrospectives []Retrospective `json:"retrospectives"`
}
