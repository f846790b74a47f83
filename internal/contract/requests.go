// Package contract defines the request shapes accepted by the API and the
// validation rules applied to them before they reach storage.
package contract

import (
	"strings"

	"github.com/akyairhashvil/momentum/internal/models"
)

// CreateSprintRequest is the body of POST /api/sprints.
type CreateSprintRequest struct {
	Title     string               `json:"title"`
	StartDate *Time                `json:"startDate"`
	EndDate   *Time                `json:"endDate"`
	Status    *models.SprintStatus `json:"status"`
}

func (r CreateSprintRequest) Validate() error {
	var v validator
	v.required("title", r.Title, MaxTitleLen)
	if r.StartDate == nil {
		v.fail("startDate", "startDate is required")
	}
	if r.EndDate == nil {
		v.fail("endDate", "endDate is required")
	}
	oneOfPtr(&v, "status", r.Status, models.SprintStatuses)
	return v.err()
}

// Normalized trims free text and fills column defaults.
func (r CreateSprintRequest) Normalized() CreateSprintRequest {
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == nil {
		status := models.SprintActive
		r.Status = &status
	}
	return r
}

// UpdateSprintRequest is the body of PUT /api/sprints/:id. Absent fields are left untouched.
type UpdateSprintRequest struct {
	Title     *string              `json:"title"`
	StartDate *Time                `json:"startDate"`
	EndDate   *Time                `json:"endDate"`
	Status    *models.SprintStatus `json:"status"`
}

func (r UpdateSprintRequest) Validate() error {
	var v validator
	if r.Title != nil {
		v.required("title", *r.Title, MaxTitleLen)
	}
	oneOfPtr(&v, "status", r.Status, models.SprintStatuses)
	return v.err()
}

// CreateGoalRequest is the body of POST /api/goals.
type CreateGoalRequest struct {
	SprintID    Nullable[int64]    `json:"sprintId"`
	Title       string             `json:"title"`
	Description Nullable[string]   `json:"description"`
	Type        models.GoalType    `json:"type"`
	Status      *models.GoalStatus `json:"status"`
	Progress    *int               `json:"progress"`
	Date        Nullable[Time]     `json:"date"`
}

func (r CreateGoalRequest) Validate() error {
	var v validator
	v.positiveRef("sprintId", r.SprintID)
	v.required("title", r.Title, MaxTitleLen)
	v.optionalText("description", r.Description, MaxTextLen)
	oneOf(&v, "type", r.Type, models.GoalTypes, true)
	oneOfPtr(&v, "status", r.Status, models.GoalStatuses)
	v.percent("progress", r.Progress)
	return v.err()
}

func (r CreateGoalRequest) Normalized() CreateGoalRequest {
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == nil {
		status := models.GoalNotStarted
		r.Status = &status
	}
	if r.Progress == nil {
		progress := 0
		r.Progress = &progress
	}
	return r
}

// UpdateGoalRequest is the body of PUT /api/goals/:id.
type UpdateGoalRequest struct {
	SprintID    Nullable[int64]    `json:"sprintId"`
	Title       *string            `json:"title"`
	Description Nullable[string]   `json:"description"`
	Type        *models.GoalType   `json:"type"`
	Status      *models.GoalStatus `json:"status"`
	Progress    *int               `json:"progress"`
	Date        Nullable[Time]     `json:"date"`
}

func (r UpdateGoalRequest) Validate() error {
	var v validator
	v.positiveRef("sprintId", r.SprintID)
	if r.Title != nil {
		v.required("title", *r.Title, MaxTitleLen)
	}
	v.optionalText("description", r.Description, MaxTextLen)
	oneOfPtr(&v, "type", r.Type, models.GoalTypes)
	oneOfPtr(&v, "status", r.Status, models.GoalStatuses)
	v.percent("progress", r.Progress)
	return v.err()
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	GoalID      Nullable[int64]      `json:"goalId"`
	Title       string               `json:"title"`
	Description Nullable[string]     `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Progress    *int                 `json:"progress"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     Nullable[Time]       `json:"dueDate"`
}

func (r CreateTaskRequest) Validate() error {
	var v validator
	v.positiveRef("goalId", r.GoalID)
	v.required("title", r.Title, MaxTitleLen)
	v.optionalText("description", r.Description, MaxTextLen)
	oneOfPtr(&v, "status", r.Status, models.TaskStatuses)
	v.percent("progress", r.Progress)
	oneOfPtr(&v, "priority", r.Priority, models.TaskPriorities)
	return v.err()
}

func (r CreateTaskRequest) Normalized() CreateTaskRequest {
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == nil {
		status := models.TaskTodo
		r.Status = &status
	}
	if r.Progress == nil {
		progress := 0
		r.Progress = &progress
	}
	if r.Priority == nil {
		priority := models.PriorityMedium
		r.Priority = &priority
	}
	return r
}

// UpdateTaskRequest is the body of PUT /api/tasks/:id. A kanban move is a
// request carrying only Status.
type UpdateTaskRequest struct {
	GoalID      Nullable[int64]      `json:"goalId"`
	Title       *string              `json:"title"`
	Description Nullable[string]     `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Progress    *int                 `json:"progress"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     Nullable[Time]       `json:"dueDate"`
}

func (r UpdateTaskRequest) Validate() error {
	var v validator
	v.positiveRef("goalId", r.GoalID)
	if r.Title != nil {
		v.required("title", *r.Title, MaxTitleLen)
	}
	v.optionalText("description", r.Description, MaxTextLen)
	oneOfPtr(&v, "status", r.Status, models.TaskStatuses)
	v.percent("progress", r.Progress)
	oneOfPtr(&v, "priority", r.Priority, models.TaskPriorities)
	return v.err()
}

// CreateRetrospectiveRequest is the body of POST /api/retrospectives.
type CreateRetrospectiveRequest struct {
	SprintID Nullable[int64] `json:"sprintId"`
	Summary  string          `json:"summary"`
	Content  string          `json:"content"`
}

func (r CreateRetrospectiveRequest) Validate() error {
	var v validator
	v.positiveRef("sprintId", r.SprintID)
	v.required("summary", r.Summary, MaxTextLen)
	v.required("content", r.Content, MaxTextLen)
	return v.err()
}
