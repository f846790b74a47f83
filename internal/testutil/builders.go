// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

// SprintBuilder provides fluent API for creating sprint requests.
type SprintBuilder struct {
	req contract.CreateSprintRequest
}

// NewSprint starts a two-week sprint beginning at start.
func NewSprint(start time.Time) *SprintBuilder {
	s := contract.NewTime(start)
	e := contract.NewTime(start.AddDate(0, 0, 14))
	return &SprintBuilder{req: contract.CreateSprintRequest{Title: "Test Sprint", StartDate: &s, EndDate: &e}}
}

func (b *SprintBuilder) WithTitle(title string) *SprintBuilder {
	b.req.Title = title
	return b
}

func (b *SprintBuilder) WithStatus(s models.SprintStatus) *SprintBuilder {
	b.req.Status = &s
	return b
}

func (b *SprintBuilder) Ending(end time.Time) *SprintBuilder {
	e := contract.NewTime(end)
	b.req.EndDate = &e
	return b
}

func (b *SprintBuilder) Build() contract.CreateSprintRequest {
	return b.req
}

// GoalBuilder provides fluent API for creating goal requests.
type GoalBuilder struct {
	req contract.CreateGoalRequest
}

func NewGoal() *GoalBuilder {
	return &GoalBuilder{req: contract.CreateGoalRequest{Title: "Test Goal", Type: models.GoalWeekly}}
}

func (b *GoalBuilder) WithTitle(title string) *GoalBuilder {
	b.req.Title = title
	return b
}

func (b *GoalBuilder) WithDescription(d string) *GoalBuilder {
	b.req.Description = contract.Some(d)
	return b
}

func (b *GoalBuilder) InSprint(id int64) *GoalBuilder {
	b.req.SprintID = contract.Some(id)
	return b
}

// Daily makes the goal a daily goal on the given day.
func (b *GoalBuilder) Daily(day time.Time) *GoalBuilder {
	b.req.Type = models.GoalDaily
	b.req.Date = contract.Some(contract.NewTime(day))
	return b
}

func (b *GoalBuilder) WithStatus(s models.GoalStatus) *GoalBuilder {
	b.req.Status = &s
	return b
}

func (b *GoalBuilder) WithProgress(p int) *GoalBuilder {
	b.req.Progress = util.Ptr(p)
	return b
}

func (b *GoalBuilder) Build() contract.CreateGoalRequest {
	return b.req
}

// TaskBuilder provides fluent API for creating task requests.
type TaskBuilder struct {
	req contract.CreateTaskRequest
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{req: contract.CreateTaskRequest{Title: "Test Task"}}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.req.Title = title
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.req.Description = contract.Some(d)
	return b
}

func (b *TaskBuilder) ForGoal(id int64) *TaskBuilder {
	b.req.GoalID = contract.Some(id)
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.req.Status = &s
	return b
}

func (b *TaskBuilder) WithPriority(p models.TaskPriority) *TaskBuilder {
	b.req.Priority = &p
	return b
}

func (b *TaskBuilder) Build() contract.CreateTaskRequest {
	return b.req
}
