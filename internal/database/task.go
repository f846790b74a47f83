package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

const (
	taskColumns = "id, goal_id, user_id, title, description, status, progress, priority, due_date, created_at"

	// taskPriorityRank sorts high before medium before low.
	taskPriorityRank = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"
)

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.GoalID, &t.UserID, &t.Title, &t.Description,
		&t.Status, &t.Progress, &t.Priority, &t.DueDate, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	utc(&t.CreatedAt)
	utcPtr(&t.DueDate)
	return t, nil
}

func (d *Database) queryTasks(ctx context.Context, op string, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityTask, op, 0, err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, wrapErr(EntityTask, op, 0, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityTask, op, 0, err)
	}
	return tasks, nil
}

// likeEscaper makes % and _ in search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ListTasks returns the user's tasks matching f ordered by priority, then newest first.
// Free-text terms must all appear in the title or description.
func (d *Database) ListTasks(ctx context.Context, userID string, f contract.TaskFilter) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	q := newSelect("tasks", taskColumns).Where("user_id = ?", userID)
	if f.GoalID != nil {
		q.Where("goal_id = ?", *f.GoalID)
	}
	if f.Status != nil {
		q.Where("status = ?", string(*f.Status))
	}
	q.WhereIn("status", f.Query.Status)
	q.WhereIn("priority", f.Query.Priority)
	for _, term := range f.Query.Text {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		like := "%" + likeEscaper.Replace(term) + "%"
		q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`, like, like)
	}
	query, args := q.OrderBy(taskPriorityRank + ", created_at DESC, id DESC").Build()
	return d.queryTasks(ctx, "list", query, args...)
}

func (d *Database) GetTask(ctx context.Context, userID string, id int64) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("tasks", taskColumns).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Build()
	t, err := scanTask(d.queryRow(ctx, query, args...))
	return t, wrapErr(EntityTask, "get", id, err)
}

func (d *Database) CreateTask(ctx context.Context, userID string, req contract.CreateTaskRequest) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	req = req.Normalized()
	if err := d.checkRef(ctx, "goals", req.GoalID, userID); err != nil {
		return models.Task{}, wrapErr(EntityTask, "create", 0, err)
	}
	row := d.queryRow(ctx,
		`INSERT INTO tasks (goal_id, user_id, title, description, status, progress, priority, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+taskColumns,
		req.GoalID.Arg(), userID, req.Title, req.Description.Arg(), string(*req.Status),
		*req.Progress, string(*req.Priority), timeArg(req.DueDate), d.timestamp())
	t, err := scanTask(row)
	return t, wrapErr(EntityTask, "create", 0, err)
}

// UpdateTask applies the fields present in req; a kanban move sends only status.
func (d *Database) UpdateTask(ctx context.Context, userID string, id int64, req contract.UpdateTaskRequest) (models.Task, error) {
	q := newUpdate("tasks")
	if req.GoalID.Set {
		q.Set("goal_id", req.GoalID.Arg())
	}
	if req.Title != nil {
		q.Set("title", strings.TrimSpace(*req.Title))
	}
	if req.Description.Set {
		q.Set("description", req.Description.Arg())
	}
	if req.Status != nil {
		q.Set("status", string(*req.Status))
	}
	if req.Progress != nil {
		q.Set("progress", *req.Progress)
	}
	if req.Priority != nil {
		q.Set("priority", string(*req.Priority))
	}
	if req.DueDate.Set {
		q.Set("due_date", timeArg(req.DueDate))
	}
	if q.Empty() {
		return d.GetTask(ctx, userID, id)
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := d.checkRef(ctx, "goals", req.GoalID, userID); err != nil {
		return models.Task{}, wrapErr(EntityTask, "update", id, err)
	}
	query, args := q.Build(id, userID, taskColumns)
	t, err := scanTask(d.queryRow(ctx, query, args...))
	return t, wrapErr(EntityTask, "update", id, err)
}

func (d *Database) DeleteTask(ctx context.Context, userID string, id int64) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	res, err := d.exec(ctx, "DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return wrapErr(EntityTask, "delete", id, err)
	}
	return wrapErr(EntityTask, "delete", id, requireAffected(res))
}
