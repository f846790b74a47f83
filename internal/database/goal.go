package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

const goalColumns = "id, user_id, sprint_id, title, description, type, status, progress, date, created_at"

func scanGoal(row scanner) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.SprintID, &g.Title, &g.Description,
		&g.Type, &g.Status, &g.Progress, &g.Date, &g.CreatedAt)
	if err != nil {
		return g, err
	}
	utc(&g.CreatedAt)
	utcPtr(&g.Date)
	return g, nil
}

func (d *Database) queryGoals(ctx context.Context, op string, query string, args ...interface{}) ([]models.Goal, error) {
	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityGoal, op, 0, err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, wrapErr(EntityGoal, op, 0, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityGoal, op, 0, err)
	}
	return goals, nil
}

// ListGoals returns the user's goals matching f, newest first.
func (d *Database) ListGoals(ctx context.Context, userID string, f contract.GoalFilter) ([]models.Goal, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	q := newSelect("goals", goalColumns).Where("user_id = ?", userID)
	if f.Type != nil {
		q.Where("type = ?", string(*f.Type))
	}
	if f.SprintID != nil {
		q.Where("sprint_id = ?", *f.SprintID)
	}
	if f.Date != nil {
		day := f.Date.UTC()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		q.Where("date >= ?", day).Where("date < ?", day.AddDate(0, 0, 1))
	}
	query, args := q.OrderBy("created_at DESC, id DESC").Build()
	return d.queryGoals(ctx, "list", query, args...)
}

func (d *Database) GetGoal(ctx context.Context, userID string, id int64) (models.Goal, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("goals", goalColumns).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Build()
	g, err := scanGoal(d.queryRow(ctx, query, args...))
	return g, wrapErr(EntityGoal, "get", id, err)
}

func (d *Database) CreateGoal(ctx context.Context, userID string, req contract.CreateGoalRequest) (models.Goal, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	req = req.Normalized()
	if err := d.checkRef(ctx, "sprints", req.SprintID, userID); err != nil {
		return models.Goal{}, wrapErr(EntityGoal, "create", 0, err)
	}
	row := d.queryRow(ctx,
		`INSERT INTO goals (user_id, sprint_id, title, description, type, status, progress, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING `+goalColumns,
		userID, req.SprintID.Arg(), req.Title, req.Description.Arg(), string(req.Type),
		string(*req.Status), *req.Progress, timeArg(req.Date), d.timestamp())
	g, err := scanGoal(row)
	return g, wrapErr(EntityGoal, "create", 0, err)
}

// UpdateGoal applies the fields present in req. Explicit nulls clear nullable columns.
func (d *Database) UpdateGoal(ctx context.Context, userID string, id int64, req contract.UpdateGoalRequest) (models.Goal, error) {
	q := newUpdate("goals")
	if req.SprintID.Set {
		q.Set("sprint_id", req.SprintID.Arg())
	}
	if req.Title != nil {
		q.Set("title", strings.TrimSpace(*req.Title))
	}
	if req.Description.Set {
		q.Set("description", req.Description.Arg())
	}
	if req.Type != nil {
		q.Set("type", string(*req.Type))
	}
	if req.Status != nil {
		q.Set("status", string(*req.Status))
	}
	if req.Progress != nil {
		q.Set("progress", *req.Progress)
	}
	if req.Date.Set {
		q.Set("date", timeArg(req.Date))
	}
	if q.Empty() {
		return d.GetGoal(ctx, userID, id)
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := d.checkRef(ctx, "sprints", req.SprintID, userID); err != nil {
		return models.Goal{}, wrapErr(EntityGoal, "update", id, err)
	}
	query, args := q.Build(id, userID, goalColumns)
	g, err := scanGoal(d.queryRow(ctx, query, args...))
	return g, wrapErr(EntityGoal, "update", id, err)
}

// DeleteGoal removes a goal. Tasks still linked to it make the delete fail
// with ErrInvalidReference.
func (d *Database) DeleteGoal(ctx context.Context, userID string, id int64) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	res, err := d.exec(ctx, "DELETE FROM goals WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return wrapErr(EntityGoal, "delete", id, err)
	}
	return wrapErr(EntityGoal, "delete", id, requireAffected(res))
}
