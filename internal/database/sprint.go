package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

const sprintColumns = "id, user_id, title, start_date, end_date, status"

func scanSprint(row scanner) (models.Sprint, error) {
	var s models.Sprint
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.StartDate, &s.EndDate, &s.Status); err != nil {
		return s, err
	}
	utc(&s.StartDate, &s.EndDate)
	return s, nil
}

func (d *Database) querySprints(ctx context.Context, op string, query string, args ...interface{}) ([]models.Sprint, error) {
	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntitySprint, op, 0, err)
	}
	defer rows.Close()

	sprints := []models.Sprint{}
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, wrapErr(EntitySprint, op, 0, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntitySprint, op, 0, err)
	}
	return sprints, nil
}

// ListSprints returns the user's sprints, newest start first.
func (d *Database) ListSprints(ctx context.Context, userID string) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("sprints", sprintColumns).
		Where("user_id = ?", userID).
		OrderBy("start_date DESC, id DESC").
		Build()
	return d.querySprints(ctx, "list", query, args...)
}

func (d *Database) GetSprint(ctx context.Context, userID string, id int64) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("sprints", sprintColumns).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Build()
	s, err := scanSprint(d.queryRow(ctx, query, args...))
	return s, wrapErr(EntitySprint, "get", id, err)
}

// GetActiveSprint returns the active sprint whose window contains now.
func (d *Database) GetActiveSprint(ctx context.Context, userID string, now time.Time) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	now = contract.Normalize(now)
	query, args := newSelect("sprints", sprintColumns).
		Where("user_id = ?", userID).
		Where("status = ?", string(models.SprintActive)).
		Where("start_date <= ?", now).
		Where("end_date >= ?", now).
		OrderBy("start_date DESC, id DESC").
		Limit(1).
		Build()
	s, err := scanSprint(d.queryRow(ctx, query, args...))
	return s, wrapErr(EntitySprint, "get active", 0, err)
}

func (d *Database) CreateSprint(ctx context.Context, userID string, req contract.CreateSprintRequest) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	req = req.Normalized()
	var start, end time.Time
	if req.StartDate != nil {
		start = contract.Normalize(req.StartDate.Time)
	}
	if req.EndDate != nil {
		end = contract.Normalize(req.EndDate.Time)
	}
	row := d.queryRow(ctx,
		`INSERT INTO sprints (user_id, title, start_date, end_date, status) VALUES (?, ?, ?, ?, ?) RETURNING `+sprintColumns,
		userID, req.Title, start, end, string(*req.Status))
	s, err := scanSprint(row)
	return s, wrapErr(EntitySprint, "create", 0, err)
}

// UpdateSprint applies the fields present in req. An empty update returns the current row.
func (d *Database) UpdateSprint(ctx context.Context, userID string, id int64, req contract.UpdateSprintRequest) (models.Sprint, error) {
	q := newUpdate("sprints")
	if req.Title != nil {
		q.Set("title", strings.TrimSpace(*req.Title))
	}
	if req.StartDate != nil {
		q.Set("start_date", contract.Normalize(req.StartDate.Time))
	}
	if req.EndDate != nil {
		q.Set("end_date", contract.Normalize(req.EndDate.Time))
	}
	if req.Status != nil {
		q.Set("status", string(*req.Status))
	}
	if q.Empty() {
		return d.GetSprint(ctx, userID, id)
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := q.Build(id, userID, sprintColumns)
	s, err := scanSprint(d.queryRow(ctx, query, args...))
	return s, wrapErr(EntitySprint, "update", id, err)
}
