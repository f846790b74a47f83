package database

import (
	"context"
	"strings"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

const retrospectiveColumns = "id, sprint_id, user_id, summary, content, created_at"

func scanRetrospective(row scanner) (models.Retrospective, error) {
	var r models.Retrospective
	if err := row.Scan(&r.ID, &r.SprintID, &r.UserID, &r.Summary, &r.Content, &r.CreatedAt); err != nil {
		return r, err
	}
	utc(&r.CreatedAt)
	return r, nil
}

// ListRetrospectives returns the user's retrospectives, newest first.
func (d *Database) ListRetrospectives(ctx context.Context, userID string, f contract.RetrospectiveFilter) ([]models.Retrospective, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	q := newSelect("retrospectives", retrospectiveColumns).Where("user_id = ?", userID)
	if f.SprintID != nil {
		q.Where("sprint_id = ?", *f.SprintID)
	}
	query, args := q.OrderBy("created_at DESC, id DESC").Build()

	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityRetrospective, "list", 0, err)
	}
	defer rows.Close()

	retros := []models.Retrospective{}
	for rows.Next() {
		r, err := scanRetrospective(rows)
		if err != nil {
			return nil, wrapErr(EntityRetrospective, "list", 0, err)
		}
		retros = append(retros, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityRetrospective, "list", 0, err)
	}
	return retros, nil
}

func (d *Database) CreateRetrospective(ctx context.Context, userID string, req contract.CreateRetrospectiveRequest) (models.Retrospective, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := d.checkRef(ctx, "sprints", req.SprintID, userID); err != nil {
		return models.Retrospective{}, wrapErr(EntityRetrospective, "create", 0, err)
	}
	row := d.queryRow(ctx,
		`INSERT INTO retrospectives (sprint_id, user_id, summary, content, created_at)
		VALUES (?, ?, ?, ?, ?) RETURNING `+retrospectiveColumns,
		req.SprintID.Arg(), userID, strings.TrimSpace(req.Summary), req.Content, d.timestamp())
	r, err := scanRetrospective(row)
	return r, wrapErr(EntityRetrospective, "create", 0, err)
}
