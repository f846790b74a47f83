package database

import (
	"context"
	"math"

	"github.com/akyairhashvil/momentum/internal/models"
)

// SprintSummary counts the sprint's goals and the tasks attached to them.
func (d *Database) SprintSummary(ctx context.Context, userID string, sprintID int64) (models.SprintSummary, error) {
	summary := models.SprintSummary{SprintID: sprintID, TasksByStatus: map[models.TaskStatus]int{}}
	for _, s := range models.TaskStatuses {
		summary.TasksByStatus[s] = 0
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	ok, err := d.ownsRow(ctx, "sprints", sprintID, userID)
	if err != nil {
		return summary, wrapErr(EntitySprint, "summary", sprintID, err)
	}
	if !ok {
		return summary, wrapErr(EntitySprint, "summary", sprintID, ErrNotFound)
	}

	var avg float64
	err = d.queryRow(ctx, `SELECT COUNT(1),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			CAST(COALESCE(AVG(progress), 0) AS REAL)
		FROM goals WHERE user_id = ? AND sprint_id = ?`,
		string(models.GoalCompleted), userID, sprintID).
		Scan(&summary.TotalGoals, &summary.CompletedGoals, &avg)
	if err != nil {
		return summary, wrapErr(EntitySprint, "summary", sprintID, err)
	}
	summary.AverageProgress = int(math.Round(avg))

	rows, err := d.query(ctx, `SELECT t.status, COUNT(1)
		FROM tasks t JOIN goals g ON g.id = t.goal_id
		WHERE t.user_id = ? AND g.sprint_id = ?
		GROUP BY t.status`, userID, sprintID)
	if err != nil {
		return summary, wrapErr(EntitySprint, "summary", sprintID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var status models.TaskStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return summary, wrapErr(EntitySprint, "summary", sprintID, err)
		}
		summary.TasksByStatus[status] = n
	}
	return summary, wrapErr(EntitySprint, "summary", sprintID, rows.Err())
}
