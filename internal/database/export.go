package database

import (
	"context"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
)

// Export gathers every sprint, goal, task and retrospective owned by the user.
func (d *Database) Export(ctx context.Context, userID string) (models.Export, error) {
	var (
		out models.Export
		err error
	)
	out.ExportedAt = d.timestamp()
	if out.User, err = d.GetUser(ctx, userID); err != nil {
		return out, err
	}
	if out.Sprints, err = d.ListSprints(ctx, userID); err != nil {
		return out, err
	}
	if out.Goals, err = d.ListGoals(ctx, userID, contract.GoalFilter{}); err != nil {
		return out, err
	}
	if out.Tasks, err = d.ListTasks(ctx, userID, contract.TaskFilter{}); err != nil {
		return out, err
	}
	if out.Retrospectives, err = d.ListRetrospectives(ctx, userID, contract.RetrospectiveFilter{}); err != nil {
		return out, err
	}
	return out, nil
}
