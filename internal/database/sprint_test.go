package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/testutil"
	"github.com/akyairhashvil/momentum/internal/util"
)

func TestSprintCRUD(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t).WithSprints(2)
	db, userID := b.Build(), b.UserID()

	sprints, err := db.ListSprints(ctx, userID)
	if err != nil {
		t.Fatalf("ListSprints failed: %v", err)
	}
	if len(sprints) != 2 {
		t.Fatalf("expected 2 sprints, got %d", len(sprints))
	}
	if sprints[0].Title != "Sprint 2" {
		t.Fatalf("expected newest start first, got %q", sprints[0].Title)
	}
	if sprints[0].Status != models.SprintActive {
		t.Fatalf("expected default status active, got %q", sprints[0].Status)
	}
	if !sprints[1].StartDate.Equal(testEpoch) || sprints[1].StartDate.Location() != time.UTC {
		t.Fatalf("start date = %v, want %v in UTC", sprints[1].StartDate, testEpoch)
	}

	id := b.SprintIDs()[0]
	status := models.SprintCompleted
	updated, err := db.UpdateSprint(ctx, userID, id, contract.UpdateSprintRequest{
		Title:  util.Ptr("  Renamed "),
		Status: &status,
	})
	if err != nil {
		t.Fatalf("UpdateSprint failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.Status != models.SprintCompleted {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	same, err := db.UpdateSprint(ctx, userID, id, contract.UpdateSprintRequest{})
	if err != nil {
		t.Fatalf("empty UpdateSprint failed: %v", err)
	}
	if same.Title != updated.Title || same.Status != updated.Status || !same.EndDate.Equal(updated.EndDate) {
		t.Fatalf("empty update changed row: %+v vs %+v", same, updated)
	}
}

func TestSprintOwnership(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t).WithSprints(1)
	db := b.Build()
	other := createTestUser(t, ctx, db, "other@example.com")
	id := b.SprintIDs()[0]

	if _, err := db.GetSprint(ctx, other, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign sprint, got %v", err)
	}
	if _, err := db.UpdateSprint(ctx, other, id, contract.UpdateSprintRequest{Title: util.Ptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating foreign sprint, got %v", err)
	}
	list, err := db.ListSprints(ctx, other)
	if err != nil {
		t.Fatalf("ListSprints failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no sprints for other user, got %d", len(list))
	}
}

func TestGetActiveSprint(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	userID := createTestUser(t, ctx, db, "active@example.com")

	past := testutil.NewSprint(testEpoch.AddDate(0, 0, -30)).WithTitle("Past").Build()
	current := testutil.NewSprint(testEpoch.AddDate(0, 0, -2)).WithTitle("Current").Build()
	done := testutil.NewSprint(testEpoch.AddDate(0, 0, -1)).WithTitle("Done").WithStatus(models.SprintCompleted).Build()
	for _, req := range []contract.CreateSprintRequest{past, current, done} {
		if _, err := db.CreateSprint(ctx, userID, req); err != nil {
			t.Fatalf("CreateSprint failed: %v", err)
		}
	}

	got, err := db.GetActiveSprint(ctx, userID, testEpoch)
	if err != nil {
		t.Fatalf("GetActiveSprint failed: %v", err)
	}
	if got.Title != "Current" {
		t.Fatalf("expected Current, got %q", got.Title)
	}
	if _, err := db.GetActiveSprint(ctx, userID, testEpoch.AddDate(1, 0, 0)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound outside every window, got %v", err)
	}
}

func TestSprintSummary(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t).WithGoals(2)
	db, userID := b.Build(), b.UserID()
	sprintID, goals := b.SprintIDs()[0], b.GoalIDs()

	completed := models.GoalCompleted
	if _, err := db.UpdateGoal(ctx, userID, goals[0], contract.UpdateGoalRequest{Status: &completed, Progress: util.Ptr(100)}); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	if _, err := db.UpdateGoal(ctx, userID, goals[1], contract.UpdateGoalRequest{Progress: util.Ptr(25)}); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	for _, status := range []models.TaskStatus{models.TaskDone, models.TaskDone, models.TaskBlocked} {
		if _, err := db.CreateTask(ctx, userID, testutil.NewTask().ForGoal(goals[0]).WithStatus(status).Build()); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}
	if _, err := db.CreateTask(ctx, userID, testutil.NewTask().WithTitle("loose").Build()); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	summary, err := db.SprintSummary(ctx, userID, sprintID)
	if err != nil {
		t.Fatalf("SprintSummary failed: %v", err)
	}
	if summary.TotalGoals != 2 || summary.CompletedGoals != 1 {
		t.Fatalf("goal counts = %d/%d, want 2/1", summary.TotalGoals, summary.CompletedGoals)
	}
	if summary.AverageProgress != 63 {
		t.Fatalf("AverageProgress = %d, want 63", summary.AverageProgress)
	}
	if summary.TasksByStatus[models.TaskDone] != 2 || summary.TasksByStatus[models.TaskBlocked] != 1 || summary.TasksByStatus[models.TaskTodo] != 0 {
		t.Fatalf("TasksByStatus = %v", summary.TasksByStatus)
	}

	if _, err := db.SprintSummary(ctx, userID, sprintID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing sprint, got %v", err)
	}
}
