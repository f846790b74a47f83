package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

func TestSprintReport(t *testing.T) {
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	sprint := models.Sprint{ID: 7, Title: "Launch – week one", StartDate: start, EndDate: start.AddDate(0, 0, 14), Status: models.SprintActive}
	goals := []models.Goal{
		{ID: 1, Title: "Ship beta", Status: models.GoalCompleted, Progress: 100},
		{ID: 2, Title: "Write docs", Status: models.GoalInProgress, Progress: 40, Description: util.Ptr("User guide and API reference")},
	}
	summary := models.SprintSummary{
		SprintID: 7, TotalGoals: 2, CompletedGoals: 1, AverageProgress: 70,
		TasksByStatus: map[models.TaskStatus]int{models.TaskDone: 3, models.TaskTodo: 1},
	}
	retros := []models.Retrospective{{Summary: "Went well", Content: "Focus blocks helped.\nMeetings did not.", CreatedAt: start.AddDate(0, 0, 13)}}

	out, err := SprintReport(sprint, goals, summary, retros)
	if err != nil {
		t.Fatalf("SprintReport failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", out[:8])
	}
}

func TestSprintReportEmpty(t *testing.T) {
	out, err := SprintReport(models.Sprint{Title: "Empty"}, nil, models.SprintSummary{}, nil)
	if err != nil {
		t.Fatalf("SprintReport failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected output")
	}
}

func TestFilename(t *testing.T) {
	s := models.Sprint{ID: 3, StartDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)}
	if got := Filename(s); got != "sprint_3_2024-01-08.pdf" {
		t.Fatalf("Filename = %q", got)
	}
}
