// Package report renders sprint reports as PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

const dateLayout = "Jan 2, 2006"

// SprintReport renders one sprint with its goals, task counts and retrospectives.
func SprintReport(sprint models.Sprint, goals []models.Goal, summary models.SprintSummary, retros []models.Retrospective) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(sprint.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Sprint Report: %s", sprint.Title)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s - %s  (%s)",
		sprint.StartDate.Format(dateLayout), sprint.EndDate.Format(dateLayout), sprint.Status))
	pdf.Ln(12)

	// Goals
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Goals (%d/%d completed, %d%% average)",
		summary.CompletedGoals, summary.TotalGoals, summary.AverageProgress))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 12)
	if len(goals) == 0 {
		pdf.Cell(0, 8, "  - No goals assigned.")
		pdf.Ln(8)
	}
	for _, g := range goals {
		mark := "[ ]"
		if g.Status == models.GoalCompleted {
			mark = "[x]"
		}
		pdf.Cell(0, 7, tr(fmt.Sprintf("  %s %s  %d%%", mark, g.Title, g.Progress)))
		pdf.Ln(7)
		if desc := util.Deref(g.Description); desc != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, tr("      "+desc), "", "", false)
			pdf.SetFont("Arial", "", 12)
		}
	}
	pdf.Ln(4)

	// Tasks
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Tasks")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 12)
	counts := make([]string, 0, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		counts = append(counts, fmt.Sprintf("%s: %d", strings.ReplaceAll(string(s), "_", " "), summary.TasksByStatus[s]))
	}
	pdf.Cell(0, 7, "  "+strings.Join(counts, "   "))
	pdf.Ln(12)

	if len(retros) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Retrospectives")
		pdf.Ln(9)
		for _, r := range retros {
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, 7, tr(fmt.Sprintf("[%s] %s", r.CreatedAt.Format(dateLayout), r.Summary)), "", "", false)
			pdf.SetFont("Arial", "", 11)
			pdf.MultiCell(0, 6, tr(r.Content), "", "", false)
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sprint report: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename is the download name for a sprint's report.
func Filename(sprint models.Sprint) string {
	return fmt.Sprintf("sprint_%d_%s.pdf", sprint.ID, sprint.StartDate.Format("2006-01-02"))
}
