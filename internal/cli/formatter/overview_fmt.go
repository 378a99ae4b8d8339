package formatter

import (
	"fmt"
	"strings"

	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
)

const overviewProgressBarWidth = 10

// FormatObjectiveOverview renders the derived picture of one objective:
// headline numbers, then one row per key result.
func FormatObjectiveOverview(o *contract.ObjectiveOverview) string {
	var b strings.Builder

	title := Bold(o.Objective.Title)
	if o.Overdue {
		title += " " + StyleRed.Render("● OVERDUE")
	}
	b.WriteString(title + "\n")

	if o.ResponsibleName != "" {
		b.WriteString(Dim("Responsible: ") + StyleFg.Render(o.ResponsibleName) + "\n")
	}
	b.WriteString(Dim("Due: ") + FormatDate(o.Objective.DueDate) + "\n\n")

	d := o.Derivation
	b.WriteString(fmt.Sprintf("Tasks  %s\n", RenderProgress(d.ProgressByTasks, overviewProgressBarWidth)))
	b.WriteString(fmt.Sprintf("KRs    %s\n", RenderProgress(d.KRCompletionRate, overviewProgressBarWidth)))
	b.WriteString(fmt.Sprintf("%s open, %s overdue\n\n",
		StyleFg.Render(fmt.Sprintf("%d", d.OpenTasksCount)),
		StyleRed.Render(fmt.Sprintf("%d", d.OverdueTasksCount))))

	headers := []string{"KEY RESULT", "STATUS", "PROGRESS", "TASKS", "DUE"}
	rows := make([][]string, 0, len(o.KeyResults))
	for _, kv := range o.KeyResults {
		rows = append(rows, []string{
			StyleFg.Render(kv.KeyResult.Title),
			KRStatusPill(kv.Status),
			RenderProgress(kv.Progress, overviewProgressBarWidth),
			Dim(fmt.Sprintf("%d/%d", kv.DoneCount, kv.TaskCount)),
			FormatDate(kv.KeyResult.DueDate),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if n := len(o.Backlog); n > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d tasks in the backlog", n)))
	}

	return RenderBox(o.Objective.Title, b.String())
}
