package formatter

import (
	"fmt"
	"strings"

	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// FormatBoard formats an urgency-ordered task board.
func FormatBoard(resp *contract.BoardResponse) string {
	if len(resp.Tasks) == 0 {
		return Dim("No active tasks.")
	}

	headers := []string{"TASK", "STATUS", "DUE", "URGENCY", "REMAINING"}
	rows := make([][]string, 0, len(resp.Tasks))
	for _, bt := range resp.Tasks {
		rows = append(rows, []string{
			Bold(bt.Task.Title),
			StatusPill(bt.Task.Status),
			FormatDate(bt.Task.DueDate),
			UrgencyLabel(bt.Urgency),
			FormatDaysRemaining(bt.DaysRemaining),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d tasks, evaluated on %s", len(resp.Tasks), resp.GeneratedAt.Format("2006-01-02"))))
	return b.String()
}

// FormatBacklog lists an objective's unattached tasks.
func FormatBacklog(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("Backlog is empty.")
	}

	headers := []string{"TASK", "DUE", "CREATED"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			StyleFg.Render(t.Title),
			FormatDate(t.DueDate),
			Dim(t.CreatedAt.Format("2006-01-02")),
		})
	}
	return RenderTable(headers, rows)
}
