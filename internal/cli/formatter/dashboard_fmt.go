package formatter

import (
	"fmt"
	"strings"

	"github.com/JPNeto01/okrplanner01-sub000/internal/analytics"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
)

const dashboardProgressBarWidth = 10

// FormatDashboard renders the full analytics dashboard, one section per
// report slice. Empty slices collapse to a dimmed placeholder so the
// section order stays stable.
func FormatDashboard(resp *contract.DashboardResponse) string {
	d := resp.Dashboard
	var b strings.Builder

	section(&b, "Workload", formatWorkload(d.Workload))
	section(&b, "Completed by responsible", formatCompleted(d.CompletedByResponsible))
	section(&b, "Task statuses", formatStatusHistogram(d.StatusHistogram))
	section(&b, "Open tasks by objective", formatOpenTasks(d.OpenTasksByObjective))
	section(&b, "Critical objectives", formatCritical(d.CriticalObjectives))
	section(&b, "Success rate by cycle", formatCycles(d.SuccessRateByCycle))
	section(&b, "Deadline adherence", formatAdherence(d.DeadlineAdherence))
	section(&b, "Lead time", formatLeadTime(d.LeadTimeByPeriod))
	section(&b, "Throughput", formatThroughput(d.ThroughputByPeriod))

	footer := Dim(fmt.Sprintf("Company %s, evaluated on %s", resp.Company, resp.GeneratedAt.Format("2006-01-02")))
	b.WriteString(footer + "\n")

	return b.String()
}

func section(b *strings.Builder, title, content string) {
	b.WriteString(Header(title) + "\n")
	b.WriteString(content)
	b.WriteString("\n\n")
}

func formatWorkload(rows []analytics.WorkloadRow) string {
	if len(rows) == 0 {
		return Dim("No assigned tasks.")
	}
	headers := []string{"RESPONSIBLE", "BACKLOG", "TODO", "IN PROGRESS", "DONE"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			Bold(r.Responsible),
			fmt.Sprintf("%d", r.Backlog),
			fmt.Sprintf("%d", r.Todo),
			fmt.Sprintf("%d", r.InProgress),
			StyleGreen.Render(fmt.Sprintf("%d", r.Done)),
		})
	}
	return RenderTable(headers, out)
}

func formatCompleted(rows []analytics.ResponsibleCount) string {
	if len(rows) == 0 {
		return Dim("Nothing completed yet.")
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{Bold(r.Responsible), StyleGreen.Render(fmt.Sprintf("%d", r.Done))})
	}
	return RenderTable([]string{"RESPONSIBLE", "DONE"}, out)
}

func formatStatusHistogram(h analytics.StatusHistogram) string {
	return fmt.Sprintf("%s backlog, %s to do, %s in progress, %s done",
		Dim(fmt.Sprintf("%d", h.Backlog)),
		StyleFg.Render(fmt.Sprintf("%d", h.Todo)),
		StyleYellow.Render(fmt.Sprintf("%d", h.InProgress)),
		StyleGreen.Render(fmt.Sprintf("%d", h.Done)))
}

func formatOpenTasks(rows []analytics.ObjectiveOpenTasks) string {
	if len(rows) == 0 {
		return Dim("No open tasks.")
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		overdue := Dim("0")
		if r.Overdue > 0 {
			overdue = StyleRed.Render(fmt.Sprintf("%d", r.Overdue))
		}
		out = append(out, []string{StyleFg.Render(r.Objective), fmt.Sprintf("%d", r.Open), overdue})
	}
	return RenderTable([]string{"OBJECTIVE", "OPEN", "OVERDUE"}, out)
}

func formatCritical(rows []analytics.CriticalObjective) string {
	if len(rows) == 0 {
		return StyleGreen.Render("Nothing critical.")
	}
	headers := []string{"OBJECTIVE", "OVERDUE", "LATE TASKS", "OPEN", "PROGRESS", "DUE"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		overdue := Dim("no")
		if r.Overdue {
			overdue = StyleRed.Render("yes")
		}
		out = append(out, []string{
			Bold(r.Title),
			overdue,
			fmt.Sprintf("%d", r.OverdueTasks),
			fmt.Sprintf("%d", r.OpenTasks),
			RenderProgress(r.Progress, dashboardProgressBarWidth),
			FormatDate(r.DueDate),
		})
	}
	return RenderTable(headers, out)
}

func formatCycles(rows []analytics.CycleRate) string {
	if len(rows) == 0 {
		return Dim("No objectives yet.")
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			StyleFg.Render(r.Cycle),
			fmt.Sprintf("%d/%d", r.Achieved, r.Total),
			RenderProgress(r.Rate, dashboardProgressBarWidth),
		})
	}
	return RenderTable([]string{"CYCLE", "ACHIEVED", "RATE"}, out)
}

func formatAdherence(h analytics.AdherenceHistogram) string {
	return fmt.Sprintf("%s on time, %s late, %s not yet due, %s without due date",
		StyleGreen.Render(fmt.Sprintf("%d", h.OnTime)),
		StyleRed.Render(fmt.Sprintf("%d", h.Late)),
		StyleFg.Render(fmt.Sprintf("%d", h.NotYetDue)),
		Dim(fmt.Sprintf("%d", h.NoDueDate)))
}

func formatLeadTime(rows []analytics.PeriodLeadTime) string {
	if len(rows) == 0 {
		return Dim("No completed tasks.")
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			StyleFg.Render(r.Period),
			fmt.Sprintf("%d", r.Completed),
			fmt.Sprintf("%dd", r.AvgDays),
		})
	}
	return RenderTable([]string{"PERIOD", "COMPLETED", "AVG LEAD TIME"}, out)
}

func formatThroughput(rows []analytics.PeriodCount) string {
	if len(rows) == 0 {
		return Dim("No completed tasks.")
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{StyleFg.Render(r.Period), StyleGreen.Render(fmt.Sprintf("%d", r.Count))})
	}
	return RenderTable([]string{"PERIOD", "DONE"}, out)
}
