package formatter

import (
	"testing"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/analytics"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatDashboard_AllSections(t *testing.T) {
	resp := &contract.DashboardResponse{
		GeneratedAt: testutil.Date(2024, time.March, 10),
		Company:     "acme",
		Dashboard: &analytics.Dashboard{
			Workload: []analytics.WorkloadRow{
				{Responsible: "Ana", Todo: 2, InProgress: 1, Done: 3},
			},
			CompletedByResponsible: []analytics.ResponsibleCount{
				{Responsible: "Ana", Done: 3},
			},
			StatusHistogram:      analytics.StatusHistogram{Todo: 2, InProgress: 1, Done: 3},
			OpenTasksByObjective: []analytics.ObjectiveOpenTasks{{Objective: "Launch", Open: 3, Overdue: 1}},
			CriticalObjectives: []analytics.CriticalObjective{
				{Title: "Launch", Overdue: true, OverdueTasks: 1, OpenTasks: 3, Progress: 40},
			},
			SuccessRateByCycle: []analytics.CycleRate{{Cycle: "Q1 2024", Total: 2, Achieved: 1, Rate: 50}},
			DeadlineAdherence:  analytics.AdherenceHistogram{OnTime: 1, Late: 1},
			LeadTimeByPeriod:   []analytics.PeriodLeadTime{{Period: "2024-03", Completed: 3, AvgDays: 4}},
			ThroughputByPeriod: []analytics.PeriodCount{{Period: "2024-03", Count: 3}},
		},
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "WORKLOAD")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "CRITICAL OBJECTIVES")
	assert.Contains(t, out, "Q1 2024")
	assert.Contains(t, out, "1 on time")
	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "4d")
	assert.Contains(t, out, "Company acme, evaluated on 2024-03-10")
}

func TestFormatDashboard_EmptySlicesCollapse(t *testing.T) {
	resp := &contract.DashboardResponse{
		GeneratedAt: testutil.Date(2024, time.March, 10),
		Company:     "acme",
		Dashboard:   &analytics.Dashboard{},
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "No assigned tasks")
	assert.Contains(t, out, "Nothing completed yet")
	assert.Contains(t, out, "Nothing critical")
	assert.Contains(t, out, "No completed tasks")
}
