package analytics

import (
	"testing"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardFixture(today time.Time) ([]*domain.Objective, map[string]string) {
	people := map[string]string{"p1": "Ana", "p2": "Bruno"}

	growth := testutil.NewObjective("grow revenue",
		testutil.WithObjectiveDueDate(today.AddDate(0, 0, -1)),
		testutil.WithObjectiveCreatedAt(testutil.Date(2024, time.January, 10)),
		testutil.WithKeyResults(
			testutil.NewKeyResult("sign customers", testutil.WithTasks(
				testutil.DoneTask("demo calls", testutil.Date(2024, time.March, 3),
					testutil.WithCreatedAt(testutil.Date(2024, time.March, 1)),
					testutil.WithResponsible("p1")),
				testutil.NewTask("follow-ups",
					testutil.WithDueDate(today.AddDate(0, 0, -2)),
					testutil.WithResponsible("p1")),
				testutil.NewTask("proposals", testutil.WithResponsible("p2")),
			)),
		),
	)
	platform := testutil.NewObjective("rebuild platform",
		testutil.WithObjectiveCreatedAt(testutil.Date(2024, time.April, 2)),
		testutil.WithKeyResults(
			testutil.NewKeyResult("migrate services", testutil.WithTasks(
				testutil.DoneTask("inventory", testutil.Date(2024, time.March, 9),
					testutil.WithCreatedAt(testutil.Date(2024, time.March, 5)),
					testutil.WithResponsible("p2")),
			)),
		),
	)

	return []*domain.Objective{growth, platform}, people
}

func TestBuild_AllSlicesPopulated(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	objs, people := dashboardFixture(today)

	d := Build(objs, people, Filter{}, today)

	require.Len(t, d.Workload, 2)
	assert.Equal(t, WorkloadRow{Responsible: "Ana", Todo: 1, Done: 1}, d.Workload[0])
	assert.Equal(t, WorkloadRow{Responsible: "Bruno", Todo: 1, Done: 1}, d.Workload[1])

	require.Len(t, d.CompletedByResponsible, 2)
	assert.Equal(t, StatusHistogram{Todo: 2, Done: 2}, d.StatusHistogram)

	require.Len(t, d.OpenTasksByObjective, 1)
	assert.Equal(t, ObjectiveOpenTasks{Objective: "grow revenue", Open: 2, Overdue: 1}, d.OpenTasksByObjective[0])

	require.Len(t, d.CriticalObjectives, 1)
	assert.Equal(t, "grow revenue", d.CriticalObjectives[0].Title)
	assert.True(t, d.CriticalObjectives[0].Overdue)

	require.Len(t, d.SuccessRateByCycle, 2)
	assert.Equal(t, "Q1 2024", d.SuccessRateByCycle[0].Cycle)
	assert.Zero(t, d.SuccessRateByCycle[0].Achieved)
	assert.Equal(t, "Q2 2024", d.SuccessRateByCycle[1].Cycle)
	assert.Equal(t, 1, d.SuccessRateByCycle[1].Achieved)

	assert.Equal(t, AdherenceHistogram{OnTime: 1, Late: 1}, d.DeadlineAdherence)

	require.Len(t, d.LeadTimeByPeriod, 1)
	assert.Equal(t, PeriodLeadTime{Period: "2024-03", Completed: 2, AvgDays: 3}, d.LeadTimeByPeriod[0])

	require.Len(t, d.ThroughputByPeriod, 1)
	assert.Equal(t, PeriodCount{Period: "2024-03", Count: 2}, d.ThroughputByPeriod[0])
}

func TestBuild_FilterByResponsible(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	objs, people := dashboardFixture(today)

	d := Build(objs, people, Filter{ResponsibleID: "p1"}, today)

	// Only the growth objective has Ana's tasks; the platform objective is
	// dropped from every slice for this pass.
	require.Len(t, d.Workload, 1)
	assert.Equal(t, "Ana", d.Workload[0].Responsible)
	assert.Equal(t, StatusHistogram{Todo: 1, Done: 1}, d.StatusHistogram)
	require.Len(t, d.OpenTasksByObjective, 1)
	assert.Equal(t, "grow revenue", d.OpenTasksByObjective[0].Objective)
	require.Len(t, d.SuccessRateByCycle, 1)
	assert.Equal(t, "Q1 2024", d.SuccessRateByCycle[0].Cycle)
}

func TestBuild_FilterLeavesInputUntouched(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	objs, people := dashboardFixture(today)
	tasksBefore := len(objs[0].AllTasks())

	Build(objs, people, Filter{ResponsibleID: "p2"}, today)

	assert.Equal(t, tasksBefore, len(objs[0].AllTasks()), "filtering must not mutate the snapshot")
}

func TestBuild_DeterministicAcrossInvocations(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	objs, people := dashboardFixture(today)

	first := Build(objs, people, Filter{}, today)
	second := Build(objs, people, Filter{}, today)

	assert.Equal(t, first, second)
}

func TestBuild_EmptyForest(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)

	d := Build(nil, nil, Filter{}, today)

	assert.Empty(t, d.Workload)
	assert.Empty(t, d.CriticalObjectives)
	assert.Equal(t, StatusHistogram{}, d.StatusHistogram)
	assert.Equal(t, AdherenceHistogram{}, d.DeadlineAdherence)
}
