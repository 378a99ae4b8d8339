package analytics

import (
	"testing"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadTimeByPeriod_AveragesWholeDays(t *testing.T) {
	tasks := []domain.Task{
		testutil.DoneTask("quick", testutil.Date(2024, time.March, 3),
			testutil.WithCreatedAt(testutil.Date(2024, time.March, 1))), // 2 days
		testutil.DoneTask("slow", testutil.Date(2024, time.March, 9),
			testutil.WithCreatedAt(testutil.Date(2024, time.March, 5))), // 4 days
		testutil.NewTask("open", testutil.WithCreatedAt(testutil.Date(2024, time.March, 1))),
	}

	got := leadTimeByPeriod(tasks)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-03", got[0].Period)
	assert.Equal(t, 2, got[0].Completed)
	assert.Equal(t, 3, got[0].AvgDays)
}

func TestLeadTimeByPeriod_RoundsAverage(t *testing.T) {
	tasks := []domain.Task{
		testutil.DoneTask("a", testutil.Date(2024, time.April, 2),
			testutil.WithCreatedAt(testutil.Date(2024, time.April, 1))), // 1 day
		testutil.DoneTask("b", testutil.Date(2024, time.April, 10),
			testutil.WithCreatedAt(testutil.Date(2024, time.April, 8))), // 2 days
	}

	got := leadTimeByPeriod(tasks)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].AvgDays, "1.5 rounds up to 2")
}

func TestLeadTimeByPeriod_SplitsPeriodsChronologically(t *testing.T) {
	tasks := []domain.Task{
		testutil.DoneTask("feb", testutil.Date(2024, time.February, 20),
			testutil.WithCreatedAt(testutil.Date(2024, time.February, 15))),
		testutil.DoneTask("mar", testutil.Date(2024, time.March, 10),
			testutil.WithCreatedAt(testutil.Date(2024, time.March, 1))),
		testutil.DoneTask("jan", testutil.Date(2024, time.January, 5),
			testutil.WithCreatedAt(testutil.Date(2024, time.January, 2))),
	}

	got := leadTimeByPeriod(tasks)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-01", got[0].Period)
	assert.Equal(t, "2024-02", got[1].Period)
	assert.Equal(t, "2024-03", got[2].Period)
}

func TestThroughputByPeriod(t *testing.T) {
	tasks := []domain.Task{
		testutil.DoneTask("a", testutil.Date(2024, time.March, 3)),
		testutil.DoneTask("b", testutil.Date(2024, time.March, 28)),
		testutil.DoneTask("c", testutil.Date(2024, time.April, 1)),
		testutil.NewTask("open"),
	}

	got := throughputByPeriod(tasks)

	require.Len(t, got, 2)
	assert.Equal(t, PeriodCount{Period: "2024-03", Count: 2}, got[0])
	assert.Equal(t, PeriodCount{Period: "2024-04", Count: 1}, got[1])
}

func TestFlowReports_EmptyInput(t *testing.T) {
	assert.Empty(t, leadTimeByPeriod(nil))
	assert.Empty(t, throughputByPeriod(nil))
}
