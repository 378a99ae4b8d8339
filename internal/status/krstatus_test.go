package status

import (
	"testing"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDeriveKR_EmptyTaskList(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)

	got := DeriveKR(nil, nil, today)

	assert.Equal(t, domain.KRTodo, got.Status)
	assert.False(t, got.StampCompletedAt)
	assert.False(t, got.ClearCompletedAt)
}

func TestDeriveKR_AllDone(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	tasks := []domain.Task{
		testutil.DoneTask("a", today),
		testutil.DoneTask("b", today),
	}

	got := DeriveKR(tasks, nil, today)

	assert.Equal(t, domain.KRDone, got.Status)
	assert.True(t, got.StampCompletedAt, "first completion should stamp a timestamp")
	assert.False(t, got.ClearCompletedAt)
}

func TestDeriveKR_AllDoneWithExistingTimestamp(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	stamped := testutil.Date(2024, time.March, 1)
	tasks := []domain.Task{testutil.DoneTask("a", today)}

	got := DeriveKR(tasks, &stamped, today)

	assert.Equal(t, domain.KRDone, got.Status)
	assert.False(t, got.StampCompletedAt, "existing timestamp must not be re-stamped")
	assert.False(t, got.ClearCompletedAt)
}

func TestDeriveKR_RegressionClearsTimestamp(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	stamped := testutil.Date(2024, time.March, 1)
	tasks := []domain.Task{
		testutil.DoneTask("a", today),
		testutil.NewTask("reopened"),
	}

	got := DeriveKR(tasks, &stamped, today)

	assert.Equal(t, domain.KRInProgress, got.Status)
	assert.False(t, got.StampCompletedAt)
	assert.True(t, got.ClearCompletedAt, "regressing away from done should clear the timestamp")
}

func TestDeriveKR_StatusRules(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	overdueDate := today.AddDate(0, 0, -2)

	tests := []struct {
		name  string
		tasks []domain.Task
		want  domain.KRStatus
	}{
		{
			name: "all todo stays todo",
			tasks: []domain.Task{
				testutil.NewTask("a"),
				testutil.NewTask("b"),
			},
			want: domain.KRTodo,
		},
		{
			name: "any in-progress task promotes",
			tasks: []domain.Task{
				testutil.NewTask("a"),
				testutil.NewTask("b", testutil.WithTaskStatus(domain.TaskInProgress)),
			},
			want: domain.KRInProgress,
		},
		{
			name: "an overdue todo task promotes on its own",
			tasks: []domain.Task{
				testutil.NewTask("a", testutil.WithDueDate(overdueDate)),
				testutil.NewTask("b"),
			},
			want: domain.KRInProgress,
		},
		{
			name: "partial completion promotes",
			tasks: []domain.Task{
				testutil.DoneTask("a", today),
				testutil.NewTask("b"),
			},
			want: domain.KRInProgress,
		},
		{
			name: "overdue but done task does not promote",
			tasks: []domain.Task{
				testutil.NewTask("a"),
				{
					ID:     "x",
					Title:  "late but finished",
					Status: domain.TaskDone,
					DueDate: func() *time.Time {
						d := overdueDate
						return &d
					}(),
					CompletedAt: &today,
				},
			},
			want: domain.KRInProgress, // promoted by partial completion, not by the done task's date
		},
		{
			name: "backlog tasks alone stay todo",
			tasks: []domain.Task{
				testutil.NewTask("a", testutil.WithTaskStatus(domain.TaskBacklog)),
				testutil.NewTask("b"),
			},
			want: domain.KRTodo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveKR(tt.tasks, nil, today)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestProgress(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)

	assert.Zero(t, Progress(nil), "empty task list has zero progress")

	tasks := []domain.Task{
		testutil.DoneTask("a", today),
		testutil.DoneTask("b", today),
		testutil.NewTask("c"),
		testutil.NewTask("d"),
	}
	assert.InDelta(t, 50.0, Progress(tasks), 0.0001)
}

func TestProgress_Bounds(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)

	lists := [][]domain.Task{
		nil,
		{testutil.NewTask("a")},
		{testutil.DoneTask("a", today)},
		{testutil.DoneTask("a", today), testutil.NewTask("b"), testutil.NewTask("c")},
	}
	for _, tasks := range lists {
		p := Progress(tasks)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
	}
}

func TestProgress_MonotonicUnderCompletion(t *testing.T) {
	today := testutil.Date(2024, time.March, 15)
	tasks := []domain.Task{
		testutil.NewTask("a"),
		testutil.NewTask("b", testutil.WithTaskStatus(domain.TaskInProgress)),
		testutil.DoneTask("c", today),
	}
	base := Progress(tasks)

	for i := range tasks {
		if tasks[i].IsDone() {
			continue
		}
		flipped := make([]domain.Task, len(tasks))
		copy(flipped, tasks)
		flipped[i].Status = domain.TaskDone
		flipped[i].CompletedAt = &today

		assert.GreaterOrEqual(t, Progress(flipped), base,
			"completing a task must never decrease progress")
	}
}
