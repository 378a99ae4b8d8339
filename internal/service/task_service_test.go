package service

import (
	"context"
	"testing"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create_DefaultsByAttachment(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	attached := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, attached))
	assert.NotEmpty(t, attached.ID)
	assert.Equal(t, domain.TaskTodo, attached.Status)

	loose := &domain.Task{Title: "Idea", ObjectiveID: obj.ID}
	require.NoError(t, e.taskSvc.Create(ctx, loose))
	assert.Equal(t, domain.TaskBacklog, loose.Status)
}

func TestTaskService_MarkDone_StampsAndRecomputesKR(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))

	fetched, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, fetched.Status)
	require.NotNil(t, fetched.CompletedAt)

	// The only task is done, so the KR snapshot must read done too.
	krNow, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRDone, krNow.Status)
	assert.NotNil(t, krNow.CompletedAt)
}

func TestTaskService_MarkDone_Idempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))

	first, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))

	second, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt), "second MarkDone must not move the timestamp")
}

func TestTaskService_Reopen_ClearsKRCompletion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))
	require.NoError(t, e.taskSvc.Reopen(ctx, task.ID))

	fetched, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, fetched.Status)
	assert.Nil(t, fetched.CompletedAt)

	krNow, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRTodo, krNow.Status)
	assert.Nil(t, krNow.CompletedAt, "regressing away from done clears the stored timestamp")
}

func TestTaskService_MoveToKR_PromotesBacklogTask(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Idea", ObjectiveID: obj.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MoveToKR(ctx, task.ID, kr.ID))

	fetched, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.KRID)
	assert.Equal(t, kr.ID, *fetched.KRID)
	assert.Equal(t, domain.TaskTodo, fetched.Status)
}

func TestTaskService_MoveToKR_RecomputesBothKRs(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	source := e.seedKR(t, obj.ID, "Source")
	target := e.seedKR(t, obj.ID, "Target")

	done := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &source.ID}
	require.NoError(t, e.taskSvc.Create(ctx, done))
	require.NoError(t, e.taskSvc.MarkDone(ctx, done.ID))

	open := &domain.Task{Title: "Review", ObjectiveID: obj.ID, KRID: &source.ID}
	require.NoError(t, e.taskSvc.Create(ctx, open))

	// Moving the open task away leaves the source all-done and starts the target.
	require.NoError(t, e.taskSvc.MoveToKR(ctx, open.ID, target.ID))

	sourceNow, err := e.krSvc.GetByID(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRDone, sourceNow.Status)

	targetNow, err := e.krSvc.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRTodo, targetNow.Status)
}

func TestTaskService_MoveToBacklog_DropsCompletion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))
	require.NoError(t, e.taskSvc.MoveToBacklog(ctx, task.ID))

	fetched, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.KRID)
	assert.Equal(t, domain.TaskBacklog, fetched.Status)
	assert.Nil(t, fetched.CompletedAt)

	// The emptied KR falls back to todo.
	krNow, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRTodo, krNow.Status)
}

func TestTaskService_Delete_RecomputesKR(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	done := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, done))
	require.NoError(t, e.taskSvc.MarkDone(ctx, done.ID))

	open := &domain.Task{Title: "Review", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, open))
	require.NoError(t, e.taskSvc.Delete(ctx, open.ID))

	krNow, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRDone, krNow.Status)
}

func TestTaskService_Create_PreservesExplicitStatus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := testutil.NewTask("Build", testutil.WithTaskStatus(domain.TaskInProgress))
	task.ObjectiveID = obj.ID
	task.KRID = &kr.ID
	task.ID = ""
	require.NoError(t, e.taskSvc.Create(ctx, &task))

	fetched, err := e.taskSvc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, fetched.Status)

	// An in-progress task promotes its KR on the very first recompute.
	krNow, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRInProgress, krNow.Status)
}
