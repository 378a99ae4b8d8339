package service

import (
	"context"
	"testing"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyResultService_Create_Defaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")

	kr := &domain.KeyResult{ObjectiveID: obj.ID, Title: "Ship beta"}
	require.NoError(t, e.krSvc.Create(ctx, kr))
	assert.NotEmpty(t, kr.ID)
	assert.Equal(t, domain.KRTodo, kr.Status)
}

func TestKeyResultService_Recompute_EmptyKRStaysTodo(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	st, err := e.krSvc.Recompute(ctx, kr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KRTodo, st)
}

func TestKeyResultService_Recompute_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.krSvc.Recompute(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKeyResultService_Recompute_KeepsExistingStamp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, obj := e.seedObjective(t, "Launch")
	kr := e.seedKR(t, obj.ID, "Ship beta")

	task := &domain.Task{Title: "Build", ObjectiveID: obj.ID, KRID: &kr.ID}
	require.NoError(t, e.taskSvc.Create(ctx, task))
	require.NoError(t, e.taskSvc.MarkDone(ctx, task.ID))

	stamped, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	require.NotNil(t, stamped.CompletedAt)

	// A second recompute over an unchanged task set leaves the stamp alone.
	_, err = e.krSvc.Recompute(ctx, kr.ID)
	require.NoError(t, err)

	after, err := e.krSvc.GetByID(ctx, kr.ID)
	require.NoError(t, err)
	assert.True(t, stamped.CompletedAt.Equal(*after.CompletedAt))
}
