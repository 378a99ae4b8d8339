package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/require"
)

// env bundles every service over one in-memory database.
type env struct {
	db         *sql.DB
	people     repository.PersonRepo
	objectives repository.ObjectiveRepo
	krRepo     repository.KeyResultRepo
	taskRepo   repository.TaskRepo

	persons   PersonService
	objSvc    ObjectiveService
	krSvc     KeyResultService
	taskSvc   TaskService
	board     BoardService
	dashboard DashboardService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)

	e := &env{
		db:         database,
		people:     repository.NewSQLitePersonRepo(database),
		objectives: repository.NewSQLiteObjectiveRepo(database),
		krRepo:     repository.NewSQLiteKeyResultRepo(database),
		taskRepo:   repository.NewSQLiteTaskRepo(database),
	}
	e.persons = NewPersonService(e.people)
	e.objSvc = NewObjectiveService(e.objectives, e.taskRepo, e.people)
	e.krSvc = NewKeyResultService(e.krRepo, e.taskRepo)
	e.taskSvc = NewTaskService(e.taskRepo, e.krSvc)
	e.board = NewBoardService(e.taskRepo)
	e.dashboard = NewDashboardService(e.objectives, e.people)
	return e
}

// seedObjective persists a person and an objective owned by them.
func (e *env) seedObjective(t *testing.T, title string) (*domain.Person, *domain.Objective) {
	t.Helper()
	ctx := context.Background()

	owner := testutil.NewPerson("Ana", "acme")
	require.NoError(t, e.people.Create(ctx, owner))

	obj := testutil.NewObjective(title, testutil.WithObjectiveResponsible(owner.ID))
	require.NoError(t, e.objectives.Create(ctx, obj))
	return owner, obj
}

// seedKR persists a key result under the objective.
func (e *env) seedKR(t *testing.T, objectiveID, title string) *domain.KeyResult {
	t.Helper()
	kr := testutil.NewKeyResult(title)
	kr.ObjectiveID = objectiveID
	require.NoError(t, e.krRepo.Create(context.Background(), &kr))
	return &kr
}
