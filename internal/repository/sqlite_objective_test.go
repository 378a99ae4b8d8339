package repository

import (
	"context"
	"testing"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(db)
	repo := NewSQLiteObjectiveRepo(db)
	ctx := context.Background()

	owner := testutil.NewPerson("Ana", "acme")
	require.NoError(t, people.Create(ctx, owner))

	due := testutil.Date(2024, time.June, 30)
	obj := testutil.NewObjective("Grow revenue",
		testutil.WithObjectiveResponsible(owner.ID),
		testutil.WithObjectiveDueDate(due),
	)
	require.NoError(t, repo.Create(ctx, obj))

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj.ID, fetched.ID)
	assert.Equal(t, "Grow revenue", fetched.Title)
	assert.Equal(t, "acme", fetched.Company)
	assert.Equal(t, owner.ID, fetched.ResponsibleID)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, "2024-06-30", fetched.DueDate.Format("2006-01-02"))
	assert.Nil(t, fetched.CoordinatorID)
}

func TestObjectiveRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteObjectiveRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestObjectiveRepo_ListByCompany_ScopesTenant(t *testing.T) {
	db := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(db)
	repo := NewSQLiteObjectiveRepo(db)
	ctx := context.Background()

	ana := testutil.NewPerson("Ana", "acme")
	bruno := testutil.NewPerson("Bruno", "globex")
	require.NoError(t, people.Create(ctx, ana))
	require.NoError(t, people.Create(ctx, bruno))

	require.NoError(t, repo.Create(ctx, testutil.NewObjective("ours",
		testutil.WithObjectiveResponsible(ana.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewObjective("theirs",
		testutil.WithCompany("globex"), testutil.WithObjectiveResponsible(bruno.ID))))

	got, err := repo.ListByCompany(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ours", got[0].Title)
}

func TestObjectiveRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	people := NewSQLitePersonRepo(db)
	repo := NewSQLiteObjectiveRepo(db)
	ctx := context.Background()

	owner := testutil.NewPerson("Ana", "acme")
	require.NoError(t, people.Create(ctx, owner))

	obj := testutil.NewObjective("Old title", testutil.WithObjectiveResponsible(owner.ID))
	require.NoError(t, repo.Create(ctx, obj))

	obj.Title = "New title"
	due := testutil.Date(2024, time.September, 1)
	obj.DueDate = &due
	require.NoError(t, repo.Update(ctx, obj))

	fetched, err := repo.GetByID(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", fetched.Title)
	require.NotNil(t, fetched.DueDate)
}

func TestObjectiveRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteObjectiveRepo(db)

	err := repo.Delete(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func seedTree(t *testing.T, ctx context.Context, objectives *SQLiteObjectiveRepo,
	krs *SQLiteKeyResultRepo, tasks *SQLiteTaskRepo, owner *domain.Person) *domain.Objective {
	t.Helper()

	obj := testutil.NewObjective("Launch",
		testutil.WithObjectiveResponsible(owner.ID),
		testutil.WithKeyResults(
			testutil.NewKeyResult("Ship beta", testutil.WithTasks(
				testutil.DoneTask("build", testutil.Date(2024, time.March, 1)),
				testutil.NewTask("announce"),
			)),
			testutil.NewKeyResult("Onboard users"),
		),
	)
	require.NoError(t, objectives.Create(ctx, obj))
	for i := range obj.KeyResults {
		kr := obj.KeyResults[i]
		require.NoError(t, krs.Create(ctx, &kr))
		for j := range kr.Tasks {
			task := kr.Tasks[j]
			require.NoError(t, tasks.Create(ctx, &task))
		}
	}
	return obj
}

func TestObjectiveRepo_LoadTree(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	people := NewSQLitePersonRepo(db)
	objectives := NewSQLiteObjectiveRepo(db)
	krs := NewSQLiteKeyResultRepo(db)
	tasks := NewSQLiteTaskRepo(db)

	owner := testutil.NewPerson("Ana", "acme")
	require.NoError(t, people.Create(ctx, owner))
	obj := seedTree(t, ctx, objectives, krs, tasks, owner)

	// A backlog task must not appear in the tree.
	backlog := testutil.NewTask("someday")
	backlog.ObjectiveID = obj.ID
	require.NoError(t, tasks.Create(ctx, &backlog))

	tree, err := objectives.LoadTree(ctx, obj.ID)
	require.NoError(t, err)
	require.Len(t, tree.KeyResults, 2)
	byTitle := map[string]int{}
	for _, kr := range tree.KeyResults {
		byTitle[kr.Title] = len(kr.Tasks)
	}
	assert.Equal(t, 2, byTitle["Ship beta"])
	assert.Equal(t, 0, byTitle["Onboard users"])
	assert.Len(t, tree.AllTasks(), 2)
}

func TestObjectiveRepo_LoadForest(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	people := NewSQLitePersonRepo(db)
	objectives := NewSQLiteObjectiveRepo(db)
	krs := NewSQLiteKeyResultRepo(db)
	tasks := NewSQLiteTaskRepo(db)

	owner := testutil.NewPerson("Ana", "acme")
	require.NoError(t, people.Create(ctx, owner))
	seedTree(t, ctx, objectives, krs, tasks, owner)
	require.NoError(t, objectives.Create(ctx, testutil.NewObjective("Second",
		testutil.WithObjectiveResponsible(owner.ID),
		testutil.WithObjectiveCreatedAt(testutil.Date(2024, time.February, 1)))))

	forest, err := objectives.LoadForest(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "Launch", forest[0].Title)
	assert.Len(t, forest[0].KeyResults, 2)
	assert.Equal(t, "Second", forest[1].Title)
	assert.Empty(t, forest[1].KeyResults)
}
