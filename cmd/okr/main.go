package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli"
	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/JPNeto01/okrplanner01-sub000/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.okr/okr.db
	dbPath := os.Getenv("OKR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".okr", "okr.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	personRepo := repository.NewSQLitePersonRepo(database)
	objectiveRepo := repository.NewSQLiteObjectiveRepo(database)
	krRepo := repository.NewSQLiteKeyResultRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging to stderr
	var observers []service.UseCaseObserver
	if os.Getenv("OKR_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	krSvc := service.NewKeyResultService(krRepo, taskRepo)

	app := &cli.App{
		People:     service.NewPersonService(personRepo),
		Objectives: service.NewObjectiveService(objectiveRepo, taskRepo, personRepo, observers...),
		KeyResults: krSvc,
		Tasks:      service.NewTaskService(taskRepo, krSvc),
		Board:      service.NewBoardService(taskRepo),
		Dashboard:  service.NewDashboardService(objectiveRepo, personRepo, observers...),
		Import:     service.NewImportService(uow),

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
