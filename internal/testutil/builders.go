package testutil

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/google/uuid"
)

// Date builds a UTC midnight timestamp, the shape every calendar date in
// these tests takes.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewPerson builds a person with a fresh ID.
func NewPerson(name, company string) *domain.Person {
	return &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     name + "@example.com",
		Company:   company,
		CreatedAt: Date(2024, time.January, 1),
	}
}

// Task options

type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithCompletedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskDone
		t.CompletedAt = &at
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

func WithResponsible(id string) TaskOption {
	return func(t *domain.Task) {
		t.ResponsibleID = &id
	}
}

// NewTask builds a to-do task with a fresh ID. Status, dates and links come
// from options.
func NewTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedAt: Date(2024, time.January, 1),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// DoneTask builds a completed task with the given completion timestamp.
func DoneTask(title string, completedAt time.Time, opts ...TaskOption) domain.Task {
	opts = append([]TaskOption{WithCompletedAt(completedAt)}, opts...)
	return NewTask(title, opts...)
}

// KeyResult options

type KROption func(*domain.KeyResult)

func WithKRDueDate(d time.Time) KROption {
	return func(kr *domain.KeyResult) {
		kr.DueDate = &d
	}
}

func WithKRCompletedAt(at time.Time) KROption {
	return func(kr *domain.KeyResult) {
		kr.CompletedAt = &at
	}
}

func WithKRStatus(s domain.KRStatus) KROption {
	return func(kr *domain.KeyResult) {
		kr.Status = s
	}
}

func WithTasks(tasks ...domain.Task) KROption {
	return func(kr *domain.KeyResult) {
		kr.Tasks = tasks
	}
}

// NewKeyResult builds a key result and links the tasks attached via
// WithTasks to it.
func NewKeyResult(title string, opts ...KROption) domain.KeyResult {
	kr := domain.KeyResult{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.KRTodo,
		CreatedAt: Date(2024, time.January, 1),
		UpdatedAt: Date(2024, time.January, 1),
	}
	for _, opt := range opts {
		opt(&kr)
	}
	for i := range kr.Tasks {
		kr.Tasks[i].KRID = &kr.ID
	}
	return kr
}

// Objective options

type ObjectiveOption func(*domain.Objective)

func WithObjectiveDueDate(d time.Time) ObjectiveOption {
	return func(o *domain.Objective) {
		o.DueDate = &d
	}
}

func WithObjectiveCreatedAt(at time.Time) ObjectiveOption {
	return func(o *domain.Objective) {
		o.CreatedAt = at
	}
}

func WithCompany(company string) ObjectiveOption {
	return func(o *domain.Objective) {
		o.Company = company
	}
}

func WithObjectiveResponsible(id string) ObjectiveOption {
	return func(o *domain.Objective) {
		o.ResponsibleID = id
	}
}

func WithKeyResults(krs ...domain.KeyResult) ObjectiveOption {
	return func(o *domain.Objective) {
		o.KeyResults = krs
	}
}

// NewObjective builds an objective and links every attached key result and
// task back to it.
func NewObjective(title string, opts ...ObjectiveOption) *domain.Objective {
	o := &domain.Objective{
		ID:            uuid.New().String(),
		Title:         title,
		Company:       "acme",
		ResponsibleID: uuid.New().String(),
		CreatedAt:     Date(2024, time.January, 1),
		UpdatedAt:     Date(2024, time.January, 1),
	}
	for _, opt := range opts {
		opt(o)
	}
	for i := range o.KeyResults {
		o.KeyResults[i].ObjectiveID = o.ID
		for j := range o.KeyResults[i].Tasks {
			o.KeyResults[i].Tasks[j].ObjectiveID = o.ID
		}
	}
	return o
}
