package importer

import (
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
	"github.com/google/uuid"
)

// GeneratedTree holds the domain objects produced from an import schema,
// in persistence order.
type GeneratedTree struct {
	People     []*domain.Person
	Objective  *domain.Objective
	KeyResults []*domain.KeyResult
	Tasks      []*domain.Task
}

// Convert transforms a validated ImportSchema into domain objects ready
// for persistence. Call ValidateImportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema) (*GeneratedTree, error) {
	now := time.Now().UTC()
	tree := &GeneratedTree{}

	personIDs := make(map[string]string) // ref -> UUID
	for _, p := range schema.People {
		id := uuid.New().String()
		personIDs[p.Ref] = id
		tree.People = append(tree.People, &domain.Person{
			ID:        id,
			Name:      p.Name,
			Email:     p.Email,
			Company:   schema.Company,
			CreatedAt: now,
		})
	}

	responsibleID, ok := personIDs[schema.Objective.ResponsibleRef]
	if !ok {
		return nil, fmt.Errorf("responsible_ref %q not found for objective", schema.Objective.ResponsibleRef)
	}
	tree.Objective = &domain.Objective{
		ID:            uuid.New().String(),
		Title:         schema.Objective.Title,
		Company:       schema.Company,
		DueDate:       parseOptionalDate(schema.Objective.DueDate),
		ResponsibleID: responsibleID,
		CoordinatorID: resolveRef(personIDs, schema.Objective.CoordinatorRef),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	krIDs := make(map[string]string)
	for _, kr := range schema.KeyResults {
		id := uuid.New().String()
		krIDs[kr.Ref] = id
		tree.KeyResults = append(tree.KeyResults, &domain.KeyResult{
			ID:            id,
			ObjectiveID:   tree.Objective.ID,
			Title:         kr.Title,
			Status:        domain.KRTodo,
			DueDate:       parseOptionalDate(kr.DueDate),
			ResponsibleID: resolveRef(personIDs, kr.ResponsibleRef),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	for _, t := range schema.Tasks {
		task := &domain.Task{
			ID:            uuid.New().String(),
			ObjectiveID:   tree.Objective.ID,
			Title:         t.Title,
			Status:        domain.TaskBacklog,
			DueDate:       parseOptionalDate(t.DueDate),
			ResponsibleID: resolveRef(personIDs, t.ResponsibleRef),
			CreatedAt:     now,
		}
		if t.KRRef != nil {
			krID, ok := krIDs[*t.KRRef]
			if !ok {
				return nil, fmt.Errorf("kr_ref %q not found for task %q", *t.KRRef, t.Ref)
			}
			task.KRID = &krID
			task.Status = domain.TaskTodo
		}
		if t.Status != "" {
			task.Status = domain.TaskStatus(t.Status)
		}
		if t.CompletedAt != nil {
			at, err := time.Parse(time.RFC3339, *t.CompletedAt)
			if err != nil {
				return nil, fmt.Errorf("parsing completed_at for task %q: %w", t.Ref, err)
			}
			task.CompletedAt = &at
		}
		tree.Tasks = append(tree.Tasks, task)
	}

	deriveKRStatuses(tree, now)

	return tree, nil
}

// deriveKRStatuses seeds each key result's cached status from its imported
// tasks so files containing done tasks don't persist a stale todo snapshot.
func deriveKRStatuses(tree *GeneratedTree, now time.Time) {
	byKR := make(map[string][]domain.Task)
	for _, t := range tree.Tasks {
		if t.KRID != nil {
			byKR[*t.KRID] = append(byKR[*t.KRID], *t)
		}
	}

	for _, kr := range tree.KeyResults {
		tasks := byKR[kr.ID]
		d := status.DeriveKR(tasks, nil, now)
		kr.Status = d.Status
		if d.StampCompletedAt {
			var latest *time.Time
			for i := range tasks {
				if c := tasks[i].CompletedAt; c != nil && (latest == nil || c.After(*latest)) {
					latest = c
				}
			}
			if latest == nil {
				latest = &now
			}
			kr.CompletedAt = latest
		}
	}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func resolveRef(ids map[string]string, ref *string) *string {
	if ref == nil {
		return nil
	}
	if id, ok := ids[*ref]; ok {
		return &id
	}
	return nil
}
