package analytics

import (
	"sort"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// WorkloadRow is one responsible's task count per status.
type WorkloadRow struct {
	Responsible string
	Backlog     int
	Todo        int
	InProgress  int
	Done        int
}

// ResponsibleCount is one responsible's count of completed tasks.
type ResponsibleCount struct {
	Responsible string
	Done        int
}

// StatusHistogram tallies tasks per status.
type StatusHistogram struct {
	Backlog    int
	Todo       int
	InProgress int
	Done       int
}

func workload(tasks []domain.Task, people map[string]string) []WorkloadRow {
	byName := make(map[string]*WorkloadRow)
	for _, t := range tasks {
		name, ok := responsibleName(&t, people)
		if !ok {
			continue
		}
		row := byName[name]
		if row == nil {
			row = &WorkloadRow{Responsible: name}
			byName[name] = row
		}
		switch t.Status {
		case domain.TaskBacklog:
			row.Backlog++
		case domain.TaskTodo:
			row.Todo++
		case domain.TaskInProgress:
			row.InProgress++
		case domain.TaskDone:
			row.Done++
		}
	}

	rows := make([]WorkloadRow, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Responsible < rows[j].Responsible
	})
	return rows
}

func completedByResponsible(tasks []domain.Task, people map[string]string) []ResponsibleCount {
	byName := make(map[string]int)
	for _, t := range tasks {
		if !t.IsDone() {
			continue
		}
		name, ok := responsibleName(&t, people)
		if !ok {
			continue
		}
		byName[name]++
	}

	counts := make([]ResponsibleCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, ResponsibleCount{Responsible: name, Done: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Done != counts[j].Done {
			return counts[i].Done > counts[j].Done
		}
		return counts[i].Responsible < counts[j].Responsible
	})
	return counts
}

func statusHistogram(tasks []domain.Task) StatusHistogram {
	var h StatusHistogram
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskBacklog:
			h.Backlog++
		case domain.TaskTodo:
			h.Todo++
		case domain.TaskInProgress:
			h.InProgress++
		case domain.TaskDone:
			h.Done++
		}
	}
	return h
}

func responsibleName(t *domain.Task, people map[string]string) (string, bool) {
	if t.ResponsibleID == nil {
		return "", false
	}
	name, ok := people[*t.ResponsibleID]
	return name, ok
}
