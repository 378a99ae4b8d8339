package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
)

// maxCriticalObjectives caps the critical ranking.
const maxCriticalObjectives = 10

// ObjectiveOpenTasks is one objective's open and overdue task counts.
type ObjectiveOpenTasks struct {
	Objective string
	Open      int
	Overdue   int
}

// CriticalObjective is one entry of the critical-objectives ranking.
type CriticalObjective struct {
	ObjectiveID  string
	Title        string
	Overdue      bool
	OverdueTasks int
	OpenTasks    int
	Progress     float64
	DueDate      *time.Time
}

// CycleRate is the objective success rate for one quarter-year cycle.
type CycleRate struct {
	Cycle    string
	Total    int
	Achieved int
	Rate     float64
}

// AdherenceHistogram counts objectives per deadline-adherence bucket.
type AdherenceHistogram struct {
	OnTime    int
	Late      int
	NotYetDue int
	NoDueDate int
}

func openTasksByObjective(objs []*domain.Objective, derivs []status.ObjectiveDerivation) []ObjectiveOpenTasks {
	var out []ObjectiveOpenTasks
	for i, o := range objs {
		d := derivs[i]
		if d.OpenTasksCount == 0 && d.OverdueTasksCount == 0 {
			continue
		}
		out = append(out, ObjectiveOpenTasks{
			Objective: o.Title,
			Open:      d.OpenTasksCount,
			Overdue:   d.OverdueTasksCount,
		})
	}
	return out
}

// criticalObjectives selects objectives needing attention: past their due
// date, carrying overdue tasks, or under 50% progress with the deadline
// inside the next 7 days. Overdue objectives rank first, then the heaviest
// open load, then the lowest progress.
func criticalObjectives(objs []*domain.Objective, derivs []status.ObjectiveDerivation, today time.Time) []CriticalObjective {
	var out []CriticalObjective
	for i, o := range objs {
		d := derivs[i]
		overdue := status.ObjectiveOverdue(o, d, today)

		dueSoon := false
		if o.DueDate != nil {
			daysLeft := status.DaysBetween(today, *o.DueDate)
			dueSoon = daysLeft >= 0 && daysLeft <= 7
		}

		if !overdue && d.OverdueTasksCount == 0 && !(d.ProgressByTasks < 50 && dueSoon) {
			continue
		}
		out = append(out, CriticalObjective{
			ObjectiveID:  o.ID,
			Title:        o.Title,
			Overdue:      overdue,
			OverdueTasks: d.OverdueTasksCount,
			OpenTasks:    d.OpenTasksCount,
			Progress:     d.ProgressByTasks,
			DueDate:      o.DueDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Overdue != b.Overdue {
			return a.Overdue
		}
		la, lb := a.OverdueTasks+a.OpenTasks, b.OverdueTasks+b.OpenTasks
		if la != lb {
			return la > lb
		}
		if a.Progress != b.Progress {
			return a.Progress < b.Progress
		}
		return a.Title < b.Title
	})

	if len(out) > maxCriticalObjectives {
		out = out[:maxCriticalObjectives]
	}
	return out
}

// CycleLabel formats the quarter-year cycle key for a creation timestamp,
// e.g. "Q2 2024".
func CycleLabel(createdAt time.Time) string {
	quarter := (int(createdAt.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, createdAt.Year())
}

func successRateByCycle(objs []*domain.Objective, derivs []status.ObjectiveDerivation) []CycleRate {
	byCycle := make(map[string]*CycleRate)
	for i, o := range objs {
		label := CycleLabel(o.CreatedAt)
		c := byCycle[label]
		if c == nil {
			c = &CycleRate{Cycle: label}
			byCycle[label] = c
		}
		c.Total++
		if derivs[i].KRCompletionRate == 100 {
			c.Achieved++
		}
	}

	out := make([]CycleRate, 0, len(byCycle))
	for _, c := range byCycle {
		c.Rate = float64(c.Achieved) / float64(c.Total) * 100
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cycle < out[j].Cycle })
	return out
}

// deadlineAdherence buckets each objective by completion against deadline.
// A complete objective with no deadline can never be late; an incomplete one
// with no deadline lands in the no-due-date bucket, not in late.
func deadlineAdherence(objs []*domain.Objective, derivs []status.ObjectiveDerivation, today time.Time) AdherenceHistogram {
	var h AdherenceHistogram
	for i, o := range objs {
		switch adherenceBucket(o, derivs[i], today) {
		case domain.AdherenceOnTime:
			h.OnTime++
		case domain.AdherenceLate:
			h.Late++
		case domain.AdherenceNotYetDue:
			h.NotYetDue++
		case domain.AdherenceNoDueDate:
			h.NoDueDate++
		}
	}
	return h
}

func adherenceBucket(o *domain.Objective, d status.ObjectiveDerivation, today time.Time) domain.AdherenceBucket {
	if d.KRCompletionRate == 100 {
		if o.DueDate == nil {
			return domain.AdherenceOnTime
		}
		// An unknown completion date cannot prove on-time delivery.
		if d.CompletedDate != nil &&
			status.StartOfDay(*d.CompletedDate).Before(status.StartOfDay(*o.DueDate)) {
			return domain.AdherenceOnTime
		}
		return domain.AdherenceLate
	}

	switch {
	case o.DueDate == nil:
		return domain.AdherenceNoDueDate
	case status.DaysBetween(today, *o.DueDate) < 0:
		return domain.AdherenceLate
	default:
		return domain.AdherenceNotYetDue
	}
}
