package analytics

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
)

// Filter restricts which tasks count toward every dashboard metric.
// The zero value filters nothing.
type Filter struct {
	ResponsibleID string
}

// Dashboard is the full set of report slices consumed by the reporting views.
type Dashboard struct {
	Workload               []WorkloadRow
	CompletedByResponsible []ResponsibleCount
	StatusHistogram        StatusHistogram
	OpenTasksByObjective   []ObjectiveOpenTasks
	CriticalObjectives     []CriticalObjective
	SuccessRateByCycle     []CycleRate
	DeadlineAdherence      AdherenceHistogram
	LeadTimeByPeriod       []PeriodLeadTime
	ThroughputByPeriod     []PeriodCount
}

// Build runs every report slice over a company-scoped objective forest.
// people maps responsible IDs to display names; tasks whose responsible is
// missing or unknown are skipped by the per-responsible slices. The input
// forest is never modified, and repeated invocations on the same snapshot
// produce identical output.
func Build(objectives []*domain.Objective, people map[string]string, f Filter, today time.Time) *Dashboard {
	objs := applyFilter(objectives, f)

	derivs := make([]status.ObjectiveDerivation, len(objs))
	var tasks []domain.Task
	for i, o := range objs {
		derivs[i] = status.DeriveObjective(o, today)
		tasks = append(tasks, o.AllTasks()...)
	}

	return &Dashboard{
		Workload:               workload(tasks, people),
		CompletedByResponsible: completedByResponsible(tasks, people),
		StatusHistogram:        statusHistogram(tasks),
		OpenTasksByObjective:   openTasksByObjective(objs, derivs),
		CriticalObjectives:     criticalObjectives(objs, derivs, today),
		SuccessRateByCycle:     successRateByCycle(objs, derivs),
		DeadlineAdherence:      deadlineAdherence(objs, derivs, today),
		LeadTimeByPeriod:       leadTimeByPeriod(tasks),
		ThroughputByPeriod:     throughputByPeriod(tasks),
	}
}

// applyFilter rebuilds the forest with only the matching tasks. Objectives
// left with zero matching tasks are dropped for this pass. Key results are
// kept even when emptied, so completion rates reflect the filtered view.
func applyFilter(objectives []*domain.Objective, f Filter) []*domain.Objective {
	if f.ResponsibleID == "" {
		return objectives
	}

	var out []*domain.Objective
	for _, o := range objectives {
		filtered := *o
		filtered.KeyResults = make([]domain.KeyResult, 0, len(o.KeyResults))
		matching := 0
		for _, kr := range o.KeyResults {
			fkr := kr
			fkr.Tasks = nil
			for _, t := range kr.Tasks {
				if t.ResponsibleID != nil && *t.ResponsibleID == f.ResponsibleID {
					fkr.Tasks = append(fkr.Tasks, t)
				}
			}
			matching += len(fkr.Tasks)
			filtered.KeyResults = append(filtered.KeyResults, fkr)
		}
		if matching > 0 {
			out = append(out, &filtered)
		}
	}
	return out
}
