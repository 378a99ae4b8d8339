package analytics

import (
	"math"
	"sort"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
)

const periodLayout = "2006-01"

// PeriodLeadTime is the average creation-to-completion lead time, in whole
// days, for tasks completed in one YYYY-MM period.
type PeriodLeadTime struct {
	Period    string
	Completed int
	AvgDays   int
}

// PeriodCount is the number of tasks completed in one YYYY-MM period.
type PeriodCount struct {
	Period string
	Count  int
}

func leadTimeByPeriod(tasks []domain.Task) []PeriodLeadTime {
	type acc struct {
		sum   int
		count int
	}
	byPeriod := make(map[string]*acc)
	for _, t := range tasks {
		if !t.IsDone() || t.CompletedAt == nil {
			continue
		}
		period := t.CompletedAt.Format(periodLayout)
		a := byPeriod[period]
		if a == nil {
			a = &acc{}
			byPeriod[period] = a
		}
		a.sum += status.DaysBetween(t.CreatedAt, *t.CompletedAt)
		a.count++
	}

	out := make([]PeriodLeadTime, 0, len(byPeriod))
	for period, a := range byPeriod {
		out = append(out, PeriodLeadTime{
			Period:    period,
			Completed: a.count,
			AvgDays:   int(math.Round(float64(a.sum) / float64(a.count))),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func throughputByPeriod(tasks []domain.Task) []PeriodCount {
	byPeriod := make(map[string]int)
	for _, t := range tasks {
		if !t.IsDone() || t.CompletedAt == nil {
			continue
		}
		byPeriod[t.CompletedAt.Format(periodLayout)]++
	}

	out := make([]PeriodCount, 0, len(byPeriod))
	for period, n := range byPeriod {
		out = append(out, PeriodCount{Period: period, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
