package domain

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"backlog": true, "todo": true, "in_progress": true, "done": true,
}

type KRStatus string

const (
	KRTodo       KRStatus = "todo"
	KRInProgress KRStatus = "in_progress"
	KRDone       KRStatus = "done"
)

// ObjectiveStatus is the calculated two-state projection used by reporting.
// Overdueness is a separate derived predicate, not a status value.
type ObjectiveStatus string

const (
	ObjectiveInProgress ObjectiveStatus = "in_progress"
	ObjectiveDone       ObjectiveStatus = "done"
)

// UrgencyCategory classifies a task by due date and status. It drives sort
// order and visual emphasis and is never persisted.
type UrgencyCategory string

const (
	UrgencyOverdue    UrgencyCategory = "overdue"
	UrgencyDueToday   UrgencyCategory = "due_today"
	UrgencyDueIn1Day  UrgencyCategory = "due_in_1_day"
	UrgencyDueIn2Days UrgencyCategory = "due_in_2_days"
	UrgencyDueIn3Days UrgencyCategory = "due_in_3_days"
	UrgencyAttention  UrgencyCategory = "attention"
	UrgencyOK         UrgencyCategory = "ok"
	UrgencyNoDueDate  UrgencyCategory = "no_due_date"
	UrgencyCompleted  UrgencyCategory = "completed"
)

// AdherenceBucket is the deadline-adherence classification for an objective.
type AdherenceBucket string

const (
	AdherenceOnTime    AdherenceBucket = "on_time"
	AdherenceLate      AdherenceBucket = "late"
	AdherenceNotYetDue AdherenceBucket = "not_yet_due"
	AdherenceNoDueDate AdherenceBucket = "no_due_date"
)
