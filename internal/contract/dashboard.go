package contract

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/analytics"
)

// DashboardRequest scopes the analytics build to one company, optionally
// narrowed to a single responsible. Now pins the evaluation date.
type DashboardRequest struct {
	Now           *time.Time
	Company       string
	ResponsibleID string
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Company     string
	Dashboard   *analytics.Dashboard
}
