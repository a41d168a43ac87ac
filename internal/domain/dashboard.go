package domain

import "context"

// AdminOverview is the admin dashboard summary: collection totals plus the
// queue of events awaiting approval.
// swagger:model AdminOverview
type AdminOverview struct {
	TotalUsers    int      `json:"total_users"`
	TotalEvents   int      `json:"total_events"`
	PendingCount  int      `json:"pending_count"`
	PendingEvents []*Event `json:"pending_events"`
}

// StatsService defines the read-only aggregates behind the admin dashboard.
type StatsService interface {
	AdminOverview(ctx context.Context) (*AdminOverview, error)
}
