package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/responses"
)

// DashboardOverview joins the two dashboard fetches the front page issues in
// parallel.
type DashboardOverview struct {
	Stats              responses.DashboardStatValues
	RecentAppointments []responses.Appointment
}

type DashboardClient interface {
	GetStats(ctx context.Context) (*responses.DashboardStatValues, error)
	GetRecentAppointments(ctx context.Context) ([]responses.Appointment, error)
	GetOverview(ctx context.Context) (*DashboardOverview, error)
}
