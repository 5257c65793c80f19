package dashboard

import (
	"context"
	"sync"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type dashboardRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewDashboardRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.DashboardClient {
	return &dashboardRestClient{Rest: rest, Log: logger}
}

func (c *dashboardRestClient) GetStats(ctx context.Context) (*responses.DashboardStatValues, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("dashboardRestClient.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.DashboardStats)
	err := c.Rest.Get(ctx, constvars.PathDashboardStats, result, constvars.ResourceDashboard)
	if err != nil {
		return nil, err
	}
	return &result.Stats, nil
}

func (c *dashboardRestClient) GetRecentAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("dashboardRestClient.GetRecentAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.RecentAppointments)
	err := c.Rest.Get(ctx, constvars.PathDashboardRecentAppointments, result, constvars.ResourceDashboard)
	if err != nil {
		return nil, err
	}
	return result.Appointments, nil
}

// GetOverview issues both dashboard fetches concurrently and joins the
// results. The first error wins; a failed stats fetch does not cancel the
// appointments fetch and vice versa.
func (c *dashboardRestClient) GetOverview(ctx context.Context) (*contracts.DashboardOverview, error) {
	var (
		wg       sync.WaitGroup
		stats    *responses.DashboardStatValues
		recent   []responses.Appointment
		errStats error
		errRec   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, errStats = c.GetStats(ctx)
	}()
	go func() {
		defer wg.Done()
		recent, errRec = c.GetRecentAppointments(ctx)
	}()
	wg.Wait()

	if errStats != nil {
		return nil, errStats
	}
	if errRec != nil {
		return nil, errRec
	}

	return &contracts.DashboardOverview{
		Stats:              *stats,
		RecentAppointments: recent,
	}, nil
}
