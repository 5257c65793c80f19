package reports

import (
	"context"
	"fmt"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type reportRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewReportRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.ReportClient {
	return &reportRestClient{Rest: rest, Log: logger}
}

func (c *reportRestClient) fetch(ctx context.Context, reportType string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("reportRestClient.fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, reportType),
	)

	path := fmt.Sprintf("%s/%s", constvars.PathReports, reportType)
	return c.Rest.Get(ctx, path, out, constvars.ResourceReport)
}

func (c *reportRestClient) GetPatientStatistics(ctx context.Context) (*responses.PatientStatistics, error) {
	result := new(responses.PatientStatistics)
	if err := c.fetch(ctx, constvars.ReportPatientStatistics, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *reportRestClient) GetAppointmentStatistics(ctx context.Context) (*responses.AppointmentStatistics, error) {
	result := new(responses.AppointmentStatistics)
	if err := c.fetch(ctx, constvars.ReportAppointmentStatistics, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *reportRestClient) GetMedicationStatistics(ctx context.Context) (*responses.MedicationStatistics, error) {
	result := new(responses.MedicationStatistics)
	if err := c.fetch(ctx, constvars.ReportMedicationStatistics, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *reportRestClient) GetPatientListReport(ctx context.Context) (*responses.PatientListReport, error) {
	result := new(responses.PatientListReport)
	if err := c.fetch(ctx, constvars.ReportPatientList, result); err != nil {
		return nil, err
	}
	return result, nil
}
