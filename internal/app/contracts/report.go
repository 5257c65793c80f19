package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/responses"
)

type ReportClient interface {
	GetPatientStatistics(ctx context.Context) (*responses.PatientStatistics, error)
	GetAppointmentStatistics(ctx context.Context) (*responses.AppointmentStatistics, error)
	GetMedicationStatistics(ctx context.Context) (*responses.MedicationStatistics, error)
	GetPatientListReport(ctx context.Context) (*responses.PatientListReport, error)
}
