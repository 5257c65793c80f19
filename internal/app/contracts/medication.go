package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
)

type MedicationClient interface {
	ListMedications(ctx context.Context) ([]responses.Medication, error)
	CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error)
	UpdateMedicationStatus(ctx context.Context, medicationID, status string) error
}
