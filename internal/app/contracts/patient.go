package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
)

type PatientClient interface {
	ListPatients(ctx context.Context, searchTerm string) ([]responses.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
}
