package patients

import (
	"context"
	"net/url"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewPatientRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.PatientClient {
	return &patientRestClient{Rest: rest, Log: logger}
}

// ListPatients issues exactly one request; a non-empty searchTerm is sent
// URL-encoded as the search query parameter. The returned slice replaces
// whatever the caller held before.
func (c *patientRestClient) ListPatients(ctx context.Context, searchTerm string) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRestClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, searchTerm),
	)

	path := constvars.PathPatients
	if searchTerm != "" {
		query := url.Values{}
		query.Set("search", searchTerm)
		path += "?" + query.Encode()
	}

	result := new(responses.PatientList)
	err := c.Rest.Get(ctx, path, result, constvars.ResourcePatient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientRestClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Patients)),
	)
	return result.Patients, nil
}

func (c *patientRestClient) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRestClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := new(responses.CreatePatient)
	err := c.Rest.Post(ctx, constvars.PathPatients, request, result, constvars.ResourcePatient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientRestClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.Patient.ID),
	)
	return &result.Patient, nil
}
