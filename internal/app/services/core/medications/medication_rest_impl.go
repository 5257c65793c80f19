package medications

import (
	"context"
	"fmt"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicationRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewMedicationRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.MedicationClient {
	return &medicationRestClient{Rest: rest, Log: logger}
}

func (c *medicationRestClient) ListMedications(ctx context.Context) ([]responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationRestClient.ListMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.MedicationList)
	err := c.Rest.Get(ctx, constvars.PathMedications, result, constvars.ResourceMedication)
	if err != nil {
		return nil, err
	}

	c.Log.Info("medicationRestClient.ListMedications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Medications)),
	)
	return result.Medications, nil
}

func (c *medicationRestClient) CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationRestClient.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := new(responses.CreateMedication)
	err := c.Rest.Post(ctx, constvars.PathMedications, request, result, constvars.ResourceMedication)
	if err != nil {
		return nil, err
	}

	return &result.Medication, nil
}

func (c *medicationRestClient) UpdateMedicationStatus(ctx context.Context, medicationID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationRestClient.UpdateMedicationStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	request := &requests.UpdateMedicationStatus{Status: status}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	path := fmt.Sprintf("%s/%s", constvars.PathMedications, medicationID)
	return c.Rest.Put(ctx, path, request, nil, constvars.ResourceMedication)
}
