package appointments

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

type appointmentRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewAppointmentRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentRestClient{Rest: rest, Log: logger}
}

func (c *appointmentRestClient) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.AppointmentList)
	err := c.Rest.Get(ctx, constvars.PathAppointments, result, constvars.ResourceAppointment)
	if err != nil {
		return nil, err
	}

	c.Log.Info("appointmentRestClient.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Appointments)),
	)
	return result.Appointments, nil
}

func (c *appointmentRestClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result := new(responses.CreateAppointment)
	err := c.Rest.Post(ctx, constvars.PathAppointments, request, result, constvars.ResourceAppointment)
	if err != nil {
		return nil, err
	}

	return &result.Appointment, nil
}

func (c *appointmentRestClient) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	request := &requests.UpdateAppointmentStatus{Status: status}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	path := fmt.Sprintf("%s/%s", constvars.PathAppointments, appointmentID)
	return c.Rest.Put(ctx, path, request, nil, constvars.ResourceAppointment)
}

// FilterByStatus narrows an already-fetched list without another request;
// "all" returns the input unchanged.
func FilterByStatus(appointments []responses.Appointment, status string) []responses.Appointment {
	if status == "" || status == "all" {
		return appointments
	}
	filtered := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == status {
			filtered = append(filtered, appointment)
		}
	}
	return filtered
}
