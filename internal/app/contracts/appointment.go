package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
)

type AppointmentClient interface {
	ListAppointments(ctx context.Context) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
}
