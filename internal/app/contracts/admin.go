package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/responses"
)

// AdminGateway owns the parallel admin identity. It keeps its own storage
// keys and shares no state with the user SessionManager: both can be live at
// the same time.
type AdminGateway interface {
	Login(ctx context.Context, username, password string) (*responses.AdminUser, error)
	Logout(ctx context.Context) error
	CurrentAdmin(ctx context.Context) (*responses.AdminUser, error)
	GetStats(ctx context.Context) (*responses.AdminStats, error)
	ListUsers(ctx context.Context) ([]responses.UserProfile, error)
	ListPatients(ctx context.Context) ([]responses.Patient, error)
	ListAppointments(ctx context.Context) ([]responses.Appointment, error)
}
