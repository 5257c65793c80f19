package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
)

type ProfileClient interface {
	GetProfile(ctx context.Context) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
