package profile

import (
	"context"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileRestClient struct {
	Rest contracts.RestClient
	Log  *zap.Logger
}

func NewProfileRestClient(rest contracts.RestClient, logger *zap.Logger) contracts.ProfileClient {
	return &profileRestClient{Rest: rest, Log: logger}
}

func (c *profileRestClient) GetProfile(ctx context.Context) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileRestClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(responses.UserProfile)
	err := c.Rest.Get(ctx, constvars.PathAuthMe, result, constvars.ResourceProfile)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *profileRestClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileRestClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Password changes are checked locally before anything goes over the
	// wire, matching the form-level checks the profile page performs.
	if request.NewPassword != "" {
		if request.NewPassword != request.ConfirmPassword {
			return nil, exceptions.ErrPasswordsDoNotMatch(nil)
		}
		if len(request.NewPassword) < 8 {
			return nil, exceptions.ErrPasswordTooShort(nil)
		}
	}

	result := new(responses.UpdateProfile)
	err := c.Rest.Put(ctx, constvars.PathAuthProfile, request, result, constvars.ResourceProfile)
	if err != nil {
		return nil, err
	}
	return &result.User, nil
}
