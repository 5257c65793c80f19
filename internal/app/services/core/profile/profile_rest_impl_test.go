package profile

import (
	"context"
	"testing"

	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRest struct {
	lastMethod string
	lastPath   string
	respond    func(out interface{})
}

func (f *fakeRest) Get(ctx context.Context, path string, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodGet, path
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func (f *fakeRest) Post(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodPost, path
	return nil
}

func (f *fakeRest) Put(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	f.lastMethod, f.lastPath = constvars.MethodPut, path
	if f.respond != nil {
		f.respond(out)
	}
	return nil
}

func TestGetProfile(t *testing.T) {
	rest := &fakeRest{respond: func(out interface{}) {
		*out.(*responses.UserProfile) = responses.UserProfile{ID: "u1", Name: "Ada"}
	}}
	client := NewProfileRestClient(rest, zap.NewNop())

	user, err := client.GetProfile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, constvars.PathAuthMe, rest.lastPath)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("NameAndEmailOnly", func(t *testing.T) {
		rest := &fakeRest{respond: func(out interface{}) {
			out.(*responses.UpdateProfile).User = responses.UserProfile{ID: "u1", Name: "Ada L"}
		}}
		client := NewProfileRestClient(rest, zap.NewNop())

		user, err := client.UpdateProfile(ctx, &requests.UpdateProfile{Name: "Ada L"})
		assert.NoError(t, err)
		assert.Equal(t, "Ada L", user.Name)
		assert.Equal(t, constvars.MethodPut, rest.lastMethod)
		assert.Equal(t, constvars.PathAuthProfile, rest.lastPath)
	})

	t.Run("MismatchedConfirmationNeverHitsTheWire", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewProfileRestClient(rest, zap.NewNop())

		_, err := client.UpdateProfile(ctx, &requests.UpdateProfile{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
			ConfirmPassword: "different",
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, exceptions.ClientMessageOf(err))
		assert.Empty(t, rest.lastMethod)
	})

	t.Run("ShortNewPasswordRejected", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewProfileRestClient(rest, zap.NewNop())

		_, err := client.UpdateProfile(ctx, &requests.UpdateProfile{
			CurrentPassword: "old-password",
			NewPassword:     "short",
			ConfirmPassword: "short",
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientPasswordTooShort, exceptions.ClientMessageOf(err))
		assert.Empty(t, rest.lastMethod)
	})

	t.Run("InvalidEmailRejected", func(t *testing.T) {
		rest := &fakeRest{}
		client := NewProfileRestClient(rest, zap.NewNop())

		_, err := client.UpdateProfile(ctx, &requests.UpdateProfile{Email: "not-an-email"})
		assert.Error(t, err)
		assert.Empty(t, rest.lastMethod)
	})
}
