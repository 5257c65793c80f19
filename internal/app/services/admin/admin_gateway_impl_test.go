package admin

import (
	"context"
	"sync"
	"testing"

	"nivlek-client/internal/app/config"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// fakeRest fails or answers per call, standing in for a backend that may be
// down entirely.
type fakeRest struct {
	err     error
	respond func(path string, out interface{})
}

func (f *fakeRest) Get(ctx context.Context, path string, out interface{}, resourceName string) error {
	if f.err != nil {
		return f.err
	}
	if f.respond != nil {
		f.respond(path, out)
	}
	return nil
}

func (f *fakeRest) Post(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	if f.err != nil {
		return f.err
	}
	if f.respond != nil {
		f.respond(path, out)
	}
	return nil
}

func (f *fakeRest) Put(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	if f.err != nil {
		return f.err
	}
	return nil
}

func demoConfig(t *testing.T, enabled bool) config.Demo {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	assert.NoError(t, err)
	return config.Demo{
		Enabled:             enabled,
		AdminUsername:       "admin",
		AdminPasswordHash:   hash,
		JWTSecret:           "test-secret",
		TokenExpTimeInHours: 1,
	}
}

func backendDown() *fakeRest {
	return &fakeRest{err: exceptions.ErrSendHTTPRequest(assert.AnError)}
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("BackendLoginPersistsIdentity", func(t *testing.T) {
		store := newMemStore()
		rest := &fakeRest{respond: func(path string, out interface{}) {
			login := out.(*responses.AdminLogin)
			login.AccessToken = "admin-token"
			login.Admin = responses.AdminUser{ID: "adm1", Name: "Root", Username: "root", Role: "admin"}
		}}
		gateway := NewAdminGateway(store, rest, demoConfig(t, false), zap.NewNop())

		adminUser, err := gateway.Login(ctx, "root", "password")
		assert.NoError(t, err)
		assert.Equal(t, "Root", adminUser.Name)

		token, _ := store.Get(ctx, constvars.StoreKeyAdminToken)
		assert.Equal(t, "admin-token", token)

		current, err := gateway.CurrentAdmin(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "adm1", current.ID)
	})

	t.Run("DemoFallbackAcceptsLocalCredentials", func(t *testing.T) {
		store := newMemStore()
		gateway := NewAdminGateway(store, backendDown(), demoConfig(t, true), zap.NewNop())

		adminUser, err := gateway.Login(ctx, "admin", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "admin", adminUser.Username)
		assert.Equal(t, "admin", adminUser.Role)

		token, _ := store.Get(ctx, constvars.StoreKeyAdminToken)
		assert.NotEmpty(t, token)

		username, err := utils.ParseLocalAdminJWT(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("DemoFallbackRejectsWrongPassword", func(t *testing.T) {
		gateway := NewAdminGateway(newMemStore(), backendDown(), demoConfig(t, true), zap.NewNop())

		_, err := gateway.Login(ctx, "admin", "wrong")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNetworkError(err))
	})

	t.Run("NoFallbackWhenDemoDisabled", func(t *testing.T) {
		store := newMemStore()
		gateway := NewAdminGateway(store, backendDown(), demoConfig(t, false), zap.NewNop())

		_, err := gateway.Login(ctx, "admin", "secret123")
		assert.Error(t, err)

		token, _ := store.Get(ctx, constvars.StoreKeyAdminToken)
		assert.Empty(t, token)
	})

	t.Run("MissingUsernameFailsValidation", func(t *testing.T) {
		gateway := NewAdminGateway(newMemStore(), backendDown(), demoConfig(t, true), zap.NewNop())

		_, err := gateway.Login(ctx, "", "secret123")
		assert.Error(t, err)
		assert.False(t, exceptions.IsNetworkError(err))
	})
}

func TestAdminLogoutAndCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("CurrentAdminNilWhenLoggedOut", func(t *testing.T) {
		gateway := NewAdminGateway(newMemStore(), backendDown(), demoConfig(t, false), zap.NewNop())

		current, err := gateway.CurrentAdmin(ctx)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("LogoutRemovesBothKeys", func(t *testing.T) {
		store := newMemStore()
		gateway := NewAdminGateway(store, backendDown(), demoConfig(t, true), zap.NewNop())

		_, err := gateway.Login(ctx, "admin", "secret123")
		assert.NoError(t, err)

		assert.NoError(t, gateway.Logout(ctx))

		token, _ := store.Get(ctx, constvars.StoreKeyAdminToken)
		assert.Empty(t, token)

		current, err := gateway.CurrentAdmin(ctx)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestAdminFetchFallbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("SampleDataWhenDemoEnabledAndBackendDown", func(t *testing.T) {
		gateway := NewAdminGateway(newMemStore(), backendDown(), demoConfig(t, true), zap.NewNop())

		stats, err := gateway.GetStats(ctx)
		assert.NoError(t, err)
		assert.NotZero(t, stats.TotalPatients)

		users, err := gateway.ListUsers(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, users)

		patients, err := gateway.ListPatients(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, patients)

		appointments, err := gateway.ListAppointments(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, appointments)
	})

	t.Run("ErrorsPassThroughWhenDemoDisabled", func(t *testing.T) {
		gateway := NewAdminGateway(newMemStore(), backendDown(), demoConfig(t, false), zap.NewNop())

		_, err := gateway.GetStats(ctx)
		assert.Error(t, err)

		_, err = gateway.ListUsers(ctx)
		assert.Error(t, err)
	})

	t.Run("BackendDataWinsWhenAvailable", func(t *testing.T) {
		rest := &fakeRest{respond: func(path string, out interface{}) {
			if stats, ok := out.(*responses.AdminStats); ok {
				stats.TotalUsers = 99
			}
		}}
		gateway := NewAdminGateway(newMemStore(), rest, demoConfig(t, true), zap.NewNop())

		stats, err := gateway.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 99, stats.TotalUsers)
	})
}
