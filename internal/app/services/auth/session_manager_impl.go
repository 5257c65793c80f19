package auth

import (
	"context"
	"sync"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/requests"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"
	"nivlek-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// sessionManager is the single source of truth for the user's identity:
// INITIALIZING until the persisted token is resolved, then ANONYMOUS or
// AUTHENTICATED. Guards consult it before any page controller runs.
type sessionManager struct {
	mu       sync.Mutex
	initOnce sync.Once

	state  contracts.SessionState
	user   *responses.UserProfile
	errMsg string

	Store contracts.TokenStore
	Rest  contracts.RestClient
	Log   *zap.Logger
}

func NewSessionManager(store contracts.TokenStore, rest contracts.RestClient, logger *zap.Logger) contracts.SessionManager {
	return &sessionManager{
		state: contracts.SessionInitializing,
		Store: store,
		Rest:  rest,
		Log:   logger,
	}
}

// Initialize resolves the persisted token exactly once per process. A missing
// token settles ANONYMOUS immediately; a present token is checked against
// GET /auth/me. A rejected token also settles ANONYMOUS but stays in the
// store untouched, matching the front end this replaces.
func (m *sessionManager) Initialize(ctx context.Context) contracts.Session {
	m.initOnce.Do(func() {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token, err := m.Store.Get(ctx, constvars.StoreKeyToken)
		if err != nil || token == "" {
			m.settle(nil)
			return
		}

		user := new(responses.UserProfile)
		err = m.Rest.Get(ctx, constvars.PathAuthMe, user, constvars.ResourceProfile)
		if err != nil {
			m.Log.Warn("sessionManager.Initialize identity check failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			m.settle(nil)
			return
		}

		m.Log.Info("sessionManager.Initialize restored session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		m.settle(user)
	})
	return m.Snapshot()
}

func (m *sessionManager) Login(ctx context.Context, email, password string) error {
	request := &requests.Login{Email: email, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return m.fail(exceptions.ErrInputValidation(err))
	}

	response := new(responses.Login)
	err := m.Rest.Post(ctx, constvars.PathAuthLogin, request, response, constvars.ResourceProfile)
	if err != nil {
		return m.fail(err)
	}

	return m.establish(ctx, response)
}

func (m *sessionManager) Register(ctx context.Context, name, email, password string) error {
	request := &requests.Register{Name: name, Email: email, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return m.fail(exceptions.ErrInputValidation(err))
	}

	response := new(responses.Login)
	err := m.Rest.Post(ctx, constvars.PathAuthRegister, request, response, constvars.ResourceProfile)
	if err != nil {
		return m.fail(err)
	}

	return m.establish(ctx, response)
}

// DemoLogin asks the backend for a throwaway account; the response shape is
// identical to a regular login.
func (m *sessionManager) DemoLogin(ctx context.Context) error {
	response := new(responses.Login)
	err := m.Rest.Post(ctx, constvars.PathAuthDemo, nil, response, constvars.ResourceProfile)
	if err != nil {
		return m.fail(err)
	}

	return m.establish(ctx, response)
}

// Logout is purely local: it clears the store key and drops the user without
// any backend call, and is safe to call when already anonymous.
func (m *sessionManager) Logout(ctx context.Context) error {
	if err := m.Store.Remove(ctx, constvars.StoreKeyToken); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = nil
	m.state = contracts.SessionAnonymous
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

func (m *sessionManager) ClearError() {
	m.mu.Lock()
	m.errMsg = ""
	m.mu.Unlock()
}

func (m *sessionManager) Snapshot() contracts.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	var user *responses.UserProfile
	if m.user != nil {
		copied := *m.user
		user = &copied
	}
	return contracts.Session{
		State:   m.state,
		User:    user,
		Loading: m.state == contracts.SessionInitializing,
		Err:     m.errMsg,
	}
}

// settle ends the INITIALIZING state with the resolved identity.
func (m *sessionManager) settle(user *responses.UserProfile) {
	m.mu.Lock()
	m.user = user
	if user != nil {
		m.state = contracts.SessionAuthenticated
	} else {
		m.state = contracts.SessionAnonymous
	}
	m.mu.Unlock()
}

func (m *sessionManager) establish(ctx context.Context, response *responses.Login) error {
	if err := m.Store.Set(ctx, constvars.StoreKeyToken, response.AccessToken); err != nil {
		return m.fail(err)
	}

	m.mu.Lock()
	user := response.User
	m.user = &user
	m.state = contracts.SessionAuthenticated
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// fail records the human-readable message and leaves the identity untouched:
// a failed login keeps the session ANONYMOUS and the store unchanged.
func (m *sessionManager) fail(err error) error {
	m.mu.Lock()
	m.errMsg = exceptions.ClientMessageOf(err)
	if m.state == contracts.SessionInitializing {
		m.state = contracts.SessionAnonymous
	}
	m.mu.Unlock()
	return err
}
