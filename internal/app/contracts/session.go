package contracts

import (
	"context"

	"nivlek-client/internal/pkg/dto/responses"
)

// SessionState names the three states of the authentication machine.
type SessionState int

const (
	SessionInitializing SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable view of the session manager's state. User is nil
// unless the state is SessionAuthenticated; Loading is true only while the
// initial identity check is unresolved.
type Session struct {
	State   SessionState
	User    *responses.UserProfile
	Loading bool
	Err     string
}

type SessionManager interface {
	// Initialize resolves the persisted token (if any) against the backend.
	// It runs its work exactly once per process; later calls return the
	// first outcome.
	Initialize(ctx context.Context) Session
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	DemoLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	ClearError()
	Snapshot() Session
}
