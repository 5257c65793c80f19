package guard

import (
	"testing"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func loadingSession() contracts.Session {
	return contracts.Session{State: contracts.SessionInitializing, Loading: true}
}

func anonymousSession() contracts.Session {
	return contracts.Session{State: contracts.SessionAnonymous}
}

func authenticatedSession() contracts.Session {
	return contracts.Session{
		State: contracts.SessionAuthenticated,
		User:  &responses.UserProfile{ID: "u1", Name: "Ada"},
	}
}

func TestRequireSession(t *testing.T) {
	t.Run("WaitsWhileLoading", func(t *testing.T) {
		decision := RequireSession(loadingSession())
		assert.Equal(t, ActionWait, decision.Action)
		assert.Empty(t, decision.RedirectTo)
	})

	t.Run("RendersWhenAuthenticated", func(t *testing.T) {
		decision := RequireSession(authenticatedSession())
		assert.Equal(t, ActionRender, decision.Action)
	})

	t.Run("RedirectsAnonymousToLogin", func(t *testing.T) {
		decision := RequireSession(anonymousSession())
		assert.Equal(t, ActionRedirect, decision.Action)
		assert.Equal(t, constvars.RouteLogin, decision.RedirectTo)
	})

	t.Run("ErrorMessageDoesNotChangeTheDecision", func(t *testing.T) {
		session := anonymousSession()
		session.Err = "Invalid email or password"
		decision := RequireSession(session)
		assert.Equal(t, ActionRedirect, decision.Action)
	})
}

func TestRequireAnonymous(t *testing.T) {
	t.Run("WaitsWhileLoading", func(t *testing.T) {
		decision := RequireAnonymous(loadingSession())
		assert.Equal(t, ActionWait, decision.Action)
	})

	t.Run("RendersWhenAnonymous", func(t *testing.T) {
		decision := RequireAnonymous(anonymousSession())
		assert.Equal(t, ActionRender, decision.Action)
	})

	t.Run("RedirectsAuthenticatedToDashboard", func(t *testing.T) {
		decision := RequireAnonymous(authenticatedSession())
		assert.Equal(t, ActionRedirect, decision.Action)
		assert.Equal(t, constvars.RouteDashboard, decision.RedirectTo)
	})
}
