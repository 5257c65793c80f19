// Package guard holds the navigation predicates gating every page on the
// session state. Both guards are pure functions of a Session snapshot, so the
// same policy serves any front end that can ask "may I show this?".
package guard

import (
	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
)

type Action int

const (
	// ActionWait means the identity check has not resolved yet; show a
	// neutral indicator and render nothing sensitive.
	ActionWait Action = iota
	ActionRender
	ActionRedirect
)

type Decision struct {
	Action     Action
	RedirectTo string
}

// RequireSession admits only authenticated sessions. While the session is
// still loading it returns ActionWait rather than a redirect, so protected
// content is never flashed before initialization completes.
func RequireSession(session contracts.Session) Decision {
	if session.Loading {
		return Decision{Action: ActionWait}
	}
	if session.User != nil {
		return Decision{Action: ActionRender}
	}
	return Decision{Action: ActionRedirect, RedirectTo: constvars.RouteLogin}
}

// RequireAnonymous is the mirror policy for the login surface: an
// authenticated session is sent to the dashboard regardless of the public
// path it asked for.
func RequireAnonymous(session contracts.Session) Decision {
	if session.Loading {
		return Decision{Action: ActionWait}
	}
	if session.User == nil {
		return Decision{Action: ActionRender}
	}
	return Decision{Action: ActionRedirect, RedirectTo: constvars.RouteDashboard}
}
