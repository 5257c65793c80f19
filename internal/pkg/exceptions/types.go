package exceptions

import (
	"fmt"

	"nivlek-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildRequest)
	}
	ErrDecodeResponse = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, fmt.Sprintf(constvars.ErrClientFailedFetchFallbackFmt, resourceName), constvars.ErrDevDecodeResponse)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrInvalidAdminCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAdminCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrPasswordsDoNotMatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrPasswordTooShort = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPasswordTooShort, constvars.ErrDevValidationFailed)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrDemoModeDisabled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientInvalidAdminCredentials, constvars.ErrDevDemoModeDisabled)
	}

	// Token store
	ErrStoreOpen = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreOpen)
	}
	ErrStoreSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreSet)
	}
	ErrStoreGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreGet)
	}
	ErrStoreRemove = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreRemove)
	}
)

// ErrSendHTTPRequest wraps fetch-level failures: the request never produced an
// HTTP response. Marked Network so callers can tell it apart from a rejection.
func ErrSendHTTPRequest(err error) *CustomError {
	customErr := BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientCannotReachBackend, constvars.ErrDevSendRequest)
	customErr.Network = true
	return customErr
}

// ErrBackendRejected carries the backend's own error message when the response
// body held one, falling back to a per-resource message otherwise. The status
// code is preserved but callers do not branch on it: a 401 surfaces exactly
// like a 404 or a 500.
func ErrBackendRejected(statusCode int, backendMessage, fallback string) *CustomError {
	clientMessage := backendMessage
	if clientMessage == "" {
		clientMessage = fallback
	}
	return BuildNewCustomError(nil, statusCode, clientMessage, constvars.ErrDevBackendRejected)
}
