package constvars

// Client messages are shown to the person at the terminal; dev messages go to
// the structured log only.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please contact our admin"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientCannotReachBackend            = "Network error. Please try again."
	ErrClientNotAuthorized                 = "You are not authorized to do this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientInvalidAdminCredentials       = "Invalid admin username or password"
	ErrClientPasswordsDoNotMatch           = "Passwords do not match"
	ErrClientPasswordTooShort              = "New password must be at least 8 characters"
	ErrClientSessionAlreadyActive          = "You are already logged in"

	ErrClientFailedFetchFallbackFmt = "Failed to fetch %s"
	ErrClientFailedCreateFmt        = "Failed to create %s"
	ErrClientFailedUpdateFmt        = "Failed to update %s"
)

const (
	ErrDevBuildRequest          = "Failed to build HTTP request"
	ErrDevSendRequest           = "Failed to send HTTP request"
	ErrDevDecodeResponse        = "Failed to decode response body"
	ErrDevReadResponseBody      = "Failed to read response body"
	ErrDevCannotMarshalJSON     = "Failed to marshal data into JSON"
	ErrDevCannotParseJSON       = "Failed to parse JSON data"
	ErrDevBackendRejected       = "Backend rejected the request"
	ErrDevValidationFailed      = "Request validation failed"
	ErrDevAuthTokenMissing      = "No authentication token found in the token store"
	ErrDevAuthGenerateToken     = "Failed to generate token"
	ErrDevAuthSigningMethod     = "Unexpected token signing method"
	ErrDevInvalidCredentials    = "Credentials do not match any known account"
	ErrDevPasswordsDoNotMatch   = "New password and confirmation differ"
	ErrDevFailedToHashPassword  = "Failed to hash password"
	ErrDevDemoModeDisabled      = "Demo fallback requested while demo mode is disabled"
	ErrDevStoreSet              = "Failed to write key to the token store"
	ErrDevStoreGet              = "Failed to read key from the token store"
	ErrDevStoreRemove           = "Failed to remove key from the token store"
	ErrDevStoreOpen             = "Failed to open the token store"
	ErrDevSessionNotInitialized = "Session manager used before initialization"
	ErrDevSessionAlreadyActive  = "Login attempted while a session is already established"
)
