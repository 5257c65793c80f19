package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingPathKey       = "path"
	LoggingStatusKey     = "status"
	LoggingResourceKey   = "resource"
	LoggingSearchTermKey = "search_term"
	LoggingCountKey      = "count"
	LoggingUserIDKey     = "user_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingStoreKeyKey   = "store_key"
	LoggingReportTypeKey = "report_type"
)
