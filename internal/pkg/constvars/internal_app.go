package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
)

// Token store keys. The browser front end this client replaces kept the same
// three keys in window.localStorage; admin identity is stored separately from
// the user identity and the two are never unified.
const (
	StoreKeyToken      = "token"
	StoreKeyAdminUser  = "adminUser"
	StoreKeyAdminToken = "adminToken"
)

// Navigation routes used by the guard layer.
const (
	RouteLogin      = "/login"
	RouteDashboard  = "/dashboard"
	RouteAdminLogin = "/admin-login"
)

const (
	PathAuthLogin    = "/auth/login"
	PathAuthRegister = "/auth/register"
	PathAuthDemo     = "/auth/demo"
	PathAuthMe       = "/auth/me"
	PathAuthProfile  = "/auth/profile"

	PathDashboardStats              = "/dashboard/stats"
	PathDashboardRecentAppointments = "/dashboard/recent-appointments"

	PathPatients     = "/patients"
	PathAppointments = "/appointments"
	PathMedications  = "/medications"
	PathReports      = "/reports"

	PathAdminLogin        = "/admin/login"
	PathAdminStats        = "/admin/stats"
	PathAdminUsers        = "/admin/users"
	PathAdminPatients     = "/admin/patients"
	PathAdminAppointments = "/admin/appointments"
)

// Report types accepted by GET /reports/:type.
const (
	ReportPatientStatistics     = "patient-statistics"
	ReportAppointmentStatistics = "appointment-statistics"
	ReportMedicationStatistics  = "medication-statistics"
	ReportPatientList           = "patient-list"
)

const (
	ResourcePatient     = "Patient"
	ResourceAppointment = "Appointment"
	ResourceMedication  = "Medication"
	ResourceReport      = "Report"
	ResourceDashboard   = "Dashboard"
	ResourceProfile     = "Profile"
	ResourceAdmin       = "Admin"
)

const ResponseUnknown = "unknown"
