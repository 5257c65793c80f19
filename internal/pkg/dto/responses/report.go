package responses

// Report payloads are decoded into explicit per-endpoint schemas at the client
// boundary; a body that does not match fails with a decoding error rather than
// silently defaulting to empty collections.

type PatientStatistics struct {
	TotalPatients        int            `json:"total_patients"`
	NewPatientsThisMonth int            `json:"new_patients_this_month"`
	GenderDistribution   map[string]int `json:"gender_distribution"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type AppointmentStatistics struct {
	StatusDistribution map[string]int `json:"status_distribution"`
	TypeDistribution   map[string]int `json:"type_distribution"`
	MonthlyTrend       []MonthlyCount `json:"monthly_trend"`
}

type MedicationCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MedicationStatistics struct {
	TotalMedications   int               `json:"total_medications"`
	StatusDistribution map[string]int    `json:"status_distribution"`
	TopMedications     []MedicationCount `json:"top_medications"`
}

type PatientListReport struct {
	TotalCount int       `json:"total_count"`
	Patients   []Patient `json:"patients"`
}
