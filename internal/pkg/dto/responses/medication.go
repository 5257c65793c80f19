package responses

type Medication struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Route        string `json:"route"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Instructions string `json:"instructions"`
	Status       string `json:"status"`
	PrescribedBy string `json:"prescribed_by"`
	CreatedAt    string `json:"created_at"`
}

type MedicationList struct {
	Medications []Medication `json:"medications"`
}

type CreateMedication struct {
	Medication Medication `json:"medication"`
}
