package requests

type CreateMedication struct {
	PatientID    string `json:"patient_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Route        string `json:"route" validate:"required,oneof=oral intravenous intramuscular topical inhalation"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Status       string `json:"status" validate:"required,oneof=active completed discontinued"`
	PrescribedBy string `json:"prescribed_by" validate:"required"`
}

type UpdateMedicationStatus struct {
	Status string `json:"status" validate:"required,oneof=active completed discontinued"`
}
