package responses

type Patient struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	MRN                string `json:"mrn"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	EmergencyContact   string `json:"emergency_contact"`
	MedicalHistory     string `json:"medical_history"`
	Allergies          string `json:"allergies"`
	CurrentMedications string `json:"current_medications"`
	CreatedAt          string `json:"created_at"`
}

type PatientList struct {
	Patients []Patient `json:"patients"`
}

type CreatePatient struct {
	Patient Patient `json:"patient"`
}
