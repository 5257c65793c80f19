package requests

type CreatePatient struct {
	Name               string `json:"name" validate:"required"`
	MRN                string `json:"mrn" validate:"required"`
	DateOfBirth        string `json:"date_of_birth" validate:"required"`
	Gender             string `json:"gender" validate:"required,oneof=male female other"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty" validate:"omitempty,email"`
	Address            string `json:"address,omitempty"`
	EmergencyContact   string `json:"emergency_contact,omitempty"`
	MedicalHistory     string `json:"medical_history,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	CurrentMedications string `json:"current_medications,omitempty"`
}
