package requests

type CreateAppointment struct {
	PatientID       string `json:"patient_id" validate:"required"`
	DoctorName      string `json:"doctor_name" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Duration        int    `json:"duration" validate:"required,min=5"`
	Type            string `json:"type" validate:"required,oneof=consultation follow-up procedure emergency"`
	Notes           string `json:"notes,omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled no-show"`
}
