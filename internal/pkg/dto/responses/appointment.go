package responses

type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	Duration        int    `json:"duration"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"created_at"`
}

type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

type CreateAppointment struct {
	Appointment Appointment `json:"appointment"`
}
