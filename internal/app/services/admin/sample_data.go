package admin

import "nivlek-client/internal/pkg/dto/responses"

// Canned data shown in demo mode when the backend cannot serve the admin
// views. Values mirror what a small demo deployment reports.

func sampleStats() *responses.AdminStats {
	return &responses.AdminStats{
		TotalUsers:        12,
		TotalPatients:     48,
		TotalAppointments: 156,
		ActiveSessions:    3,
	}
}

func sampleUsers() []responses.UserProfile {
	return []responses.UserProfile{
		{ID: "demo-user-1", Name: "Sarah Chen", Email: "sarah.chen@example.com", Role: "doctor", CreatedAt: "2025-01-12T09:30:00Z"},
		{ID: "demo-user-2", Name: "Miguel Alvarez", Email: "miguel.alvarez@example.com", Role: "nurse", CreatedAt: "2025-02-03T14:10:00Z"},
		{ID: "demo-user-3", Name: "Priya Nair", Email: "priya.nair@example.com", Role: "staff", CreatedAt: "2025-03-21T08:05:00Z"},
	}
}

func samplePatients() []responses.Patient {
	return []responses.Patient{
		{ID: "demo-patient-1", Name: "John Carter", MRN: "MRN-0001", DateOfBirth: "1961-04-18", Gender: "male", Phone: "555-0101"},
		{ID: "demo-patient-2", Name: "Alice Morgan", MRN: "MRN-0002", DateOfBirth: "1987-09-02", Gender: "female", Phone: "555-0102"},
		{ID: "demo-patient-3", Name: "Robert Kim", MRN: "MRN-0003", DateOfBirth: "1975-12-30", Gender: "male", Phone: "555-0103"},
	}
}

func sampleAppointments() []responses.Appointment {
	return []responses.Appointment{
		{ID: "demo-appt-1", PatientID: "demo-patient-1", PatientName: "John Carter", DoctorName: "Dr. Chen", AppointmentDate: "2026-09-01T10:00:00Z", Duration: 30, Type: "consultation", Status: "scheduled"},
		{ID: "demo-appt-2", PatientID: "demo-patient-2", PatientName: "Alice Morgan", DoctorName: "Dr. Chen", AppointmentDate: "2026-08-28T14:30:00Z", Duration: 15, Type: "follow-up", Status: "completed"},
	}
}
