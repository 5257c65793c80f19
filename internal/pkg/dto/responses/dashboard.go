package responses

type DashboardStatValues struct {
	TotalPatients        int `json:"total_patients"`
	TodaysAppointments   int `json:"todays_appointments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
	ActiveMedications    int `json:"active_medications"`
}

type DashboardStats struct {
	Stats DashboardStatValues `json:"stats"`
}

type RecentAppointments struct {
	Appointments []Appointment `json:"appointments"`
}
